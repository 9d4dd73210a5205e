package accounting

import (
	"context"
	"time"

	"github.com/vini-501/FoodBase/domain"
)

const topItemsLimit = 5

type (
	AccountingService interface {
		GetFinancialSummary(ctx context.Context, start, end time.Time) (domain.FinancialSummaryResponse, error)
	}

	accountingService struct {
		accountingRepository AccountingRepository
	}
)

func NewAccountingService(accountingRepository AccountingRepository) AccountingService {
	return &accountingService{accountingRepository: accountingRepository}
}

func (s *accountingService) GetFinancialSummary(ctx context.Context, start, end time.Time) (domain.FinancialSummaryResponse, error) {
	revenue, count, err := s.accountingRepository.GetRevenue(ctx, start, end)
	if err != nil {
		return domain.FinancialSummaryResponse{}, err
	}

	byCategory, err := s.accountingRepository.GetRevenueByCategory(ctx, start, end)
	if err != nil {
		return domain.FinancialSummaryResponse{}, err
	}

	topItems, err := s.accountingRepository.GetTopItems(ctx, start, end, topItemsLimit)
	if err != nil {
		return domain.FinancialSummaryResponse{}, err
	}

	var average float64
	if count > 0 {
		average = revenue / float64(count)
	}

	return domain.FinancialSummaryResponse{
		TotalRevenue:      revenue,
		OrderCount:        count,
		AverageOrderValue: average,
		ByCategory:        byCategory,
		TopItems:          topItems,
	}, nil
}
