package tableservice

import (
	"context"
	"errors"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultTableCount = 10

type (
	TableService interface {
		GetTables(ctx context.Context) ([]domain.DiningTableResponse, error)
		ReserveTable(ctx context.Context, number int, customerName string) error
		OccupyTable(ctx context.Context, number int, customerName string) error
		ReleaseTable(ctx context.Context, number int) error
		SeedTables(ctx context.Context) error
	}

	tableService struct {
		tableRepository TableRepository
	}
)

func NewTableService(tableRepository TableRepository) TableService {
	return &tableService{tableRepository: tableRepository}
}

func (s *tableService) GetTables(ctx context.Context) ([]domain.DiningTableResponse, error) {
	tables, err := s.tableRepository.GetTables(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]domain.DiningTableResponse, 0, len(tables))
	for _, table := range tables {
		response = append(response, domain.DiningTableResponse{
			ID:           table.ID,
			Number:       table.Number,
			Capacity:     table.Capacity,
			Status:       table.Status,
			CustomerName: table.CustomerName,
		})
	}
	return response, nil
}

func (s *tableService) ReserveTable(ctx context.Context, number int, customerName string) error {
	return s.transition(ctx, number, customerName, entities.TableStatusReserved)
}

func (s *tableService) OccupyTable(ctx context.Context, number int, customerName string) error {
	return s.transition(ctx, number, customerName, entities.TableStatusOccupied)
}

func (s *tableService) transition(ctx context.Context, number int, customerName string, status string) error {
	if customerName == "" {
		return domain.ErrCustomerNameMissing
	}

	table, err := s.tableRepository.GetTableByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTableNotFound
		}
		return err
	}

	// occupying a table you reserved is fine, everything else needs a free table
	if table.Status != entities.TableStatusAvailable &&
		!(status == entities.TableStatusOccupied && table.Status == entities.TableStatusReserved) {
		return domain.ErrTableNotAvailable
	}

	table.Status = status
	table.CustomerName = customerName
	return s.tableRepository.UpdateTable(ctx, table)
}

func (s *tableService) ReleaseTable(ctx context.Context, number int) error {
	table, err := s.tableRepository.GetTableByNumber(ctx, number)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTableNotFound
		}
		return err
	}

	table.Status = entities.TableStatusAvailable
	table.CustomerName = ""
	return s.tableRepository.UpdateTable(ctx, table)
}

// SeedTables creates the default floor plan when the tables table is empty:
// four 2-seaters, four 4-seaters, two 6-seaters.
func (s *tableService) SeedTables(ctx context.Context) error {
	count, err := s.tableRepository.CountTables(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for number := 1; number <= defaultTableCount; number++ {
		capacity := 2
		switch {
		case number > 8:
			capacity = 6
		case number > 4:
			capacity = 4
		}

		table := &entities.DiningTable{
			ID:       uuid.NewString(),
			Number:   number,
			Capacity: capacity,
			Status:   entities.TableStatusAvailable,
		}
		if err := s.tableRepository.CreateTable(ctx, table); err != nil {
			return err
		}
	}
	return nil
}
