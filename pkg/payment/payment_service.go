package payment

import (
	"context"
	"errors"
	"os"

	"github.com/vini-501/FoodBase/domain"
	"github.com/vini-501/FoodBase/entities"
	"github.com/vini-501/FoodBase/pkg/order"

	"github.com/google/uuid"
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"
)

type (
	PaymentService interface {
		CreateTransaction(ctx context.Context, req domain.CreatePaymentRequest) (domain.CreatePaymentResponse, error)
		HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error
	}

	paymentService struct {
		paymentRepository PaymentRepository
		orderRepository   order.OrderRepository
		snapClient        snap.Client
	}
)

func NewPaymentService(paymentRepository PaymentRepository, orderRepository order.OrderRepository) PaymentService {
	env := midtrans.Sandbox
	if os.Getenv("IS_PROD") == "true" {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(os.Getenv("SERVER_KEY"), env)

	return &paymentService{
		paymentRepository: paymentRepository,
		orderRepository:   orderRepository,
		snapClient:        client,
	}
}

func (s *paymentService) CreateTransaction(ctx context.Context, req domain.CreatePaymentRequest) (domain.CreatePaymentResponse, error) {
	ord, err := s.orderRepository.GetOrderByID(ctx, req.OrderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CreatePaymentResponse{}, domain.ErrOrderNotFound
		}
		return domain.CreatePaymentResponse{}, err
	}

	existing, err := s.paymentRepository.GetPaymentByOrderID(ctx, ord.ID)
	if err != nil {
		return domain.CreatePaymentResponse{}, err
	}
	if existing != nil && existing.Status == entities.PaymentStatusSettlement {
		return domain.CreatePaymentResponse{}, domain.ErrOrderAlreadyPaid
	}

	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  ord.ID,
			GrossAmt: int64(ord.TotalAmount),
		},
	}

	snapResp, snapErr := s.snapClient.CreateTransaction(snapReq)
	if snapErr != nil {
		return domain.CreatePaymentResponse{}, domain.ErrMidtransProcessing
	}

	payment := &entities.PaymentTransaction{
		ID:          uuid.NewString(),
		OrderID:     ord.ID,
		GrossAmount: ord.TotalAmount,
		SnapToken:   snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
		Status:      entities.PaymentStatusPending,
	}
	if err := s.paymentRepository.CreatePayment(ctx, payment); err != nil {
		return domain.CreatePaymentResponse{}, err
	}

	return domain.CreatePaymentResponse{
		PaymentID:   payment.ID,
		OrderID:     ord.ID,
		GrossAmount: payment.GrossAmount,
		SnapToken:   payment.SnapToken,
		RedirectURL: payment.RedirectURL,
		Status:      payment.Status,
	}, nil
}

// HandleNotification applies a midtrans webhook to the payment row and moves
// the order along: settled payments push the order into the kitchen, expired
// or cancelled ones cancel it.
func (s *paymentService) HandleNotification(ctx context.Context, req domain.MidtransNotificationRequest) error {
	payment, err := s.paymentRepository.GetPaymentByOrderID(ctx, req.OrderID)
	if err != nil {
		return err
	}
	if payment == nil {
		return domain.ErrPaymentNotFound
	}

	switch req.TransactionStatus {
	case "capture", "settlement":
		payment.Status = entities.PaymentStatusSettlement
		payment.Method = req.PaymentType
		if err := s.paymentRepository.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		return s.orderRepository.UpdateOrderStatus(ctx, payment.OrderID, entities.OrderStatusPreparing)
	case "expire":
		payment.Status = entities.PaymentStatusExpired
		if err := s.paymentRepository.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		return s.orderRepository.UpdateOrderStatus(ctx, payment.OrderID, entities.OrderStatusCancelled)
	case "cancel", "deny":
		payment.Status = entities.PaymentStatusCancelled
		if err := s.paymentRepository.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		return s.orderRepository.UpdateOrderStatus(ctx, payment.OrderID, entities.OrderStatusCancelled)
	default:
		// pending and other intermediate states leave the order untouched
		return nil
	}
}
