package orderservice

import (
	"context"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// OrderRepository define o contrato de leitura e confirmação dos pedidos.
type OrderRepository interface {
	FindByIDWithItems(ctx context.Context, orderID string) (domain.Order, error)
	ConfirmPayment(ctx context.Context, orderID string) error
}

// PaymentChecker consulta o status de um pagamento no gateway.
type PaymentChecker interface {
	CheckPaymentStatus(ctx context.Context, paymentID string) (string, error)
}

// Service expõe a leitura de pedidos e a verificação de pagamento sob
// demanda, compartilhada entre o endpoint de status e o watcher.
type Service struct {
	orders  OrderRepository
	gateway PaymentChecker
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Pedidos.
func NewService(orders OrderRepository, gateway PaymentChecker, log logger.Logger) *Service {
	return &Service{orders: orders, gateway: gateway, logger: log}
}

// GetOrderByID retorna o pedido com seus itens (e o produto vivo de cada
// item, quando ainda existe no catálogo).
func (s *Service) GetOrderByID(ctx domain.Context, orderID string) (domain.Order, error) {
	if orderID == "" {
		return domain.Order{}, apperror.NewValidationError("O ID do pedido é obrigatório.")
	}

	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	return s.orders.FindByIDWithItems(ctxGo, orderID)
}

// VerifyPayment executa um passo de verificação do pagamento do pedido:
//
//   - pedido já confirmado: responde paid sem consultar o gateway;
//   - sem payment_id ainda: responde checking (pagamento em criação);
//   - gateway respondeu approved/paid: confirma o pedido e responde paid;
//   - gateway respondeu pending: responde pending;
//   - consulta falhou ou status desconhecido: responde failed.
func (s *Service) VerifyPayment(ctx domain.Context, orderID string) (domain.OrderStatusView, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	order, err := s.orders.FindByIDWithItems(ctxGo, orderID)
	if err != nil {
		return domain.OrderStatusView{}, err
	}

	if order.Status == domain.OrderStatusConfirmed {
		return view(order, domain.PaymentStatusPaid, true), nil
	}
	if order.PaymentID == "" {
		return view(order, domain.PaymentStatusChecking, false), nil
	}

	status, err := s.gateway.CheckPaymentStatus(ctxGo, order.PaymentID)
	if err != nil {
		s.logger.Warn("⚠️ Consulta de status de pagamento falhou.", map[string]interface{}{
			"order_id":   order.ID,
			"payment_id": order.PaymentID,
			"error":      err.Error(),
		})
		return view(order, domain.PaymentStatusFailed, false), nil
	}

	switch status {
	case "approved", "paid":
		if err := s.orders.ConfirmPayment(ctxGo, order.ID); err != nil {
			return domain.OrderStatusView{}, err
		}
		s.logger.Info("✅ Pagamento aprovado, pedido confirmado.", map[string]interface{}{
			"order_id": order.ID,
		})
		order.Status = domain.OrderStatusConfirmed
		order.PaymentStatus = domain.PaymentStatusPaid
		return view(order, domain.PaymentStatusPaid, true), nil
	case "pending":
		return view(order, domain.PaymentStatusPending, false), nil
	default:
		return view(order, domain.PaymentStatusFailed, false), nil
	}
}

func view(order domain.Order, status domain.PaymentStatus, confirmed bool) domain.OrderStatusView {
	return domain.OrderStatusView{
		Order:         order,
		PaymentStatus: status,
		Confirmed:     confirmed,
	}
}
