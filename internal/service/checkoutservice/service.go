package checkoutservice

import (
	"context"
	"fmt"
	"strings"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/gateway/nivuspay"
	"vitrine/internal/pkg/brdoc"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/pkg/money"
)

// OrderRepository define o contrato de persistência que o checkout espera.
// A criação é em dois passos (pedido, depois itens em lote); a falha dos
// itens dispara exatamente um Delete compensatório do pedido recém-criado.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	CreateOrderItems(ctx context.Context, items []domain.OrderItem) error
	Delete(ctx context.Context, orderID string) error
	UpdatePaymentID(ctx context.Context, orderID, paymentID string) error
}

// PaymentGateway define o contrato com o provedor de pagamento.
type PaymentGateway interface {
	IsConfigured() bool
	CreateCardToken(ctx context.Context, req nivuspay.CardTokenRequest) (string, error)
	CreatePayment(ctx context.Context, req nivuspay.PaymentRequest) (nivuspay.PaymentResult, error)
}

// Service orquestra a submissão do checkout: uma sequência estrita de
// passos onde cada falha interrompe o fluxo no ponto em que ocorreu.
// Não há saga além da compensação do passo de itens: uma falha do gateway
// deixa o pedido pending no banco, e o operador decide o destino dele.
type Service struct {
	orders  OrderRepository
	cart    domain.CartService
	gateway PaymentGateway
	logger  logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Checkout.
func NewService(orders OrderRepository, cart domain.CartService, gateway PaymentGateway, log logger.Logger) *Service {
	return &Service{orders: orders, cart: cart, gateway: gateway, logger: log}
}

// Submit executa a submissão do checkout de ponta a ponta.
func (s *Service) Submit(ctx domain.Context, sessionID string, req domain.CheckoutRequest) (domain.CheckoutResult, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	// 1. Guardas: carrinho e gateway, antes de qualquer escrita.
	cart := s.cart.GetCart(sessionID)
	if len(cart.Items) == 0 {
		return domain.CheckoutResult{}, apperror.NewValidationError("Seu carrinho está vazio. Adicione produtos antes de finalizar o pedido.")
	}
	if !s.gateway.IsConfigured() {
		return domain.CheckoutResult{}, apperror.NewGatewayError("Pagamento não configurado. Entre em contato com a loja.", nil)
	}

	// 2. Validação do formulário.
	if err := validate(req); err != nil {
		return domain.CheckoutResult{}, err
	}

	// 3. Criação do pedido em status pending.
	total := money.FromReais(cart.Total)
	order := domain.Order{
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		CustomerPhone:   req.CustomerPhone,
		CustomerCPF:     req.CustomerCPF,
		CustomerAddress: synthesizeAddress(req),
		ShippingCost:    0,
		TotalAmount:     total.Reais(),
		PaymentMethod:   req.PaymentMethod,
		Status:          domain.OrderStatusPending,
	}
	order, err := s.orders.CreateOrder(ctxGo, order)
	if err != nil {
		return domain.CheckoutResult{}, err
	}

	// 4. Itens em lote; falha compensa o pedido recém-criado.
	items := make([]domain.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, domain.OrderItem{
			OrderID:      order.ID,
			ProductID:    line.ProductID,
			ProductName:  line.Name,
			ProductPrice: line.Price,
			Quantity:     line.Quantity,
			TotalPrice:   money.FromReais(line.Price).Mul(line.Quantity).Reais(),
		})
	}
	if err := s.orders.CreateOrderItems(ctxGo, items); err != nil {
		if delErr := s.orders.Delete(ctxGo, order.ID); delErr != nil {
			// Pedido órfão sem itens ficou no banco. Precisa de limpeza manual.
			s.logger.Error(fmt.Sprintf("🚨 Compensação falhou: pedido %s ficou sem itens no banco.", order.ID), delErr)
		}
		return domain.CheckoutResult{}, err
	}

	// 5. Tokenização, apenas para cartão de crédito.
	var cardToken string
	if req.PaymentMethod == domain.PaymentMethodCreditCard {
		cardToken, err = s.gateway.CreateCardToken(ctxGo, nivuspay.CardTokenRequest{
			CardNumber:          brdoc.StripNonDigits(req.Card.Number),
			CardCVV:             req.Card.CVV,
			CardExpirationMonth: req.Card.ExpirationMonth,
			CardExpirationYear:  req.Card.ExpirationYear,
			HolderName:          req.Card.HolderName,
			HolderDocument:      brdoc.StripNonDigits(req.CustomerCPF),
		})
		if err != nil {
			return domain.CheckoutResult{}, err
		}
	}

	// 6. Criação do pagamento no gateway.
	payment, err := s.gateway.CreatePayment(ctxGo, buildPaymentRequest(order, items, req, cardToken))
	if err != nil {
		return domain.CheckoutResult{}, err
	}

	// 7. Pós-pagamento: limpar o carrinho e gravar o ID do pagamento.
	// Falha aqui não desfaz o pagamento já criado; o pedido segue com o
	// payment_id vazio e o log aponta a divergência.
	s.cart.ClearCart(sessionID)
	if err := s.orders.UpdatePaymentID(ctxGo, order.ID, payment.PaymentID); err != nil {
		s.logger.Error(fmt.Sprintf("🚨 Pagamento %s criado mas não gravado no pedido %s.", payment.PaymentID, order.ID), err)
	}

	s.logger.Info("✅ Checkout concluído.", map[string]interface{}{
		"order_id":   order.ID,
		"payment_id": payment.PaymentID,
		"method":     string(req.PaymentMethod),
	})

	result := domain.CheckoutResult{OrderID: order.ID, PaymentID: payment.PaymentID}
	switch req.PaymentMethod {
	case domain.PaymentMethodPix:
		result.Redirect = "order-confirmation"
		result.PixCode = payment.PixCode
		result.PixQrCode = payment.PixQrCode
		result.ExpiresAt = payment.ExpiresAt
	case domain.PaymentMethodCreditCard:
		result.Redirect = "thank-you"
	case domain.PaymentMethodBillet:
		// Rejeitado na validação; inalcançável aqui.
		result.Redirect = "thank-you"
	}
	return result, nil
}

// validate aplica as regras do formulário de checkout. O CPF é o único
// campo com validação estrutural (dígitos verificadores).
func validate(req domain.CheckoutRequest) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return apperror.NewValidationError("Nome é obrigatório.")
	}
	if strings.TrimSpace(req.CustomerEmail) == "" || !strings.Contains(req.CustomerEmail, "@") {
		return apperror.NewValidationError("E-mail inválido.")
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return apperror.NewValidationError("Telefone é obrigatório.")
	}
	if err := brdoc.ValidateCPF(req.CustomerCPF); err != nil {
		return apperror.NewValidationError("CPF inválido. Verifique os números digitados.")
	}
	for _, field := range []struct{ value, label string }{
		{req.Street, "Rua"},
		{req.Number, "Número"},
		{req.Neighborhood, "Bairro"},
		{req.City, "Cidade"},
		{req.State, "Estado"},
		{req.ZipCode, "CEP"},
	} {
		if strings.TrimSpace(field.value) == "" {
			return apperror.NewValidationError(fmt.Sprintf("%s é obrigatório no endereço de entrega.", field.label))
		}
	}

	if !req.PaymentMethod.Valid() {
		return apperror.NewValidationError("Método de pagamento inválido.")
	}
	if req.PaymentMethod == domain.PaymentMethodBillet {
		return apperror.NewValidationError("Pagamento por boleto não está disponível nesta loja.")
	}
	if req.PaymentMethod == domain.PaymentMethodCreditCard {
		if req.Card == nil {
			return apperror.NewValidationError("Dados do cartão são obrigatórios para pagamento com cartão de crédito.")
		}
		if brdoc.StripNonDigits(req.Card.Number) == "" || req.Card.CVV == "" ||
			req.Card.ExpirationMonth == "" || req.Card.ExpirationYear == "" || req.Card.HolderName == "" {
			return apperror.NewValidationError("Preencha todos os dados do cartão.")
		}
	}
	return nil
}

// synthesizeAddress monta a linha única de endereço gravada no pedido:
// "rua, número[, complemento], bairro, cidade - UF, CEP: 00000-000".
func synthesizeAddress(req domain.CheckoutRequest) string {
	parts := []string{req.Street, req.Number}
	if strings.TrimSpace(req.Complement) != "" {
		parts = append(parts, req.Complement)
	}
	parts = append(parts, req.Neighborhood)
	parts = append(parts, fmt.Sprintf("%s - %s", req.City, strings.ToUpper(req.State)))
	parts = append(parts, "CEP: "+brdoc.FormatCEP(req.ZipCode))
	return strings.Join(parts, ", ")
}

// buildPaymentRequest monta o payload do gateway. CPF e telefone vão só
// com dígitos; o carrinho já foi congelado nas linhas do pedido.
func buildPaymentRequest(order domain.Order, items []domain.OrderItem, req domain.CheckoutRequest, cardToken string) nivuspay.PaymentRequest {
	payItems := make([]nivuspay.PaymentItem, 0, len(items))
	for _, item := range items {
		payItems = append(payItems, nivuspay.PaymentItem{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Price:     item.ProductPrice,
			Quantity:  item.Quantity,
		})
	}

	payment := nivuspay.PaymentRequest{
		Amount:        order.TotalAmount,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerCPF:   brdoc.StripNonDigits(order.CustomerCPF),
		CustomerPhone: brdoc.StripNonDigits(order.CustomerPhone),
		OrderID:       order.ID,
		Items:         payItems,
		PaymentMethod: string(req.PaymentMethod),
	}
	if req.PaymentMethod == domain.PaymentMethodCreditCard {
		payment.CreditCardToken = cardToken
		payment.Installments = req.Card.Installments
		if payment.Installments <= 0 {
			payment.Installments = 1
		}
	}
	return payment
}
