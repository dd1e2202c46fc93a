package domain

import "time"

// OrderStatus representa o ciclo de vida do pedido:
// pending ao criar, confirmed quando o pagamento é verificado.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
)

// PaymentStatus representa o estado da verificação de pagamento
// observado pelo poller e pela página de obrigado.
type PaymentStatus string

const (
	PaymentStatusChecking PaymentStatus = "checking"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Order representa o pedido registrado no checkout.
// O endereço é uma única linha sintetizada a partir dos campos do formulário.
type Order struct {
	ID              string        `json:"id"`
	CustomerName    string        `json:"customer_name"`
	CustomerEmail   string        `json:"customer_email"`
	CustomerPhone   string        `json:"customer_phone"`
	CustomerCPF     string        `json:"customer_cpf"`
	CustomerAddress string        `json:"customer_address"`
	ShippingCost    float64       `json:"shipping_cost"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Status          OrderStatus   `json:"status"`
	PaymentID       string        `json:"payment_id,omitempty"`
	PaymentStatus   PaymentStatus `json:"payment_status,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`

	// Relação carregada junto com o pedido (expansão de relacionamento)
	Items []OrderItem `json:"items,omitempty"`
}

// OrderItem é uma linha do pedido, desacoplada do produto vivo pelos
// campos desnormalizados (nome e preço no momento da compra).
type OrderItem struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"order_id"`
	ProductID    string  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
	Quantity     int     `json:"quantity"`
	TotalPrice   float64 `json:"total_price"`

	// Produto vivo, carregado na expansão para exibir a imagem na página
	// de obrigado. Pode ser nil se o produto foi removido do catálogo.
	Product *Product `json:"product,omitempty"`
}
