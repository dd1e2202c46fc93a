package domain

import "time"

// PaymentMethod é a variante etiquetada dos métodos de pagamento.
// O tratamento no checkout é exaustivo: adicionar um método novo exige
// tratar o caso no switch da submissão, não uma comparação de string solta.
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "PIX"
	PaymentMethodCreditCard PaymentMethod = "CREDIT_CARD"
	// PaymentMethodBillet existe no enum do gateway mas não é oferecido
	// no fluxo da loja; a submissão o rejeita com erro de validação.
	PaymentMethodBillet PaymentMethod = "BILLET"
)

// Valid informa se o método é um dos valores conhecidos do enum.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCreditCard, PaymentMethodBillet:
		return true
	}
	return false
}

// CardData agrupa os campos do sub-formulário de cartão de crédito.
// O número pode chegar com os espaços da máscara; o gateway recebe só dígitos.
type CardData struct {
	Number          string `json:"card_number"`
	CVV             string `json:"card_cvv"`
	ExpirationMonth string `json:"card_expiration_month"`
	ExpirationYear  string `json:"card_expiration_year"`
	HolderName      string `json:"holder_name"`
	Installments    int    `json:"installments"`
}

// CheckoutRequest é o payload da submissão do checkout: dados do cliente,
// endereço estruturado, método de pagamento e, se cartão, os dados do cartão.
type CheckoutRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerEmail string `json:"customer_email"`
	CustomerCPF   string `json:"customer_cpf"`
	CustomerPhone string `json:"customer_phone"`

	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	Card          *CardData     `json:"card,omitempty"`
}

// CheckoutResult é o resultado etiquetado da submissão, que diz para a
// interface para onde navegar.
type CheckoutResult struct {
	OrderID   string `json:"order_id"`
	PaymentID string `json:"payment_id"`

	// Redirect indica a página de destino: "order-confirmation" (PIX,
	// com os campos Pix* preenchidos) ou "thank-you" (demais métodos).
	Redirect string `json:"redirect"`

	PixCode   string     `json:"pix_code,omitempty"`
	PixQrCode string     `json:"pix_qr_code,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// OrderStatusView é a resposta da verificação de pagamento consultada em
// polling pela página de obrigado.
type OrderStatusView struct {
	Order         Order         `json:"order"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	// Confirmed espelha o banner "Pagamento Aprovado" vs "Aguardando Pagamento".
	Confirmed bool `json:"confirmed"`
}
