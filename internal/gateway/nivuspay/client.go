// Package nivuspay implementa o cliente HTTP do gateway de pagamento
// Nivus Pay: tokenização de cartão, criação de pagamento (PIX, cartão,
// boleto) e consulta de status por ID de pagamento.
package nivuspay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// Client é o cliente concreto do gateway. A camada de serviço depende de
// uma interface própria (consumer-side), não desta struct.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  logger.Logger
}

// NewClient cria o cliente do gateway. Uma apiKey vazia significa gateway
// desconfigurado: IsConfigured() retorna false e o checkout é bloqueado
// antes de qualquer escrita.
func NewClient(baseURL, apiKey string, timeout time.Duration, log logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
		logger:  log,
	}
}

// IsConfigured informa se o gateway tem credenciais para operar.
func (c *Client) IsConfigured() bool {
	return c.apiKey != ""
}

// --- Payloads do gateway ---

// CardTokenRequest é o payload de tokenização do cartão.
// O número deve chegar sem os espaços da máscara e o documento só com dígitos.
type CardTokenRequest struct {
	CardNumber          string `json:"cardNumber"`
	CardCVV             string `json:"cardCvv"`
	CardExpirationMonth string `json:"cardExpirationMonth"`
	CardExpirationYear  string `json:"cardExpirationYear"`
	HolderName          string `json:"holderName"`
	HolderDocument      string `json:"holderDocument"`
}

// PaymentItem é a linha de item enviada na criação do pagamento.
type PaymentItem struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentRequest é o payload de criação de pagamento.
// CPF e telefone devem conter apenas dígitos.
type PaymentRequest struct {
	Amount          float64       `json:"amount"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerCPF     string        `json:"customerCpf"`
	CustomerPhone   string        `json:"customerPhone"`
	OrderID         string        `json:"orderId"`
	Items           []PaymentItem `json:"items"`
	PaymentMethod   string        `json:"paymentMethod"` // PIX | CREDIT_CARD | BILLET
	CreditCardToken string        `json:"creditCardToken,omitempty"`
	Installments    int           `json:"installments,omitempty"`
}

// PaymentResult é a resposta de criação de pagamento. Os campos Pix* só
// vêm preenchidos quando o método é PIX.
type PaymentResult struct {
	Success   bool       `json:"success"`
	PaymentID string     `json:"paymentId"`
	PixCode   string     `json:"pixCode,omitempty"`
	PixQrCode string     `json:"pixQrCode,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// cardTokenResult é a resposta interna da tokenização.
type cardTokenResult struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Error   string `json:"error,omitempty"`
}

// paymentStatusResult é a resposta da consulta de status.
type paymentStatusResult struct {
	Status string `json:"status"`
}

// --- Operações ---

// CreateCardToken tokeniza os dados do cartão no gateway.
// A falha vem com a razão reportada pelo provedor (ex.: cartão recusado).
func (c *Client) CreateCardToken(ctx context.Context, req CardTokenRequest) (string, error) {
	c.logger.Debug("🔐 Criando token do cartão no gateway.", nil)

	var result cardTokenResult
	if err := c.post(ctx, "/tokens", req, &result); err != nil {
		return "", err
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Erro ao processar dados do cartão"
		}
		return "", apperror.NewGatewayError(msg, nil)
	}
	return result.Token, nil
}

// CreatePayment cria o pagamento para o pedido informado.
func (c *Client) CreatePayment(ctx context.Context, req PaymentRequest) (PaymentResult, error) {
	c.logger.Debug("💳 Criando pagamento no gateway.", map[string]interface{}{
		"order_id": req.OrderID,
		"method":   req.PaymentMethod,
	})

	var result PaymentResult
	if err := c.post(ctx, "/payments", req, &result); err != nil {
		return PaymentResult{}, err
	}
	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "Erro ao processar pagamento"
		}
		return PaymentResult{}, apperror.NewGatewayError(msg, nil)
	}
	return result, nil
}

// CheckPaymentStatus consulta o status de um pagamento pelo ID do provedor.
// Os status conhecidos são "approved"/"paid" (pago) e "pending"; qualquer
// outro valor é tratado como falha pelo chamador.
func (c *Client) CheckPaymentStatus(ctx context.Context, paymentID string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/payments/"+paymentID, nil)
	if err != nil {
		return "", apperror.NewGatewayError("Falha ao montar a consulta de status", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", apperror.NewGatewayError("Falha ao consultar status do pagamento", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperror.NewGatewayError(fmt.Sprintf("Consulta de status retornou HTTP %d", resp.StatusCode), nil)
	}

	var result paymentStatusResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", apperror.NewGatewayError("Resposta de status inválida do gateway", err)
	}
	return result.Status, nil
}

// post envia um POST JSON e desserializa a resposta no destino.
// Respostas não-2xx têm o corpo lido em busca da mensagem do provedor.
func (c *Client) post(ctx context.Context, path string, payload, dest interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return apperror.NewInternalError("Falha ao serializar payload do gateway", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return apperror.NewGatewayError("Falha ao montar requisição ao gateway", err)
	}
	c.setHeaders(httpReq)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return apperror.NewGatewayError("Falha na comunicação com o gateway de pagamento", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperror.NewGatewayError("Falha ao ler resposta do gateway", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Tenta extrair a mensagem do provedor do corpo de erro
		var gwErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &gwErr)
		msg := gwErr.Error
		if msg == "" {
			msg = gwErr.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("Gateway retornou HTTP %d", resp.StatusCode)
		}
		c.logger.Warn("Gateway rejeitou a requisição.", map[string]interface{}{"status": resp.StatusCode, "error": msg})
		return apperror.NewGatewayError(msg, nil)
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return apperror.NewGatewayError("Resposta inválida do gateway", err)
	}
	return nil
}

// setHeaders aplica os cabeçalhos comuns (JSON + chave de API).
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
