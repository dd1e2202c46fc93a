package nivuspay_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperror "vitrine/internal/errors"
	"vitrine/internal/gateway/nivuspay"
	"vitrine/internal/pkg/logger"
)

// TestIsConfigured testa a detecção de gateway desconfigurado (chave vazia).
func TestIsConfigured(t *testing.T) {
	log := logger.NewLogger("error")

	configurado := nivuspay.NewClient("http://gw", "sk_test_123", time.Second, log)
	assert.True(t, configurado.IsConfigured())

	desconfigurado := nivuspay.NewClient("http://gw", "", time.Second, log)
	assert.False(t, desconfigurado.IsConfigured())
}

// TestCreateCardToken_Sucesso testa a tokenização com resposta de sucesso.
func TestCreateCardToken_Sucesso(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/tokens", r.URL.Path)
		assert.Equal(t, "Bearer sk_test_123", r.Header.Get("Authorization"))

		var req nivuspay.CardTokenRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		// O número deve chegar sem espaços e o documento só com dígitos
		assert.Equal(t, "4111111111111111", req.CardNumber)
		assert.Equal(t, "52998224725", req.HolderDocument)

		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "token": "tok_abc"})
	}))
	defer srv.Close()

	client := nivuspay.NewClient(srv.URL, "sk_test_123", time.Second, logger.NewLogger("error"))
	tok, err := client.CreateCardToken(context.Background(), nivuspay.CardTokenRequest{
		CardNumber:          "4111111111111111",
		CardCVV:             "123",
		CardExpirationMonth: "12",
		CardExpirationYear:  "2030",
		HolderName:          "Maria Silva",
		HolderDocument:      "52998224725",
	})

	assert.NoError(t, err)
	assert.Equal(t, "tok_abc", tok)
}

// TestCreateCardToken_Recusado testa que a razão do provedor é preservada.
func TestCreateCardToken_Recusado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "error": "cartão recusado pelo emissor"})
	}))
	defer srv.Close()

	client := nivuspay.NewClient(srv.URL, "sk_test_123", time.Second, logger.NewLogger("error"))
	_, err := client.CreateCardToken(context.Background(), nivuspay.CardTokenRequest{})

	assert.Error(t, err)
	appErr, ok := err.(apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, "PAYMENT_GATEWAY_ERROR", appErr.Category())
	assert.Contains(t, err.Error(), "cartão recusado pelo emissor")
}

// TestCreatePayment_PixTrazCodigoEQr testa os campos específicos do PIX.
func TestCreatePayment_PixTrazCodigoEQr(t *testing.T) {
	expira := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/payments", r.URL.Path)

		var req nivuspay.PaymentRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "PIX", req.PaymentMethod)

		json.NewEncoder(w).Encode(nivuspay.PaymentResult{
			Success:   true,
			PaymentID: "pay_123",
			PixCode:   "00020126pix",
			PixQrCode: "data:image/png;base64,AAA",
			ExpiresAt: &expira,
		})
	}))
	defer srv.Close()

	client := nivuspay.NewClient(srv.URL, "sk_test_123", time.Second, logger.NewLogger("error"))
	result, err := client.CreatePayment(context.Background(), nivuspay.PaymentRequest{
		Amount:        45.50,
		PaymentMethod: "PIX",
		OrderID:       "order-1",
	})

	assert.NoError(t, err)
	assert.Equal(t, "pay_123", result.PaymentID)
	assert.Equal(t, "00020126pix", result.PixCode)
	assert.NotNil(t, result.ExpiresAt)
}

// TestCreatePayment_ErroHTTP testa a extração da mensagem em respostas não-2xx.
func TestCreatePayment_ErroHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "valor mínimo não atingido"})
	}))
	defer srv.Close()

	client := nivuspay.NewClient(srv.URL, "sk_test_123", time.Second, logger.NewLogger("error"))
	_, err := client.CreatePayment(context.Background(), nivuspay.PaymentRequest{})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "valor mínimo não atingido")
}

// TestCheckPaymentStatus testa a consulta de status por ID.
func TestCheckPaymentStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/payments/pay_123", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{"status": "approved"})
	}))
	defer srv.Close()

	client := nivuspay.NewClient(srv.URL, "sk_test_123", time.Second, logger.NewLogger("error"))
	status, err := client.CheckPaymentStatus(context.Background(), "pay_123")

	assert.NoError(t, err)
	assert.Equal(t, "approved", status)
}
