package checkout

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/pkg/middleware"
)

// CheckoutService define o contrato que o Handler espera da camada de Serviço.
type CheckoutService interface {
	Submit(ctx domain.Context, sessionID string, req domain.CheckoutRequest) (domain.CheckoutResult, error)
}

// PaymentWatcher dispara o acompanhamento em background do pagamento de um
// pedido recém-criado.
type PaymentWatcher interface {
	Start(ctx context.Context, orderID string)
}

// Handler agrupa os métodos de Handler do checkout.
type Handler struct {
	Service CheckoutService
	Watcher PaymentWatcher
	Logger  logger.Logger

	// appCtx é o contexto de vida do servidor: o watcher do pagamento deve
	// sobreviver à requisição e morrer apenas no shutdown.
	appCtx context.Context
}

// NewHandler cria uma nova instância do Handler, injetando o Service, o
// Watcher e o contexto de vida da aplicação.
func NewHandler(svc CheckoutService, w PaymentWatcher, appCtx context.Context, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Watcher: w,
		Logger:  log,
		appCtx:  appCtx,
	}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)

		h.Logger.Info("Requisição concluída com sucesso", map[string]interface{}{
			"method": r.Method,
			"path":   r.URL.Path,
			"status": successStatus,
		})

		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
				http.Error(w, "Erro ao codificar resposta", http.StatusInternalServerError)
			}
		}
		return
	}

	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category), map[string]interface{}{"path": r.URL.Path})
	}

	errorResponse := map[string]interface{}{
		"code":     status,
		"category": category,
		"message":  message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse)
}

// SubmitHandler lida com a requisição POST /v1/checkout.
// No sucesso a resposta diz para onde a interface deve navegar
// (order-confirmation para PIX, thank-you para cartão) e dispara o
// acompanhamento do pagamento em background.
//
// @Summary      Submete o checkout
// @Tags         checkout
// @Accept       json
// @Produce      json
// @Param        payload  body  domain.CheckoutRequest  true  "Dados do cliente, endereço e pagamento"
// @Success      201  {object}  domain.CheckoutResult
// @Failure      400  {object}  domain.ErrorResponse
// @Failure      502  {object}  domain.ErrorResponse
// @Router       /v1/checkout [post]
func (h *Handler) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("Checkout atingido sem sessão no contexto.", nil)
		h.handleServiceResponse(w, r, nil, apperror.NewInternalError("Sessão indisponível.", nil), http.StatusOK)
		return
	}

	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Verifique o formato JSON."), http.StatusOK)
		return
	}

	result, err := h.Service.Submit(r.Context(), sessionID, req)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	// O watcher vive fora do ciclo da requisição.
	h.Watcher.Start(h.appCtx, result.OrderID)

	h.handleServiceResponse(w, r, result, nil, http.StatusCreated)
}
