package order

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// OrderService define o contrato que o Handler espera da camada de Serviço.
type OrderService interface {
	GetOrderByID(ctx domain.Context, orderID string) (domain.Order, error)
	VerifyPayment(ctx domain.Context, orderID string) (domain.OrderStatusView, error)
}

// Handler agrupa os métodos de Handler de pedidos.
type Handler struct {
	Service OrderService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc OrderService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
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

// OrderHandler despacha GET /v1/orders/{id} e GET /v1/orders/{id}/status.
func (h *Handler) OrderHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	// Segmentos: ["v1", "orders", "{id}"] ou ["v1", "orders", "{id}", "status"]
	path := strings.Trim(r.URL.Path, "/")
	segments := strings.Split(path, "/")

	switch {
	case len(segments) == 3 && segments[2] != "":
		h.getOrder(w, r, segments[2])
	case len(segments) == 4 && segments[2] != "" && segments[3] == "status":
		h.getOrderStatus(w, r, segments[2])
	default:
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID do pedido ausente."), http.StatusOK)
	}
}

// getOrder lida com GET /v1/orders/{id}.
//
// @Summary      Pedido com seus itens
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  domain.Order
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /v1/orders/{id} [get]
func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request, orderID string) {
	order, err := h.Service.GetOrderByID(r.Context(), orderID)
	h.handleServiceResponse(w, r, order, err, http.StatusOK)
}

// getOrderStatus lida com GET /v1/orders/{id}/status, o endpoint que a
// página de obrigado consulta a cada 5 segundos enquanto o pagamento está
// em checking ou pending.
//
// @Summary      Verificação de pagamento do pedido
// @Tags         orders
// @Produce      json
// @Param        id  path  string  true  "ID do pedido"
// @Success      200  {object}  domain.OrderStatusView
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /v1/orders/{id}/status [get]
func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request, orderID string) {
	view, err := h.Service.VerifyPayment(r.Context(), orderID)
	h.handleServiceResponse(w, r, view, err, http.StatusOK)
}
