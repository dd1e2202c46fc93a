package settings

import (
	"encoding/json"
	"fmt"
	"net/http"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// SettingsService define o contrato que o Handler espera da camada de Serviço.
type SettingsService interface {
	GetSettings(ctx domain.Context) (domain.StoreSettings, error)
}

// Handler agrupa os métodos de Handler de configurações da loja.
type Handler struct {
	Service SettingsService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc SettingsService, log logger.Logger) *Handler {
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

// GetSettingsHandler lida com a requisição GET /v1/settings.
// Lida em toda página da vitrine, por isso não loga sucesso.
//
// @Summary      Configurações resolvidas da loja
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.StoreSettings
// @Router       /v1/settings [get]
func (h *Handler) GetSettingsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	result, err := h.Service.GetSettings(r.Context())
	h.handleServiceResponse(w, r, result, err, http.StatusOK)
}
