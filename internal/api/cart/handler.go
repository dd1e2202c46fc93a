package cart

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/pkg/middleware"
)

// CatalogService resolve o produto vivo no momento da adição; nome, preço
// e imagem são congelados na linha do carrinho a partir dele.
type CatalogService interface {
	GetProductByID(ctx domain.Context, id string) (domain.Product, error)
}

// Handler agrupa os métodos de Handler do carrinho. Todas as operações são
// escopadas pela sessão do navegador resolvida pelo middleware de sessão.
type Handler struct {
	Cart    domain.CartService
	Catalog CatalogService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando os Services e o Logger.
func NewHandler(cartSvc domain.CartService, catalog CatalogService, log logger.Logger) *Handler {
	return &Handler{
		Cart:    cartSvc,
		Catalog: catalog,
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

// sessionID resolve a sessão do navegador colocada no contexto pelo
// middleware. A ausência indica rota montada sem o middleware de sessão.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		h.Logger.Error("Rota de carrinho atingida sem sessão no contexto.", nil)
		h.handleServiceResponse(w, r, nil, apperror.NewInternalError("Sessão indisponível.", nil), http.StatusOK)
		return "", false
	}
	return id, true
}

// CartHandler despacha GET /v1/cart e DELETE /v1/cart.
func (h *Handler) CartHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.getCart(w, r)
	case http.MethodDelete:
		h.clearCart(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// ItemsHandler despacha POST /v1/cart/items e as operações por produto
// PUT/DELETE /v1/cart/items/{productID}.
func (h *Handler) ItemsHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.addItem(w, r)
	case http.MethodPut:
		h.updateItem(w, r)
	case http.MethodDelete:
		h.removeItem(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// getCart lida com GET /v1/cart.
//
// @Summary      Carrinho da sessão
// @Tags         cart
// @Produce      json
// @Success      200  {object}  domain.Cart
// @Router       /v1/cart [get]
func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.handleServiceResponse(w, r, h.Cart.GetCart(sessionID), nil, http.StatusOK)
}

// clearCart lida com DELETE /v1/cart.
//
// @Summary      Esvazia o carrinho
// @Tags         cart
// @Success      200  {object}  domain.Cart
// @Router       /v1/cart [delete]
func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	h.Cart.ClearCart(sessionID)
	h.handleServiceResponse(w, r, h.Cart.GetCart(sessionID), nil, http.StatusOK)
}

// addItem lida com POST /v1/cart/items.
//
// @Summary      Adiciona um produto ao carrinho
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        payload  body  cart.addItemRequest  true  "Produto a adicionar"
// @Success      200  {object}  domain.Cart
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /v1/cart/items [post]
func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var payload addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.ProductID == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Informe o product_id."), http.StatusOK)
		return
	}

	// A linha do carrinho congela nome, preço e imagem do produto vivo.
	product, err := h.Catalog.GetProductByID(r.Context(), payload.ProductID)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, h.Cart.AddToCart(sessionID, product), nil, http.StatusOK)
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// updateItem lida com PUT /v1/cart/items/{productID}.
//
// @Summary      Altera a quantidade de uma linha do carrinho
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        productID  path  string  true  "ID do produto"
// @Param        payload    body  cart.updateItemRequest  true  "Nova quantidade (0 remove)"
// @Success      200  {object}  domain.Cart
// @Router       /v1/cart/items/{productID} [put]
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	productID, ok := h.productIDFromPath(w, r)
	if !ok {
		return
	}

	var payload updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Payload inválido. Informe a quantidade."), http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, h.Cart.UpdateQuantity(sessionID, productID, payload.Quantity), nil, http.StatusOK)
}

// removeItem lida com DELETE /v1/cart/items/{productID}.
//
// @Summary      Remove uma linha do carrinho
// @Tags         cart
// @Produce      json
// @Param        productID  path  string  true  "ID do produto"
// @Success      200  {object}  domain.Cart
// @Router       /v1/cart/items/{productID} [delete]
func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	productID, ok := h.productIDFromPath(w, r)
	if !ok {
		return
	}

	h.handleServiceResponse(w, r, h.Cart.RemoveFromCart(sessionID, productID), nil, http.StatusOK)
}

// productIDFromPath extrai o ID do produto do último segmento:
// ["v1", "cart", "items", "3c95b8c8..."].
func (h *Handler) productIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	path := strings.Trim(r.URL.Path, "/")
	segments := strings.Split(path, "/")
	if len(segments) != 4 || segments[3] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID do produto ausente."), http.StatusOK)
		return "", false
	}
	return segments[3], true
}
