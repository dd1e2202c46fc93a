package product

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// CatalogService define o contrato que o Handler espera da camada de Serviço.
// Usamos a assinatura com o tipo abstrato domain.Context para manter a pureza do domínio.
type CatalogService interface {
	ListProducts(ctx domain.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProductByID(ctx domain.Context, id string) (domain.Product, error)
	ListCategories(ctx domain.Context) ([]domain.Category, error)
}

// ReviewService fornece as avaliações exibidas na página do produto.
type ReviewService interface {
	GetProductReviews(ctx domain.Context, productID string) (domain.ProductReviews, error)
}

// Handler agrupa os métodos de Handler do catálogo.
type Handler struct {
	Catalog CatalogService
	Reviews ReviewService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando os Services e o Logger.
func NewHandler(catalog CatalogService, reviews ReviewService, log logger.Logger) *Handler {
	return &Handler{
		Catalog: catalog,
		Reviews: reviews,
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

// productDetail é a resposta da página do produto: o produto com suas
// avaliações e a nota média.
type productDetail struct {
	domain.Product
	Reviews       []domain.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
}

// ListProductsHandler lida com a requisição GET /v1/products.
//
// @Summary      Lista os produtos da vitrine
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Filtra por ID da categoria"
// @Param        search    query  string  false  "Busca textual em nome e descrição"
// @Param        featured  query  bool    false  "Apenas produtos em destaque"
// @Success      200  {array}  domain.Product
// @Router       /v1/products [get]
func (h *Handler) ListProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	query := r.URL.Query()
	filter := domain.ProductFilter{
		CategoryID:   query.Get("category"),
		Search:       query.Get("search"),
		FeaturedOnly: query.Get("featured") == "true",
	}

	products, err := h.Catalog.ListProducts(ctx, filter)
	h.handleServiceResponse(w, r, products, err, http.StatusOK)
}

// GetProductByIDHandler lida com a requisição GET /v1/products/{id}.
// A resposta agrega as avaliações e a nota média exibidas na página do produto.
//
// @Summary      Detalhe de um produto
// @Tags         catalog
// @Produce      json
// @Param        id  path  string  true  "ID do produto"
// @Success      200  {object}  product.productDetail
// @Failure      404  {object}  domain.ErrorResponse
// @Router       /v1/products/{id} [get]
func (h *Handler) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	// Extrai o ID do último segmento: ["v1", "products", "3c95b8c8..."]
	path := strings.Trim(r.URL.Path, "/")
	segments := strings.Split(path, "/")
	if len(segments) != 3 || segments[2] == "" {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError("Formato de URL inválido ou ID ausente."), http.StatusOK)
		return
	}
	productID := segments[2]

	prod, err := h.Catalog.GetProductByID(ctx, productID)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	reviews, err := h.Reviews.GetProductReviews(ctx, productID)
	if err != nil {
		// Avaliações são secundárias: a página do produto abre sem elas.
		h.Logger.Warn("Falha ao buscar avaliações do produto.", map[string]interface{}{
			"product_id": productID,
			"error":      err.Error(),
		})
		reviews = domain.ProductReviews{}
	}

	detail := productDetail{
		Product:       prod,
		Reviews:       reviews.Reviews,
		AverageRating: reviews.AverageRating,
	}
	if detail.Reviews == nil {
		detail.Reviews = []domain.Review{}
	}
	h.handleServiceResponse(w, r, detail, nil, http.StatusOK)
}

// ListCategoriesHandler lida com a requisição GET /v1/categories.
//
// @Summary      Lista as categorias da loja
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  domain.Category
// @Router       /v1/categories [get]
func (h *Handler) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	categories, err := h.Catalog.ListCategories(r.Context())
	h.handleServiceResponse(w, r, categories, err, http.StatusOK)
}
