package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"vitrine/internal/api/cart"
	"vitrine/internal/api/checkout"
	"vitrine/internal/api/order"
	"vitrine/internal/api/product"
	"vitrine/internal/api/settings"
	"vitrine/internal/pkg/cache"
	"vitrine/internal/pkg/middleware"
)

// Deps agrupa os Handlers e as dependências dos middlewares globais.
type Deps struct {
	Product  *product.Handler
	Cart     *cart.Handler
	Checkout *checkout.Handler
	Order    *order.Handler
	Settings *settings.Handler

	TokenService  middleware.TokenService
	SessionExpiry time.Duration

	Cache             cache.Client
	RateLimit         int
	RateLimitDuration time.Duration
}

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(deps Deps) http.Handler {

	// Usamos o ServeMux padrão do net/http para roteamento
	mux := http.NewServeMux()

	// --- 1. Rotas de Health Check e documentação ---
	mux.HandleFunc("/ping", PingHandler)
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// --- 2. Vitrine (v1) ---
	mux.HandleFunc("/v1/settings", deps.Settings.GetSettingsHandler)
	mux.HandleFunc("/v1/products", deps.Product.ListProductsHandler)
	mux.HandleFunc("/v1/products/", deps.Product.GetProductByIDHandler)
	mux.HandleFunc("/v1/categories", deps.Product.ListCategoriesHandler)

	// --- 3. Carrinho e checkout (v1) ---
	mux.HandleFunc("/v1/cart", deps.Cart.CartHandler)
	mux.HandleFunc("/v1/cart/items", deps.Cart.ItemsHandler)
	mux.HandleFunc("/v1/cart/items/", deps.Cart.ItemsHandler)
	mux.HandleFunc("/v1/checkout", deps.Checkout.SubmitHandler)

	// --- 4. Pedidos (v1) ---
	mux.HandleFunc("/v1/orders/", deps.Order.OrderHandler)

	// --- 5. Middlewares globais ---
	// Sessão primeiro (o carrinho e o checkout dependem do cookie), rate
	// limiter por fora para barrar o excesso antes de qualquer trabalho.
	session := middleware.NewSessionMiddleware(deps.TokenService, deps.SessionExpiry)
	limiter := middleware.RateLimiter(deps.Cache, deps.RateLimit, deps.RateLimitDuration)

	return limiter(session(mux))
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
