package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Nossos pacotes de infraestrutura e utilitários
	"vitrine/config"
	"vitrine/internal/gateway/nivuspay"
	"vitrine/internal/pkg/cache"
	"vitrine/internal/pkg/database"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/pkg/token"
	"vitrine/internal/watcher"

	// Camadas da vitrine para Injeção de Dependências
	"vitrine/internal/api/cart"
	"vitrine/internal/api/checkout"
	"vitrine/internal/api/order"
	"vitrine/internal/api/product"
	"vitrine/internal/api/router"
	"vitrine/internal/api/settings"
	"vitrine/internal/repository/cartrepo"
	"vitrine/internal/repository/categoryrepo"
	"vitrine/internal/repository/orderrepo"
	"vitrine/internal/repository/productrepo"
	"vitrine/internal/repository/reviewrepo"
	"vitrine/internal/repository/settingsrepo"
	"vitrine/internal/service/cartservice"
	"vitrine/internal/service/catalogservice"
	"vitrine/internal/service/checkoutservice"
	"vitrine/internal/service/orderservice"
	"vitrine/internal/service/reviewservice"
	"vitrine/internal/service/settingsservice"
)

func main() {
	// 1. Configuração e Inicialização
	log.Println("⚡ Inicializando serviço Vitrine...")
	// O godotenv.Load() procura por um arquivo chamado .env na raiz.
	if err := godotenv.Load(); err != nil {
		// Se o arquivo .env não for encontrado, avisamos mas continuamos,
		// pois as variáveis essenciais podem estar no ambiente do sistema (ex: Docker).
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", nil)

	// 2. Conexão com Recursos de Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis)
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Conexão Redis estabelecida.", nil)

	// C. Gateway de Pagamento (Nivus Pay)
	gateway := nivuspay.NewClient(cfg.PaymentGatewayURL, cfg.PaymentGatewayAPIKey, cfg.PaymentTimeout, log)
	if !gateway.IsConfigured() {
		log.Warn("⚠️ Gateway de pagamento sem chave de API: o checkout será bloqueado.", nil)
	}

	// D. Contexto de vida da aplicação: cancelado no shutdown, encerra os
	// watchers de pagamento em andamento.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// 3. INJEÇÃO DE DEPENDÊNCIAS (Montagem da Clean Architecture)
	// Ordem: Repository -> Service -> Handler

	// A. Repositórios (Camada de Acesso a Dados)
	productRepo := productrepo.NewProductRepository(db, cacheClient, cfg.DBTimeout, cfg.CatalogCacheTTL, log)
	categoryRepo := categoryrepo.NewCategoryRepository(db, cfg.DBTimeout, log)
	reviewRepo := reviewrepo.NewReviewRepository(db, cfg.DBTimeout, log)
	settingsRepo := settingsrepo.NewSettingsRepository(db, cfg.DBTimeout, log)
	orderRepo := orderrepo.NewOrderRepository(db, cfg.DBTimeout, log)
	cartRepo := cartrepo.NewMemoryCartRepository()
	log.Debug("Repositórios inicializados.", nil)

	// B. Serviços (Camada de Lógica de Negócio)
	catalogSvc := catalogservice.NewService(productRepo, categoryRepo)
	reviewSvc := reviewservice.NewService(reviewRepo)
	settingsSvc := settingsservice.NewService(settingsRepo, cacheClient, cfg.CatalogCacheTTL, log)
	cartSvc := cartservice.NewService(cartRepo, log)
	checkoutSvc := checkoutservice.NewService(orderRepo, cartSvc, gateway, log)
	orderSvc := orderservice.NewService(orderRepo, gateway, log)
	log.Debug("Serviços inicializados.", nil)

	// C. Watcher de pagamento (acompanha pedidos recém-criados em background)
	paymentWatcher := watcher.NewWatcher(orderSvc, cfg.PaymentPollInterval, cfg.PaymentPollMaxDuration, log)

	// D. Serviço de Tokens (JWT da sessão do carrinho)
	tokenSvc := token.NewService(cfg.SessionSecretKey, cfg.SessionExpiry)
	log.Debug("Serviço de Tokens de sessão inicializado.", nil)

	// E. Handlers (Camada de Apresentação)
	productHandler := product.NewHandler(catalogSvc, reviewSvc, log)
	cartHandler := cart.NewHandler(cartSvc, catalogSvc, log)
	checkoutHandler := checkout.NewHandler(checkoutSvc, paymentWatcher, appCtx, log)
	orderHandler := order.NewHandler(orderSvc, log)
	settingsHandler := settings.NewHandler(settingsSvc, log)
	log.Debug("Handlers inicializados.", nil)

	// 4. Configuração e Início do Roteador/Servidor
	r := router.NewRouter(router.Deps{
		Product:  productHandler,
		Cart:     cartHandler,
		Checkout: checkoutHandler,
		Order:    orderHandler,
		Settings: settingsHandler,

		TokenService:  tokenSvc,
		SessionExpiry: cfg.SessionExpiry,

		Cache:             cacheClient,
		RateLimit:         cfg.RateLimitMaxRequests,
		RateLimitDuration: cfg.RateLimitPeriod,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor Vitrine ouvindo na porta", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	// Lógica do Graceful Shutdown (captura de sinal)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	// Encerra os watchers de pagamento pendentes antes do servidor HTTP.
	appCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
