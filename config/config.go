package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config armazena todas as configurações do aplicativo Vitrine.
// Todos os campos são definidos com base nos requisitos da loja (DB, Cache, Sessão, Gateway de Pagamento).
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration // Módulo: Context and Timeouts

	// Cache (Redis)
	RedisAddr       string
	CatalogCacheTTL time.Duration // TTL das leituras de catálogo/configurações da loja

	// Sessão do carrinho (JWT em cookie)
	SessionSecretKey string
	SessionExpiry    time.Duration

	// Gateway de Pagamento (Nivus Pay)
	// Se a chave estiver vazia, o checkout é bloqueado antes de qualquer escrita.
	PaymentGatewayURL    string
	PaymentGatewayAPIKey string
	PaymentTimeout       time.Duration

	// Poller de status de pagamento
	PaymentPollInterval    time.Duration
	PaymentPollMaxDuration time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados (PostgreSQL)
		// mustGetEnv garante que a aplicação não inicie se não houver credenciais de DB
		DatabaseURL: mustGetEnv("DATABASE_URL"),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second, // 5s padrão

		// 3. Cache (Redis)
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		CatalogCacheTTL: getDurationEnv("CATALOG_CACHE_TTL_SEC", 300) * time.Second, // 5 min padrão

		// 4. Sessão do carrinho (JWT)
		SessionSecretKey: mustGetEnv("SESSION_SECRET_KEY"),
		SessionExpiry:    getDurationEnv("SESSION_EXPIRY_HOURS", 24) * time.Hour, // 24h padrão

		// 5. Gateway de Pagamento (Nivus Pay)
		// A chave NÃO usa mustGetEnv: a loja pode subir com o gateway desconfigurado,
		// e o checkout surfaceia um erro bloqueante para o cliente antes de qualquer escrita.
		PaymentGatewayURL:    getEnv("NIVUSPAY_API_URL", "https://api.nivuspay.com.br/v1"),
		PaymentGatewayAPIKey: getEnv("NIVUSPAY_API_KEY", ""),
		PaymentTimeout:       getDurationEnv("NIVUSPAY_TIMEOUT_SEC", 15) * time.Second,

		// 6. Poller de status de pagamento
		// O intervalo replica a cadência da página de obrigado (5 segundos).
		// A duração máxima limita o poller, que originalmente não tinha teto.
		PaymentPollInterval:    getDurationEnv("PAYMENT_POLL_INTERVAL_SEC", 5) * time.Second,
		PaymentPollMaxDuration: getDurationEnv("PAYMENT_POLL_MAX_MIN", 30) * time.Minute,

		// 7. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute, // 1 min padrão
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a variável de ambiente, fatal se não estiver presente.
func mustGetEnv(key string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", key)
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration.
func getDurationEnv(key string, defaultValue int) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return time.Duration(defaultValue)
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return time.Duration(defaultValue)
	}
	return time.Duration(value)
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
