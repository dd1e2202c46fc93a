package productrepo

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"vitrine/internal/domain"
	"vitrine/internal/errors"
	"vitrine/internal/pkg/cache"
	"vitrine/internal/pkg/logger"
)

// ProductRepository é a camada de acesso a dados do catálogo de produtos.
// As leituras de produto individual usam a estratégia Cache-Aside (Redis);
// a vitrine nunca escreve em products.
type ProductRepository struct {
	DB        *sql.DB
	Cache     cache.Client
	DBTimeout time.Duration
	CacheTTL  time.Duration
	logger    logger.Logger
}

// NewProductRepository cria e retorna uma nova instância do Repositório.
// Aqui injetamos as dependências de Infraestrutura (DB e Cache).
func NewProductRepository(db *sql.DB, cacheClient cache.Client, dbTimeout, cacheTTL time.Duration, log logger.Logger) *ProductRepository {
	return &ProductRepository{
		DB:        db,
		Cache:     cacheClient,
		DBTimeout: dbTimeout,
		CacheTTL:  cacheTTL,
		logger:    log,
	}
}

// Define a chave de cache para produtos.
const productCacheKey = "product:%s"

// FindByID busca um produto pelo ID (com a categoria expandida),
// utilizando a estratégia Cache-Aside.
func (r *ProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	// Chave de Cache
	key := fmt.Sprintf(productCacheKey, id)
	var product domain.Product

	// --- 1. Estratégia Cache-Aside (READ) ---
	cachedData, err := r.Cache.Get(ctxTimeout, key)
	if err == nil {
		// Cache HIT
		if json.Unmarshal([]byte(cachedData), &product) == nil {
			return product, nil
		}
		// Se a desserialização falhar, seguimos para o DB
	} else if err != cache.ErrCacheMiss {
		// Erro real de cache (ex: conexão perdida): logar e degradar para o DB
		r.logger.Warn("Falha ao ler produto do cache Redis.", map[string]interface{}{"key": key, "error": err.Error()})
	}

	// --- 2. Busca no Banco de Dados (PostgreSQL) ---
	const productSQL = `
		SELECT p.id, p.name, p.description, p.price, p.stock, p.image_url,
		       p.gallery_urls, COALESCE(p.category_id::text, ''), p.featured, p.created_at,
		       c.id, c.name
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.id = $1`

	var (
		gallery pq.StringArray
		catID   sql.NullString
		catName sql.NullString
	)

	row := r.DB.QueryRowContext(ctxTimeout, productSQL, id)
	err = row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
		&gallery,
		&product.CategoryID,
		&product.Featured,
		&product.CreatedAt,
		&catID,
		&catName,
	)

	// 3. Tratamento do Erro de Busca (Crucial para o 404)
	if err == sql.ErrNoRows {
		return domain.Product{}, errors.NewNotFoundError(fmt.Sprintf("Produto com ID %s não existe na base de dados.", id))
	}
	if err != nil {
		return domain.Product{}, errors.NewDBError("Falha ao buscar produto no DB", err)
	}

	product.GalleryURLs = []string(gallery)
	if catID.Valid {
		product.Category = &domain.Category{ID: catID.String, Name: catName.String}
	}

	// --- 4. Estratégia Cache-Aside (WRITE) ---
	// Se encontrado no DB, populamos o cache para futuras requisições.
	if productJSON, marshalErr := json.Marshal(product); marshalErr == nil {
		if setErr := r.Cache.Set(ctxTimeout, key, productJSON, r.CacheTTL); setErr != nil {
			r.logger.Warn("Falha ao popular cache de produto.", map[string]interface{}{"key": key, "error": setErr.Error()})
		}
	}

	return product, nil
}

// FindAll busca os produtos aplicando o filtro da listagem:
// categoria, busca textual em nome/descrição e somente destaques.
func (r *ProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	query := `
		SELECT id, name, description, price, stock, image_url,
		       gallery_urls, COALESCE(category_id::text, ''), featured, created_at
		FROM products
		WHERE 1=1`
	args := []interface{}{}
	argPos := 1

	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", argPos)
		args = append(args, filter.CategoryID)
		argPos++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (name ILIKE $%d OR description ILIKE $%d)", argPos, argPos)
		args = append(args, "%"+filter.Search+"%")
		argPos++
	}
	if filter.FeaturedOnly {
		query += " AND featured = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctxTimeout, query, args...)
	if err != nil {
		return nil, errors.NewDBError("Falha ao listar produtos no DB", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var p domain.Product
		var gallery pq.StringArray
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Description, &p.Price, &p.Stock, &p.ImageURL,
			&gallery, &p.CategoryID, &p.Featured, &p.CreatedAt,
		); err != nil {
			return nil, errors.NewDBError("Falha ao mapear produto", err)
		}
		p.GalleryURLs = []string(gallery)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar produtos", err)
	}

	return products, nil
}
