package categoryrepo

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/domain"
	"vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// CategoryRepository é a camada de acesso a dados das categorias.
// Somente-leitura para a vitrine.
type CategoryRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewCategoryRepository cria e retorna uma nova instância do Repositório de Categorias.
func NewCategoryRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// FindAll busca todas as categorias ordenadas por nome.
func (r *CategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `SELECT id, name FROM categories ORDER BY name`

	rows, err := r.DB.QueryContext(ctxTimeout, query)
	if err != nil {
		return nil, errors.NewDBError("Falha ao listar categorias no DB", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, errors.NewDBError("Falha ao mapear categoria", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar categorias", err)
	}

	return categories, nil
}
