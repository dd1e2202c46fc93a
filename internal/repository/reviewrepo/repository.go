package reviewrepo

import (
	"context"
	"database/sql"
	"time"

	"vitrine/internal/domain"
	"vitrine/internal/errors"
	"vitrine/internal/pkg/logger"
)

// ReviewRepository é a camada de acesso a dados das avaliações de produto.
// Somente-leitura para a vitrine; quem escreve avaliações é o backend externo.
type ReviewRepository struct {
	DB        *sql.DB
	DBTimeout time.Duration
	logger    logger.Logger
}

// NewReviewRepository cria e retorna uma nova instância do Repositório de Avaliações.
func NewReviewRepository(db *sql.DB, dbTimeout time.Duration, log logger.Logger) *ReviewRepository {
	return &ReviewRepository{
		DB:        db,
		DBTimeout: dbTimeout,
		logger:    log,
	}
}

// FindByProductID busca as avaliações de um produto, mais recentes primeiro.
func (r *ReviewRepository) FindByProductID(ctx context.Context, productID string) ([]domain.Review, error) {
	ctxTimeout, cancel := context.WithTimeout(ctx, r.DBTimeout)
	defer cancel()

	const query = `
		SELECT id, product_id, customer_name, rating, COALESCE(comment, ''), created_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctxTimeout, query, productID)
	if err != nil {
		return nil, errors.NewDBError("Falha ao listar avaliações no DB", err)
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.CustomerName, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, errors.NewDBError("Falha ao mapear avaliação", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewDBError("Falha ao iterar avaliações", err)
	}

	return reviews, nil
}
