package reviewservice

import (
	"context"
	"math"

	"vitrine/internal/domain"
)

// ReviewRepository define o contrato de leitura das avaliações.
type ReviewRepository interface {
	FindByProductID(ctx context.Context, productID string) ([]domain.Review, error)
}

// Service resolve as avaliações exibidas na página do produto.
type Service struct {
	repo ReviewRepository
}

// NewService cria e retorna uma nova instância do Serviço de Avaliações.
func NewService(repo ReviewRepository) *Service {
	return &Service{repo: repo}
}

// GetProductReviews retorna as avaliações do produto (mais recentes
// primeiro) com a média aritmética arredondada para 1 casa decimal.
func (s *Service) GetProductReviews(ctx domain.Context, productID string) (domain.ProductReviews, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	reviews, err := s.repo.FindByProductID(ctxGo, productID)
	if err != nil {
		return domain.ProductReviews{}, err
	}

	result := domain.ProductReviews{Reviews: reviews}
	if len(reviews) > 0 {
		var sum int
		for _, r := range reviews {
			sum += r.Rating
		}
		avg := float64(sum) / float64(len(reviews))
		result.AverageRating = math.Round(avg*10) / 10
	}
	return result, nil
}
