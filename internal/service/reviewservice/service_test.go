package reviewservice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitrine/internal/domain"
	"vitrine/internal/service/reviewservice"
)

// MockReviewRepository é uma implementação mock da interface ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByProductID(ctx context.Context, productID string) ([]domain.Review, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.Review), args.Error(1)
}

// TestGetProductReviews_AverageRounding testa a média aritmética com
// arredondamento para 1 casa decimal.
func TestGetProductReviews_AverageRounding(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := reviewservice.NewService(mockRepo)

	mockRepo.On("FindByProductID", mock.Anything, "p1").Return([]domain.Review{
		{ID: "r1", ProductID: "p1", Rating: 5},
		{ID: "r2", ProductID: "p1", Rating: 4},
		{ID: "r3", ProductID: "p1", Rating: 4},
	}, nil)

	result, err := svc.GetProductReviews(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Len(t, result.Reviews, 3)
	assert.Equal(t, 4.3, result.AverageRating) // 13/3 = 4.333...
	mockRepo.AssertExpectations(t)
}

// TestGetProductReviews_NoReviews testa o produto sem avaliações.
func TestGetProductReviews_NoReviews(t *testing.T) {
	mockRepo := new(MockReviewRepository)
	svc := reviewservice.NewService(mockRepo)

	mockRepo.On("FindByProductID", mock.Anything, "p1").Return([]domain.Review{}, nil)

	result, err := svc.GetProductReviews(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Empty(t, result.Reviews)
	assert.Zero(t, result.AverageRating)
}
