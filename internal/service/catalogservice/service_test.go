package catalogservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
	"vitrine/internal/service/catalogservice"
)

// MockProductRepository é uma implementação mock da interface ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id string) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

// MockCategoryRepository é uma implementação mock da interface CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Category), args.Error(1)
}

// TestListProducts_Success testa a listagem de um catálogo já configurado.
func TestListProducts_Success(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	catalog := []domain.Product{
		{ID: "p1", Name: "Tapete Sala", Price: 189.90},
		{ID: "p2", Name: "Tapete Quarto", Price: 149.90},
	}
	mockProducts.On("FindAll", mock.Anything, domain.ProductFilter{}).Return(catalog, nil)

	result, err := svc.ListProducts(context.Background(), domain.ProductFilter{})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "Tapete Sala", result[0].Name)
	mockProducts.AssertExpectations(t)
}

// TestListProducts_UnseededStore_UsesSample testa o fallback para o catálogo
// de amostra quando a loja não tem produtos cadastrados.
func TestListProducts_UnseededStore_UsesSample(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	mockProducts.On("FindAll", mock.Anything, domain.ProductFilter{}).Return([]domain.Product{}, nil)

	result, err := svc.ListProducts(context.Background(), domain.ProductFilter{})

	assert.NoError(t, err)
	assert.NotEmpty(t, result, "loja sem catálogo deve exibir produtos de amostra")
	mockProducts.AssertExpectations(t)
}

// TestListProducts_FilteredEmpty_SeededStore testa que um filtro sem
// resultados em loja configurada retorna lista vazia, não a amostra.
func TestListProducts_FilteredEmpty_SeededStore(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	filter := domain.ProductFilter{Search: "inexistente"}
	mockProducts.On("FindAll", mock.Anything, filter).Return([]domain.Product{}, nil)
	mockProducts.On("FindAll", mock.Anything, domain.ProductFilter{}).
		Return([]domain.Product{{ID: "p1", Name: "Tapete Sala"}}, nil)

	result, err := svc.ListProducts(context.Background(), filter)

	assert.NoError(t, err)
	assert.Empty(t, result)
	mockProducts.AssertExpectations(t)
}

// TestListProducts_FeaturedFilter_Sample testa que o filtro de destaque é
// aplicado também sobre o catálogo de amostra.
func TestListProducts_FeaturedFilter_Sample(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	filter := domain.ProductFilter{FeaturedOnly: true}
	mockProducts.On("FindAll", mock.Anything, filter).Return([]domain.Product{}, nil)
	mockProducts.On("FindAll", mock.Anything, domain.ProductFilter{}).Return([]domain.Product{}, nil)

	result, err := svc.ListProducts(context.Background(), filter)

	assert.NoError(t, err)
	assert.NotEmpty(t, result)
	for _, p := range result {
		assert.True(t, p.Featured)
	}
}

// TestGetProductByID_NotFound testa o erro 404 de produto inexistente.
func TestGetProductByID_NotFound(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	mockProducts.On("FindByID", mock.Anything, "nao-existe").
		Return(domain.Product{}, apperror.NewNotFoundError("Produto não encontrado."))

	_, err := svc.GetProductByID(context.Background(), "nao-existe")

	assert.Error(t, err)
	assert.IsType(t, &apperror.NotFoundError{}, err)
	mockProducts.AssertExpectations(t)
}

// TestGetProductByID_SampleFallback testa que o detalhe de um produto de
// amostra resolve mesmo sem registro no banco.
func TestGetProductByID_SampleFallback(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	mockProducts.On("FindByID", mock.Anything, "sample-1").
		Return(domain.Product{}, apperror.NewNotFoundError("Produto não encontrado."))

	product, err := svc.GetProductByID(context.Background(), "sample-1")

	assert.NoError(t, err)
	assert.Equal(t, "sample-1", product.ID)
	assert.NotEmpty(t, product.Name)
}

// TestGetProductByID_EmptyID testa a validação de ID obrigatório.
func TestGetProductByID_EmptyID(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	_, err := svc.GetProductByID(context.Background(), "")

	assert.Error(t, err)
	assert.IsType(t, &apperror.ValidationError{}, err)
	mockProducts.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

// TestListCategories_UnseededStore testa o fallback de categorias de amostra.
func TestListCategories_UnseededStore(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	mockCategories.On("FindAll", mock.Anything).Return([]domain.Category{}, nil)

	result, err := svc.ListCategories(context.Background())

	assert.NoError(t, err)
	assert.NotEmpty(t, result)
	mockCategories.AssertExpectations(t)
}

// TestListCategories_RepoError testa a propagação de erro de infraestrutura.
func TestListCategories_RepoError(t *testing.T) {
	mockProducts := new(MockProductRepository)
	mockCategories := new(MockCategoryRepository)
	svc := catalogservice.NewService(mockProducts, mockCategories)

	mockCategories.On("FindAll", mock.Anything).
		Return([]domain.Category{}, errors.New("falha de conexão com o DB"))

	_, err := svc.ListCategories(context.Background())

	assert.Error(t, err)
	mockCategories.AssertExpectations(t)
}
