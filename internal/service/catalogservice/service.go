package catalogservice

import (
	"context"
	"errors"

	"vitrine/internal/domain"
	apperror "vitrine/internal/errors"
)

// ProductRepository define o contrato que este Serviço espera da camada
// de Persistência (DB, Cache).
type ProductRepository interface {
	FindAll(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (domain.Product, error)
}

// CategoryRepository define o contrato de leitura das categorias.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]domain.Category, error)
}

// Service implementa a interface domain.CatalogService.
//
// Se a loja ainda não tiver produtos cadastrados, a listagem cai no
// catálogo de amostra (sample.go) para que a vitrine nunca abra vazia.
type Service struct {
	products   ProductRepository
	categories CategoryRepository
}

// NewService cria e retorna uma nova instância do Serviço de Catálogo.
func NewService(products ProductRepository, categories CategoryRepository) *Service {
	return &Service{products: products, categories: categories}
}

// ListProducts retorna os produtos visíveis na vitrine, aplicando o filtro
// de categoria, busca textual e destaque.
func (s *Service) ListProducts(ctx domain.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	result, err := s.products.FindAll(ctxGo, filter)
	if err != nil {
		return nil, err
	}
	if len(result) > 0 {
		return result, nil
	}

	// Lista vazia pode significar "filtro sem resultados" ou "loja sem
	// catálogo". Só usamos a amostra no segundo caso.
	unseeded, err := s.storeIsUnseeded(ctxGo, filter)
	if err != nil {
		return nil, err
	}
	if unseeded {
		return filterSample(filter), nil
	}
	return result, nil
}

// GetProductByID retorna um produto pelo seu ID, incluindo a categoria.
func (s *Service) GetProductByID(ctx domain.Context, id string) (domain.Product, error) {
	if id == "" {
		return domain.Product{}, apperror.NewValidationError("O ID do produto é obrigatório.")
	}

	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	product, err := s.products.FindByID(ctxGo, id)
	if err != nil {
		var notFound *apperror.NotFoundError
		if errors.As(err, &notFound) {
			// Produtos de amostra também têm página de detalhe.
			for _, p := range sampleProducts {
				if p.ID == id {
					return p, nil
				}
			}
			return domain.Product{}, apperror.NewNotFoundError("Produto não encontrado.")
		}
		return domain.Product{}, err
	}
	return product, nil
}

// ListCategories retorna as categorias da loja, ordenadas por nome.
func (s *Service) ListCategories(ctx domain.Context) ([]domain.Category, error) {
	ctxGo, ok := ctx.(context.Context)
	if !ok {
		ctxGo = context.Background()
	}

	result, err := s.categories.FindAll(ctxGo)
	if err != nil {
		return nil, err
	}
	if len(result) == 0 {
		return sampleCategories, nil
	}
	return result, nil
}

// storeIsUnseeded verifica se o catálogo real está vazio. Quando o filtro
// já é vazio, a consulta original responde a pergunta sem nova ida ao banco.
func (s *Service) storeIsUnseeded(ctx context.Context, filter domain.ProductFilter) (bool, error) {
	if filter.CategoryID == "" && filter.Search == "" && !filter.FeaturedOnly {
		return true, nil
	}
	all, err := s.products.FindAll(ctx, domain.ProductFilter{})
	if err != nil {
		return false, err
	}
	return len(all) == 0, nil
}
