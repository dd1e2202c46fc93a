package catalogservice

import (
	"strings"
	"time"

	"vitrine/internal/domain"
)

// Catálogo de amostra exibido quando a loja ainda não foi configurada
// (nenhum produto cadastrado). Permite navegar e montar o layout da
// vitrine antes do lojista preencher o catálogo real.

var sampleCategories = []domain.Category{
	{ID: "sample-cat-1", Name: "Tapetes"},
	{ID: "sample-cat-2", Name: "Mantas"},
}

var sampleProducts = []domain.Product{
	{
		ID:          "sample-1",
		Name:        "Tapete Felpudo Azul 2x1,5m",
		Description: "Tapete felpudo antiderrapante, toque macio, ideal para sala e quarto.",
		Price:       189.90,
		Stock:       12,
		ImageURL:    "https://images.pexels.com/photos/6480707/pexels-photo-6480707.jpeg",
		CategoryID:  "sample-cat-1",
		Featured:    true,
		CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "sample-2",
		Name:        "Tapete Geométrico Cinza 2x2m",
		Description: "Estampa geométrica moderna, fácil de limpar, borda reforçada.",
		Price:       249.90,
		Stock:       8,
		ImageURL:    "https://images.pexels.com/photos/6527061/pexels-photo-6527061.jpeg",
		CategoryID:  "sample-cat-1",
		Featured:    true,
		CreatedAt:   time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC),
	},
	{
		ID:          "sample-3",
		Name:        "Manta de Sofá Bege",
		Description: "Manta de algodão com franjas, 1,60x1,20m.",
		Price:       89.90,
		Stock:       20,
		ImageURL:    "https://images.pexels.com/photos/6032280/pexels-photo-6032280.jpeg",
		CategoryID:  "sample-cat-2",
		Featured:    false,
		CreatedAt:   time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC),
	},
}

// filterSample aplica o mesmo filtro da listagem sobre o catálogo de amostra.
func filterSample(filter domain.ProductFilter) []domain.Product {
	result := []domain.Product{}
	for _, p := range sampleProducts {
		if filter.CategoryID != "" && p.CategoryID != filter.CategoryID {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		if filter.Search != "" && !contains(p.Name, filter.Search) && !contains(p.Description, filter.Search) {
			continue
		}
		result = append(result, p)
	}
	return result
}

func contains(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
