package domain

import (
	"time"
)

// Product representa um item do catálogo da loja (a Entidade).
// Do ponto de vista da vitrine o produto é somente-leitura: quem escreve
// é o painel administrativo, fora deste sistema.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url"`
	GalleryURLs []string  `json:"gallery_urls,omitempty"`
	CategoryID  string    `json:"category_id"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`

	// Relação carregada sob demanda (página de produto)
	Category *Category `json:"category,omitempty"`
}

// Category representa uma categoria de produtos. Somente-leitura.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// --- Interfaces de Contrato (O CORAÇÃO DA ARQUITETURA LIMPA) ---

// CatalogService é a interface que a camada de Serviço DEVE implementar.
// Ela define o que o Handler (Camada API) pode pedir ao catálogo.
type CatalogService interface {
	ListProducts(ctx Context, filter ProductFilter) ([]Product, error)
	GetProductByID(ctx Context, id string) (Product, error)
	ListCategories(ctx Context) ([]Category, error)
}

// --- Estruturas Auxiliares (Filtros) ---

// ProductFilter define os parâmetros de busca da listagem de produtos.
// Search procura em nome e descrição; CategoryID vazio significa "todas";
// FeaturedOnly reproduz a vitrine de destaques da Home.
type ProductFilter struct {
	CategoryID   string
	Search       string
	FeaturedOnly bool
}

// Context é uma interface que encapsula o Go context.Context.
// É usada para propagar timeout e cancelamento pelas camadas sem que o
// domínio dependa diretamente do pacote "context".
type Context interface{}
