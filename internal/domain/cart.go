package domain

// CartItem representa uma linha do carrinho. Nome, preço e imagem são
// desnormalizados no momento da adição: mudanças de preço no catálogo
// depois disso NÃO afetam retroativamente a linha.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// Cart é a visão do carrinho devolvida para a API: as linhas na ordem de
// inserção mais o total derivado (recalculado em toda leitura, nunca cacheado).
type Cart struct {
	Items          []CartItem `json:"items"`
	Total          float64    `json:"total"`
	TotalFormatted string     `json:"total_formatted"`
	ItemCount      int        `json:"item_count"`
}

// CartService define o contrato do guardião de estado do carrinho.
// O estado vive em memória, escopado pela sessão do navegador; não há
// persistência entre reinícios do serviço.
type CartService interface {
	AddToCart(sessionID string, product Product) Cart
	UpdateQuantity(sessionID, productID string, quantity int) Cart
	RemoveFromCart(sessionID, productID string) Cart
	ClearCart(sessionID string)
	GetCart(sessionID string) Cart
}
