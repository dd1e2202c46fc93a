package domain

import "time"

// Review representa uma avaliação de produto. Somente-leitura para a
// vitrine; a nota vai de 1 a 5.
type Review struct {
	ID           string    `json:"id"`
	ProductID    string    `json:"product_id"`
	CustomerName string    `json:"customer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ProductReviews agrupa as avaliações de um produto com a média aritmética
// simples exibida na página do produto.
type ProductReviews struct {
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"average_rating"`
}
