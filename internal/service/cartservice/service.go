package cartservice

import (
	"vitrine/internal/domain"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/pkg/money"
)

// CartRepository define o contrato que este Serviço espera do armazém de
// carrinhos (em memória, escopado por sessão).
type CartRepository interface {
	Load(sessionID string) []domain.CartItem
	Store(sessionID string, items []domain.CartItem)
	Clear(sessionID string)
}

// Service é a estrutura que implementa a interface domain.CartService.
type Service struct {
	repo   CartRepository
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Carrinho.
func NewService(repo CartRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// AddToCart adiciona um produto ao carrinho da sessão. Se o produto já
// está no carrinho, incrementa a quantidade em 1; caso contrário, cria a
// linha com quantidade 1 e captura o preço atual (mudanças de preço
// posteriores não afetam a linha).
func (s *Service) AddToCart(sessionID string, product domain.Product) domain.Cart {
	items := s.repo.Load(sessionID)

	encontrado := false
	for i := range items {
		if items[i].ProductID == product.ID {
			items[i].Quantity++
			encontrado = true
			break
		}
	}
	if !encontrado {
		items = append(items, domain.CartItem{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			ImageURL:  product.ImageURL,
			Quantity:  1,
		})
	}

	s.repo.Store(sessionID, items)
	s.logger.Debug("Produto adicionado ao carrinho.", map[string]interface{}{
		"session_id": sessionID,
		"product_id": product.ID,
	})
	return s.view(items)
}

// UpdateQuantity define a quantidade de uma linha. Quantidade <= 0 remove
// a linha inteira (o decremento abaixo de 1 é uma remoção, não um clamp).
func (s *Service) UpdateQuantity(sessionID, productID string, quantity int) domain.Cart {
	items := s.repo.Load(sessionID)

	if quantity <= 0 {
		items = remover(items, productID)
	} else {
		for i := range items {
			if items[i].ProductID == productID {
				items[i].Quantity = quantity
				break
			}
		}
	}

	s.repo.Store(sessionID, items)
	return s.view(items)
}

// RemoveFromCart remove a linha do produto, independentemente da quantidade.
func (s *Service) RemoveFromCart(sessionID, productID string) domain.Cart {
	items := remover(s.repo.Load(sessionID), productID)
	s.repo.Store(sessionID, items)
	return s.view(items)
}

// ClearCart esvazia o carrinho da sessão (chamado após o pagamento ser
// aceito). Leituras subsequentes refletem o carrinho vazio imediatamente.
func (s *Service) ClearCart(sessionID string) {
	s.repo.Clear(sessionID)
}

// GetCart devolve a visão atual do carrinho. O total é derivado das
// linhas em toda leitura — nunca cacheado.
func (s *Service) GetCart(sessionID string) domain.Cart {
	return s.view(s.repo.Load(sessionID))
}

// remover filtra a linha do produto preservando a ordem das demais.
func remover(items []domain.CartItem, productID string) []domain.CartItem {
	restantes := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			restantes = append(restantes, item)
		}
	}
	return restantes
}

// view monta a visão do carrinho com o total em centavos (aritmética
// inteira) convertido só na borda de exibição.
func (s *Service) view(items []domain.CartItem) domain.Cart {
	var total money.Centavos
	count := 0
	for _, item := range items {
		total += money.FromReais(item.Price).Mul(item.Quantity)
		count += item.Quantity
	}

	return domain.Cart{
		Items:          items,
		Total:          total.Reais(),
		TotalFormatted: total.Format(),
		ItemCount:      count,
	}
}
