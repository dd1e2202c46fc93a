package cartservice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitrine/internal/domain"
	"vitrine/internal/pkg/logger"
	"vitrine/internal/repository/cartrepo"
	"vitrine/internal/service/cartservice"
)

func novoServico() *cartservice.Service {
	return cartservice.NewService(cartrepo.NewMemoryCartRepository(), logger.NewLogger("error"))
}

var (
	produtoTapete = domain.Product{ID: "p1", Name: "Tapete Azul", Price: 10.00, ImageURL: "/img/p1.jpg"}
	produtoManta  = domain.Product{ID: "p2", Name: "Manta Cinza", Price: 25.50, ImageURL: "/img/p2.jpg"}
)

// TestAddToCart_MesmoProdutoMesclaLinha testa que adicionar o mesmo produto
// duas vezes gera uma linha com quantidade 2, não duas linhas.
func TestAddToCart_MesmoProdutoMesclaLinha(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)
	cart := svc.AddToCart("sess-1", produtoTapete)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 2, cart.ItemCount)
}

// TestAddToCart_CapturaPrecoNoMomentoDaAdicao testa que mudança de preço
// depois da adição não afeta a linha.
func TestAddToCart_CapturaPrecoNoMomentoDaAdicao(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)

	maisCaro := produtoTapete
	maisCaro.Price = 99.99
	cart := svc.AddToCart("sess-1", maisCaro)

	// A linha mantém o preço capturado na primeira adição
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, 10.00, cart.Items[0].Price)
}

// TestUpdateQuantity_ZeroRemoveALinha testa que quantidade 0 remove a linha
// e o total passa a refletir só as restantes.
func TestUpdateQuantity_ZeroRemoveALinha(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)
	svc.AddToCart("sess-1", produtoManta)

	cart := svc.UpdateQuantity("sess-1", "p1", 0)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
	assert.Equal(t, 25.50, cart.Total)
}

// TestTotal_SomaDasLinhasFormatada testa o carrinho do teste de ponta a
// ponta: 2 × R$ 10,00 + 1 × R$ 25,50 = R$ 45,50.
func TestTotal_SomaDasLinhasFormatada(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)
	svc.AddToCart("sess-1", produtoTapete)
	cart := svc.AddToCart("sess-1", produtoManta)

	assert.Equal(t, 45.50, cart.Total)
	assert.Equal(t, "R$ 45,50", cart.TotalFormatted)
	assert.Equal(t, 3, cart.ItemCount)
}

// TestClearCart_LeituraPosLimpezaRefleteVazio testa que o "limpar" é
// autoritativo: a leitura seguinte já devolve carrinho vazio.
func TestClearCart_LeituraPosLimpezaRefleteVazio(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)
	svc.ClearCart("sess-1")

	cart := svc.GetCart("sess-1")
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0.0, cart.Total)
	assert.Equal(t, "R$ 0,00", cart.TotalFormatted)
}

// TestSessoesIsoladas testa que carrinhos de sessões diferentes não se misturam.
func TestSessoesIsoladas(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)
	svc.AddToCart("sess-2", produtoManta)

	assert.Equal(t, "p1", svc.GetCart("sess-1").Items[0].ProductID)
	assert.Equal(t, "p2", svc.GetCart("sess-2").Items[0].ProductID)
}

// TestRemoveFromCart testa a remoção direta de uma linha.
func TestRemoveFromCart(t *testing.T) {
	svc := novoServico()

	svc.AddToCart("sess-1", produtoTapete)
	svc.AddToCart("sess-1", produtoManta)

	cart := svc.RemoveFromCart("sess-1", "p2")
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
}
