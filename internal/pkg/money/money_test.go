package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vitrine/internal/pkg/money"
)

// TestFromReais_Arredondamento testa a conversão de reais para centavos.
func TestFromReais_Arredondamento(t *testing.T) {
	assert.Equal(t, money.Centavos(1000), money.FromReais(10.00))
	assert.Equal(t, money.Centavos(2550), money.FromReais(25.50))
	// Valores com erro de ponto flutuante devem arredondar corretamente
	assert.Equal(t, money.Centavos(4550), money.FromReais(45.499999999999996))
	assert.Equal(t, money.Centavos(10), money.FromReais(0.1))
}

// TestFormat_PadraoBrasileiro testa a formatação "R$ 45,50".
func TestFormat_PadraoBrasileiro(t *testing.T) {
	assert.Equal(t, "R$ 45,50", money.Centavos(4550).Format())
	assert.Equal(t, "R$ 0,00", money.Centavos(0).Format())
	assert.Equal(t, "R$ 0,05", money.Centavos(5).Format())
	assert.Equal(t, "R$ 1.234,56", money.Centavos(123456).Format())
	assert.Equal(t, "R$ 1.000.000,00", money.Centavos(100000000).Format())
	assert.Equal(t, "-R$ 10,00", money.Centavos(-1000).Format())
}

// TestMul_LinhaDoCarrinho testa o subtotal de uma linha (preço × quantidade).
func TestMul_LinhaDoCarrinho(t *testing.T) {
	// carrinho do teste de ponta a ponta: 2 × R$ 10,00 + 1 × R$ 25,50 = R$ 45,50
	total := money.FromReais(10.00).Mul(2) + money.FromReais(25.50).Mul(1)
	assert.Equal(t, money.Centavos(4550), total)
	assert.Equal(t, "R$ 45,50", total.Format())
}

// TestReais_Ida_e_Volta testa a conversão de volta para float64 na borda.
func TestReais_Ida_e_Volta(t *testing.T) {
	assert.InDelta(t, 45.50, money.Centavos(4550).Reais(), 0.0001)
}
