package money

import (
	"fmt"
	"math"
	"strings"
)

// Centavos representa um valor monetário em centavos de Real (unidade mínima).
// Toda a aritmética de dinheiro do sistema acontece em inteiros; float64 só
// aparece nas bordas (gateway de pagamento e colunas NUMERIC do DB).
type Centavos int64

// FromReais converte um valor em reais (float64) para Centavos,
// arredondando para o centavo mais próximo.
func FromReais(valor float64) Centavos {
	return Centavos(math.Round(valor * 100))
}

// Reais converte o valor de volta para float64 (borda de integração).
func (c Centavos) Reais() float64 {
	return float64(c) / 100
}

// Mul multiplica o valor por uma quantidade (linha do carrinho: preço × qtd).
func (c Centavos) Mul(qtd int) Centavos {
	return c * Centavos(qtd)
}

// Format formata o valor para exibição no padrão brasileiro: "R$ 1.234,56".
// Sempre dois dígitos decimais e vírgula como separador decimal.
func (c Centavos) Format() string {
	negativo := c < 0
	if negativo {
		c = -c
	}

	reais := int64(c) / 100
	cents := int64(c) % 100

	// Separador de milhar (ponto) na parte inteira
	digits := fmt.Sprintf("%d", reais)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sinal := ""
	if negativo {
		sinal = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sinal, b.String(), cents)
}
