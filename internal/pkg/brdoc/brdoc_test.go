package brdoc_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vitrine/internal/pkg/brdoc"
)

// TestValidateCPF_Valido testa o CPF de referência conhecido como válido.
func TestValidateCPF_Valido(t *testing.T) {
	assert.NoError(t, brdoc.ValidateCPF("529.982.247-25"))
	assert.NoError(t, brdoc.ValidateCPF("52998224725"))
}

// TestValidateCPF_UltimoDigitoAlterado testa o mesmo CPF com o último dígito trocado.
func TestValidateCPF_UltimoDigitoAlterado(t *testing.T) {
	err := brdoc.ValidateCPF("529.982.247-26")
	assert.ErrorIs(t, err, brdoc.ErrChecksumMismatch)
}

// TestValidateCPF_DigitosIdenticos testa que todos os 11 dígitos iguais falham.
func TestValidateCPF_DigitosIdenticos(t *testing.T) {
	for d := '0'; d <= '9'; d++ {
		cpf := strings.Repeat(string(d), 11)
		assert.Error(t, brdoc.ValidateCPF(cpf), "CPF %s deveria ser inválido", cpf)
	}
}

// TestValidateCPF_FormatoInvalido testa valores sem exatamente 11 dígitos.
func TestValidateCPF_FormatoInvalido(t *testing.T) {
	assert.ErrorIs(t, brdoc.ValidateCPF(""), brdoc.ErrInvalidFormat)
	assert.ErrorIs(t, brdoc.ValidateCPF("123.456"), brdoc.ErrInvalidFormat)
	assert.ErrorIs(t, brdoc.ValidateCPF("529982247250"), brdoc.ErrInvalidFormat)
	assert.ErrorIs(t, brdoc.ValidateCPF("abc"), brdoc.ErrInvalidFormat)
}

// TestFormatCPF_Progressivo testa a máscara conforme o cliente digita.
func TestFormatCPF_Progressivo(t *testing.T) {
	assert.Equal(t, "", brdoc.FormatCPF(""))
	assert.Equal(t, "529", brdoc.FormatCPF("529"))
	assert.Equal(t, "529.9", brdoc.FormatCPF("5299"))
	assert.Equal(t, "529.982.247-25", brdoc.FormatCPF("52998224725"))
	// Dígitos além de 11 são descartados
	assert.Equal(t, "529.982.247-25", brdoc.FormatCPF("52998224725999"))
	// Entrada suja só mantém dígitos e a pontuação fixa
	assert.Equal(t, "529.982.247-25", brdoc.FormatCPF("a529x.982 247//25"))
}

// TestFormatPhone_Progressivo testa a máscara de telefone.
func TestFormatPhone_Progressivo(t *testing.T) {
	assert.Equal(t, "", brdoc.FormatPhone(""))
	assert.Equal(t, "(1", brdoc.FormatPhone("1"))
	assert.Equal(t, "(11", brdoc.FormatPhone("11"))
	assert.Equal(t, "(11) 9", brdoc.FormatPhone("119"))
	assert.Equal(t, "(11) 9999-9999", brdoc.FormatPhone("1199999999"))
	assert.Equal(t, "(11) 99999-9999", brdoc.FormatPhone("11999999999"))
	// Limite de 11 dígitos
	assert.Equal(t, "(11) 99999-9999", brdoc.FormatPhone("119999999990000"))
}

// TestFormatCEP testa a máscara de CEP (separador após o 5º dígito).
func TestFormatCEP(t *testing.T) {
	assert.Equal(t, "01310", brdoc.FormatCEP("01310"))
	assert.Equal(t, "01310-100", brdoc.FormatCEP("01310100"))
	assert.Equal(t, "01310-100", brdoc.FormatCEP("01310-100-999"))
	assert.Equal(t, "", brdoc.FormatCEP("abc"))
}

// TestFormatCardNumber testa o agrupamento de 4 em 4 dígitos.
func TestFormatCardNumber(t *testing.T) {
	assert.Equal(t, "4111 1111 1111 1111", brdoc.FormatCardNumber("4111111111111111"))
	assert.Equal(t, "4111 11", brdoc.FormatCardNumber("411111"))
	assert.Equal(t, "4111 1111 1111 1111", brdoc.FormatCardNumber("4111 1111 1111 1111"))
}

// TestSaidaApenasDigitosESeparadores garante que nenhuma máscara vaza
// caracteres da entrada além dos dígitos e separadores fixos.
func TestSaidaApenasDigitosESeparadores(t *testing.T) {
	suja := "ab!@#12 345-67xyz89 01"

	permitido := func(s, extras string) bool {
		for _, r := range s {
			if (r < '0' || r > '9') && !strings.ContainsRune(extras, r) {
				return false
			}
		}
		return true
	}

	assert.True(t, permitido(brdoc.FormatCPF(suja), ".-"))
	assert.True(t, permitido(brdoc.FormatPhone(suja), "() -"))
	assert.True(t, permitido(brdoc.FormatCEP(suja), "-"))
	assert.True(t, permitido(brdoc.FormatCardNumber(suja), " "))
}
