// Package brdoc reúne as máscaras e validações de documentos brasileiros
// usadas pelo checkout (CPF, telefone, CEP e número de cartão).
// Todas as funções são puras: string entra, string sai, sem estado.
package brdoc

import (
	"errors"
	"strings"
)

// Erros de validação de CPF.
var (
	// ErrInvalidFormat indica que o valor não contém exatamente 11 dígitos.
	ErrInvalidFormat = errors.New("CPF deve conter 11 dígitos")
	// ErrChecksumMismatch indica que os dígitos verificadores não conferem.
	ErrChecksumMismatch = errors.New("dígitos verificadores do CPF não conferem")
)

// onlyDigits remove tudo que não for dígito, limitando ao máximo informado.
// max <= 0 significa sem limite.
func onlyDigits(raw string, max int) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
			if max > 0 && b.Len() == max {
				break
			}
		}
	}
	return b.String()
}

// FormatCPF aplica a máscara 000.000.000-00 progressivamente enquanto o
// cliente digita. Limita a 11 dígitos.
func FormatCPF(raw string) string {
	d := onlyDigits(raw, 11)

	var b strings.Builder
	for i, r := range d {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatPhone aplica a máscara (11) 99999-9999 progressivamente.
// Aceita números de 10 dígitos (fixo) e 11 dígitos (celular).
func FormatPhone(raw string) string {
	d := onlyDigits(raw, 11)
	if d == "" {
		return ""
	}

	var b strings.Builder
	b.WriteByte('(')
	if len(d) <= 2 {
		b.WriteString(d)
		return b.String()
	}
	b.WriteString(d[:2])
	b.WriteString(") ")

	resto := d[2:]
	// O hífen separa os 4 últimos dígitos; com 9 dígitos o prefixo fica com 5.
	if len(resto) <= 5 {
		b.WriteString(resto)
		return b.String()
	}
	corte := len(resto) - 4
	b.WriteString(resto[:corte])
	b.WriteByte('-')
	b.WriteString(resto[corte:])
	return b.String()
}

// FormatCEP aplica a máscara 00000-000. Limita a 8 dígitos.
func FormatCEP(raw string) string {
	d := onlyDigits(raw, 8)
	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// FormatCardNumber insere um espaço a cada 4 dígitos do número do cartão.
func FormatCardNumber(raw string) string {
	d := onlyDigits(raw, 0)
	var b strings.Builder
	for i, r := range d {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripNonDigits expõe a remoção de não-dígitos para as bordas (gateway
// recebe CPF e telefone somente com dígitos).
func StripNonDigits(raw string) string {
	return onlyDigits(raw, 0)
}

// ValidateCPF valida um CPF pelo algoritmo oficial de módulo 11.
// Retorna nil se válido, ErrInvalidFormat se não houver exatamente 11
// dígitos, ou ErrChecksumMismatch se os dígitos verificadores falharem.
// CPFs com todos os dígitos iguais (000..., 111...) são inválidos apesar
// de passarem no cálculo.
func ValidateCPF(value string) error {
	d := onlyDigits(value, 0)
	if len(d) != 11 {
		return ErrInvalidFormat
	}

	iguais := true
	for i := 1; i < 11; i++ {
		if d[i] != d[0] {
			iguais = false
			break
		}
	}
	if iguais {
		return ErrChecksumMismatch
	}

	if digitoVerificador(d, 9) != int(d[9]-'0') {
		return ErrChecksumMismatch
	}
	if digitoVerificador(d, 10) != int(d[10]-'0') {
		return ErrChecksumMismatch
	}
	return nil
}

// digitoVerificador calcula o dígito verificador sobre os n primeiros
// dígitos, com pesos decrescentes a partir de n+1 (módulo 11).
func digitoVerificador(d string, n int) int {
	soma := 0
	for i := 0; i < n; i++ {
		soma += int(d[i]-'0') * (n + 1 - i)
	}
	resto := (soma * 10) % 11
	if resto == 10 {
		resto = 0
	}
	return resto
}
