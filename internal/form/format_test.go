package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatCPFMask(t *testing.T) {
	assert.Equal(t, "123.456.789-00", FormatCPF("12345678900"))
	assert.Equal(t, "123.456.789-00", FormatCPF("123.456.789-00"))

	// Separador só aparece quando já existe dígito depois dele
	assert.Equal(t, "123", FormatCPF("123"))
	assert.Equal(t, "123.4", FormatCPF("1234"))
	assert.Equal(t, "123.456.7", FormatCPF("1234567"))

	// Excesso de dígitos é cortado no tamanho da máscara
	assert.Equal(t, "123.456.789-00", FormatCPF("123456789001234"))
}

func TestFormatPhoneMask(t *testing.T) {
	assert.Equal(t, "(11) 98888-7777", FormatPhone("11988887777"))
	assert.Equal(t, "(11) 98888-7777", FormatPhone("(11) 98888-7777"))

	// Fixo com 10 dígitos fica mais curto
	assert.Equal(t, "(11) 32654-321", FormatPhone("1132654321"))

	assert.Equal(t, "11", FormatPhone("11"))
	assert.Equal(t, "(11) 9", FormatPhone("119"))
	assert.Equal(t, "(11) 98888-7777", FormatPhone("119888877779999"))
}

func TestFormatCEPMask(t *testing.T) {
	assert.Equal(t, "01310-100", FormatCEP("01310100"))
	assert.Equal(t, "01310-100", FormatCEP("01310-100"))
	assert.Equal(t, "01310", FormatCEP("01310"))
	assert.Equal(t, "01310-1", FormatCEP("013101"))
	assert.Equal(t, "01310-100", FormatCEP("0131010055"))
}

func TestFormatCurrencyCentavos(t *testing.T) {
	assert.Equal(t, "R$ 1.234,56", FormatCurrency("123456"))
	assert.Equal(t, "R$ 0,05", FormatCurrency("5"))
	assert.Equal(t, "R$ 0,00", FormatCurrency(""))
	assert.Equal(t, "R$ 1.500,00", FormatCurrency("R$ 1.500,00"))
}

// Saída da máscara só contém dígitos e os separadores do próprio
// formato, e nunca passa do tamanho máximo.
func TestMaskOutputsOnlyDigitsAndSeparators(t *testing.T) {
	inputs := []string{"", "a", "abc123def456ghi789jkl00", "!!!99999999999999999999", "12345678900"}

	for _, in := range inputs {
		cpf := FormatCPF(in)
		assert.LessOrEqual(t, len(cpf), 14)
		assert.True(t, onlyChars(cpf, "0123456789.-"), "cpf: %q", cpf)

		phone := FormatPhone(in)
		assert.LessOrEqual(t, len(phone), 15)
		assert.True(t, onlyChars(phone, "0123456789() -"), "phone: %q", phone)

		cep := FormatCEP(in)
		assert.LessOrEqual(t, len(cep), 9)
		assert.True(t, onlyChars(cep, "0123456789-"), "cep: %q", cep)
	}
}

func onlyChars(s, allowed string) bool {
	for _, r := range s {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}
