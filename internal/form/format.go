package form

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// OnlyDigits reduz o valor aos dígitos.
func OnlyDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// FormatCPF aplica a máscara ###.###.###-## conforme o usuário digita.
// Separador só aparece quando já existe dígito depois dele.
func FormatCPF(value string) string {
	d := OnlyDigits(value)
	if len(d) > 11 {
		d = d[:11]
	}

	var b strings.Builder
	for i := 0; i < len(d); i++ {
		switch i {
		case 3, 6:
			b.WriteByte('.')
		case 9:
			b.WriteByte('-')
		}
		b.WriteByte(d[i])
	}
	return b.String()
}

// FormatPhone aplica (##) #####-#### (ou mais curto para fixo).
func FormatPhone(value string) string {
	d := OnlyDigits(value)
	if len(d) > 11 {
		d = d[:11]
	}

	if len(d) <= 2 {
		return d
	}

	rest := d[2:]
	if len(rest) <= 5 {
		return "(" + d[:2] + ") " + rest
	}
	return "(" + d[:2] + ") " + rest[:5] + "-" + rest[5:]
}

// FormatCEP aplica #####-###.
func FormatCEP(value string) string {
	d := OnlyDigits(value)
	if len(d) > 8 {
		d = d[:8]
	}

	if len(d) <= 5 {
		return d
	}
	return d[:5] + "-" + d[5:]
}

// FormatCurrency interpreta os dígitos como centavos e renderiza em
// reais: "123456" vira "R$ 1.234,56".
func FormatCurrency(value string) string {
	d := OnlyDigits(value)
	if len(d) > 15 {
		d = d[:15]
	}
	if d == "" {
		d = "0"
	}

	cents, _ := strconv.ParseInt(d, 10, 64)
	return BRL(float64(cents) / 100)
}

// BRL formata um valor em reais com agrupamento pt-BR.
func BRL(v float64) string {
	return ptBR.Sprintf("R$ %v", number.Decimal(v, number.Scale(2)))
}
