package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter formatea montos con dos decimales según el idioma, seguido de la moneda.
// Ej. (fr, FCFA): 12.99 -> "12,99 FCFA".
// Los separadores salen de x/text; los dígitos, del decimal sin pasar por float64.
type Formatter struct {
	group    string
	point    string
	currency string
}

// NewFormatter construye el formateador. Un locale inválido cae en francés.
func NewFormatter(locale, currency string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.French
	}
	group, point := separators(message.NewPrinter(tag))
	return &Formatter{group: group, point: point, currency: currency}
}

// separators extrae el separador de miles y el decimal de un número de muestra.
func separators(p *message.Printer) (group, point string) {
	sample := p.Sprint(number.Decimal(1234567.5, number.Scale(1)))
	if i, j := strings.IndexRune(sample, '1'), strings.IndexRune(sample, '2'); i >= 0 && j > i {
		group = sample[i+1 : j]
	}
	point = "."
	if i, j := strings.LastIndexByte(sample, '7'), strings.LastIndexByte(sample, '5'); i >= 0 && j > i+1 {
		point = sample[i+1 : j]
	}
	return group, point
}

// Format devuelve el monto formateado.
func (f *Formatter) Format(amount decimal.Decimal) string {
	digits := amount.StringFixed(2)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	intPart, frac, _ := strings.Cut(digits, ".")

	var b strings.Builder
	b.WriteString(sign)
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteString(f.group)
		}
		b.WriteRune(r)
	}
	b.WriteString(f.point)
	b.WriteString(frac)
	if f.currency != "" {
		b.WriteString(" ")
		b.WriteString(f.currency)
	}
	return b.String()
}

// Currency devuelve el código de moneda configurado.
func (f *Formatter) Currency() string { return f.currency }
