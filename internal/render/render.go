// Package render produces the HTML fragments written into result panels.
// All user-supplied text goes through html/template so it is escaped.
package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/example/demolab/internal/calc"
	"github.com/example/demolab/internal/scope"
)

var fragTmpl = template.Must(template.New("frag").Parse(strings.TrimSpace(`
{{define "error"}}<div class="result error">{{.}}</div>{{end}}
{{define "lines"}}<div class="result">{{range .}}<p>{{.}}</p>{{end}}</div>{{end}}
`)))

func exec(name string, data any) string {
	var b strings.Builder
	if err := fragTmpl.ExecuteTemplate(&b, name, data); err != nil {
		// templates are static and data is strings; a failure here is a bug
		return `<div class="result error">render error</div>`
	}
	return b.String()
}

// Error renders an inline validation error fragment.
func Error(msg string) string { return exec("error", msg) }

func lines(ls ...string) string { return exec("lines", ls) }

func money(v float64) string { return fmt.Sprintf("$%.2f", v) }

// Price renders the pricing breakdown summary.
func Price(b calc.PriceBreakdown) string {
	return lines(
		fmt.Sprintf("%d x %s", b.Quantity, money(b.UnitPrice)),
		"Subtotal: "+money(b.Subtotal),
		"Tax: "+money(b.TaxAmount),
		"Total: "+money(b.Total),
	)
}

// Format renders the text-transform summary.
func Format(input, output string, style calc.Style) string {
	return lines(
		"Style: "+style.String(),
		"Input: "+input,
		"Output: "+output,
	)
}

// Stats renders the array-statistics summary.
func Stats(st calc.Stats) string {
	return lines(
		fmt.Sprintf("Count: %d", st.Count),
		fmt.Sprintf("Sum: %g", st.Sum),
		fmt.Sprintf("Min: %g", st.Min),
		fmt.Sprintf("Max: %g", st.Max),
		fmt.Sprintf("Average: %.2f", st.Average),
	)
}

// Global renders the shared-counter demo summary.
func Global(r scope.GlobalResult) string {
	return lines(r.Message, fmt.Sprintf("Counter: %d", r.Counter))
}

// Local renders the local-scope demo summary.
func Local(r scope.LocalResult) string {
	return lines(r.Message, fmt.Sprintf("Shared counter (unchanged): %d", r.Counter))
}
