package view

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/casadopescador/console/internal/shared"
	"github.com/casadopescador/console/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
	loc       *time.Location
}

// Option customises an Engine.
type Option func(*Engine)

// WithLocation sets the time zone dates are shown in. The default is UTC.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NavLink is an entry of the top navigation bar.
type NavLink struct {
	Label string
	Path  string
}

// Navigation lists the console sections in menu order.
var Navigation = []NavLink{
	{Label: "Home", Path: "/"},
	{Label: "Clientes", Path: "/clientes"},
	{Label: "Fornecedores", Path: "/fornecedores"},
	{Label: "Vendas", Path: "/vendas"},
	{Label: "Produtos", Path: "/produtos"},
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flashes     []shared.FlashMessage
	CurrentPath string
	Nav         []NavLink
	Data        any
}

var printer = message.NewPrinter(language.BrazilianPortuguese)

// NewEngine parses the embedded templates.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{loc: time.UTC}
	for _, opt := range opts {
		opt(e)
	}
	funcMap := template.FuncMap{
		"formatCurrency": FormatCurrency,
		"formatNumber":   FormatNumber,
		"formatDate":     func(value string) string { return FormatDate(value, e.loc) },
		"year":           func() int { return time.Now().In(e.loc).Year() },
		"dict":           dict,
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	e.templates = tpl
	return e, nil
}

// Render executes a named template with TemplateData. Nothing is written when
// execution fails.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	if data.Nav == nil {
		data.Nav = Navigation
	}
	var buf bytes.Buffer
	if err := e.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// FormatCurrency renders an amount as Brazilian reais, e.g. "R$ 1.234,50".
func FormatCurrency(value any) string {
	var amount float64
	switch v := value.(type) {
	case float64:
		amount = v
	case float32:
		amount = float64(v)
	case int:
		amount = float64(v)
	case int64:
		amount = float64(v)
	default:
		return ""
	}
	return printer.Sprintf("R$ %.2f", amount)
}

// FormatNumber renders a quantity with pt-BR separators, e.g. "1.000.000" or
// "2,5".
func FormatNumber(value any) string {
	switch v := value.(type) {
	case float64, float32, int, int64:
		return printer.Sprint(number.Decimal(v))
	default:
		return ""
	}
}

// dict builds a map from alternating keys and values so partials can take
// several arguments.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict: odd number of arguments")
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict: key %v is not a string", pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatDate renders an ISO date or datetime as dd/mm/yyyy in loc. Values with
// an offset are converted to loc; values without one are read as local to loc.
// Values that do not parse are returned unchanged.
func FormatDate(value string, loc *time.Location) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.In(loc).Format("02/01/2006")
		}
	}
	return value
}
