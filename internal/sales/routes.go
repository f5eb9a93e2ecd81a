package sales

import (
	"log/slog"
	"time"

	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
	"github.com/casadopescador/console/internal/masterdata/customers"
	"github.com/casadopescador/console/internal/masterdata/products"
	"github.com/casadopescador/console/internal/shared"
)

// BasePath is where the sales page is mounted.
const BasePath = "/vendas"

// Deps groups what the sales page needs.
type Deps struct {
	Logger    *slog.Logger
	Client    *apiclient.Client
	Templates console.Renderer
	CSRF      *shared.CSRFManager
	Store     console.Store
	Guard     console.Guard
	// Now stamps the default issue date; time.Now when nil.
	Now func() time.Time
}

// NewController builds the sales controller with the customer and product
// lists as references.
func NewController(d Deps) *console.Controller[Sale] {
	return console.NewController(console.Config[Sale]{
		Schema:   NewSchema(),
		Resource: NewRepository(d.Client),
		References: []console.Reference{
			customers.Reference(d.Client),
			products.Reference(d.Client),
		},
		Guard:  d.Guard,
		Logger: d.Logger,
		Now:    d.Now,
	})
}

// NewHandler builds the sales page.
func NewHandler(d Deps) *console.Handler[Sale] {
	return console.NewHandler(console.HandlerParams[Sale]{
		Logger:     d.Logger,
		Controller: NewController(d),
		Templates:  d.Templates,
		CSRF:       d.CSRF,
		Store:      d.Store,
		Template:   "pages/sales.html",
		BasePath:   BasePath,
	})
}
