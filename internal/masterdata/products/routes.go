package products

import (
	"log/slog"

	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
	"github.com/casadopescador/console/internal/masterdata/suppliers"
	"github.com/casadopescador/console/internal/shared"
)

// BasePath is where the product page is mounted.
const BasePath = "/produtos"

// Deps groups what the product page needs.
type Deps struct {
	Logger    *slog.Logger
	Client    *apiclient.Client
	Templates console.Renderer
	CSRF      *shared.CSRFManager
	Store     console.Store
	Guard     console.Guard
}

// NewHandler builds the product page. The supplier list is loaded alongside
// the products to fill the supplier select and column.
func NewHandler(d Deps) *console.Handler[Product] {
	ctrl := console.NewController(console.Config[Product]{
		Schema:     NewSchema(),
		Resource:   NewRepository(d.Client),
		References: []console.Reference{suppliers.Reference(d.Client)},
		Guard:      d.Guard,
		Logger:     d.Logger,
	})
	return console.NewHandler(console.HandlerParams[Product]{
		Logger:     d.Logger,
		Controller: ctrl,
		Templates:  d.Templates,
		CSRF:       d.CSRF,
		Store:      d.Store,
		Template:   "pages/products.html",
		BasePath:   BasePath,
	})
}
