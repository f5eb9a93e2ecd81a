package suppliers

import (
	"log/slog"

	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
	"github.com/casadopescador/console/internal/shared"
)

// BasePath is where the supplier page is mounted.
const BasePath = "/fornecedores"

// Deps groups what the supplier page needs.
type Deps struct {
	Logger    *slog.Logger
	Client    *apiclient.Client
	Templates console.Renderer
	CSRF      *shared.CSRFManager
	Store     console.Store
	Guard     console.Guard
}

// NewHandler builds the supplier page.
func NewHandler(d Deps) *console.Handler[Supplier] {
	ctrl := console.NewController(console.Config[Supplier]{
		Schema:   NewSchema(),
		Resource: NewRepository(d.Client),
		Guard:    d.Guard,
		Logger:   d.Logger,
	})
	return console.NewHandler(console.HandlerParams[Supplier]{
		Logger:     d.Logger,
		Controller: ctrl,
		Templates:  d.Templates,
		CSRF:       d.CSRF,
		Store:      d.Store,
		Template:   "pages/suppliers.html",
		BasePath:   BasePath,
	})
}
