package customers

import (
	"log/slog"

	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
	"github.com/casadopescador/console/internal/shared"
)

// BasePath is where the customer page is mounted.
const BasePath = "/clientes"

// Deps groups what the customer page needs.
type Deps struct {
	Logger    *slog.Logger
	Client    *apiclient.Client
	Templates console.Renderer
	CSRF      *shared.CSRFManager
	Store     console.Store
	Guard     console.Guard
}

// NewHandler builds the customer page.
func NewHandler(d Deps) *console.Handler[Customer] {
	ctrl := console.NewController(console.Config[Customer]{
		Schema:   NewSchema(),
		Resource: NewRepository(d.Client),
		Guard:    d.Guard,
		Logger:   d.Logger,
	})
	return console.NewHandler(console.HandlerParams[Customer]{
		Logger:     d.Logger,
		Controller: ctrl,
		Templates:  d.Templates,
		CSRF:       d.CSRF,
		Store:      d.Store,
		Template:   "pages/customers.html",
		BasePath:   BasePath,
	})
}
