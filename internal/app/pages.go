package app

import (
	"log/slog"

	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
	"github.com/casadopescador/console/internal/masterdata/customers"
	"github.com/casadopescador/console/internal/masterdata/products"
	"github.com/casadopescador/console/internal/masterdata/suppliers"
	"github.com/casadopescador/console/internal/sales"
	"github.com/casadopescador/console/internal/shared"
)

// PageDeps groups what every resource page shares.
type PageDeps struct {
	Logger    *slog.Logger
	Client    *apiclient.Client
	Templates console.Renderer
	CSRF      *shared.CSRFManager
	Store     console.Store
	Guard     console.Guard
}

// Pages builds the four resource pages in navigation order.
func Pages(d PageDeps) []Page {
	return []Page{
		{Path: customers.BasePath, Handler: customers.NewHandler(customers.Deps{
			Logger: d.Logger, Client: d.Client, Templates: d.Templates, CSRF: d.CSRF, Store: d.Store, Guard: d.Guard,
		})},
		{Path: suppliers.BasePath, Handler: suppliers.NewHandler(suppliers.Deps{
			Logger: d.Logger, Client: d.Client, Templates: d.Templates, CSRF: d.CSRF, Store: d.Store, Guard: d.Guard,
		})},
		{Path: sales.BasePath, Handler: sales.NewHandler(sales.Deps{
			Logger: d.Logger, Client: d.Client, Templates: d.Templates, CSRF: d.CSRF, Store: d.Store, Guard: d.Guard,
		})},
		{Path: products.BasePath, Handler: products.NewHandler(products.Deps{
			Logger: d.Logger, Client: d.Client, Templates: d.Templates, CSRF: d.CSRF, Store: d.Store, Guard: d.Guard,
		})},
	}
}
