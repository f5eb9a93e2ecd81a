package products

import (
	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
)

// Repository is the product collection of the store API.
type Repository = apiclient.Resource[Product]

// NewRepository binds the product collection of the store API.
func NewRepository(client *apiclient.Client) *Repository {
	return apiclient.NewResource[Product](client, "Produtos")
}

// Reference lets other pages resolve product ids to names.
func Reference(client *apiclient.Client) console.Reference {
	return console.ReferenceTo[Product]("produtos", NewRepository(client), Label, Placeholder, "Erro ao carregar produtos")
}
