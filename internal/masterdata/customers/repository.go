package customers

import (
	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
)

// Repository is the customer collection of the store API.
type Repository = apiclient.Resource[Customer]

// NewRepository binds the customer collection of the store API.
func NewRepository(client *apiclient.Client) *Repository {
	return apiclient.NewResource[Customer](client, "Clientes")
}

// Reference lets other pages resolve customer ids to names.
func Reference(client *apiclient.Client) console.Reference {
	return console.ReferenceTo[Customer]("clientes", NewRepository(client), Label, Placeholder, "Erro ao carregar clientes")
}
