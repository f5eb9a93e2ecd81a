package suppliers

import (
	"github.com/casadopescador/console/internal/apiclient"
	"github.com/casadopescador/console/internal/console"
)

// Repository is the supplier collection of the store API.
type Repository = apiclient.Resource[Supplier]

// NewRepository binds the supplier collection of the store API.
func NewRepository(client *apiclient.Client) *Repository {
	return apiclient.NewResource[Supplier](client, "Fornecedores")
}

// Reference lets other pages resolve supplier ids to company names.
func Reference(client *apiclient.Client) console.Reference {
	return console.ReferenceTo[Supplier]("fornecedores", NewRepository(client), Label, Placeholder, "Erro ao carregar fornecedores")
}
