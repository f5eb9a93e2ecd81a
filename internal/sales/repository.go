package sales

import "github.com/casadopescador/console/internal/apiclient"

// Repository is the sale collection of the store API.
type Repository = apiclient.Resource[Sale]

// NewRepository binds the sale collection of the store API.
func NewRepository(client *apiclient.Client) *Repository {
	return apiclient.NewResource[Sale](client, "Vendas")
}
