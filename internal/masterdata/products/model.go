package products

import "github.com/casadopescador/console/internal/console"

// Product is an item in stock as served by /Produtos.
type Product struct {
	ID          console.ID `json:"id"`
	Name        string     `json:"nome"`
	Description string     `json:"descricao"`
	Price       float64    `json:"preco"`
	Stock       float64    `json:"quantidadeEstoque"`
	SupplierID  console.ID `json:"fornecedorId"`
}

// Key implements console.Entity.
func (p Product) Key() console.ID {
	return p.ID
}

// Label is how a product is shown in other pages.
func Label(p Product) string {
	return p.Name
}
