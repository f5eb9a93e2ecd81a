package sales

import "github.com/casadopescador/console/internal/console"

// Sale is a recorded sale as served by /Vendas.
type Sale struct {
	ID         console.ID `json:"vendaId"`
	CustomerID console.ID `json:"clienteId"`
	ProductID  console.ID `json:"produtoId"`
	Total      float64    `json:"valorTotal"`
	IssuedAt   string     `json:"dataEmissao"`
}

// Key implements console.Entity.
func (s Sale) Key() console.ID {
	return s.ID
}
