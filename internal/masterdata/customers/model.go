package customers

import "github.com/casadopescador/console/internal/console"

// Customer is a store customer as served by /Clientes.
type Customer struct {
	ID    console.ID `json:"id"`
	Name  string     `json:"nome"`
	CPF   string     `json:"cpf"`
	Email string     `json:"email"`
	Phone string     `json:"telefone"`
}

// Key implements console.Entity.
func (c Customer) Key() console.ID {
	return c.ID
}

// Label is how a customer is shown in other pages.
func Label(c Customer) string {
	return c.Name
}
