package suppliers

import "github.com/casadopescador/console/internal/console"

// Supplier is a product supplier as served by /Fornecedores.
type Supplier struct {
	ID          console.ID `json:"id"`
	CompanyName string     `json:"nomeEmpresa"`
	CNPJ        string     `json:"cnpj"`
	Address     string     `json:"endereco"`
	Phone       string     `json:"telefone"`
	Email       string     `json:"email"`
}

// Key implements console.Entity.
func (s Supplier) Key() console.ID {
	return s.ID
}

// Label is how a supplier is shown in other pages.
func Label(s Supplier) string {
	return s.CompanyName
}
