package customers

import (
	"time"

	"github.com/casadopescador/console/internal/console"
)

// Placeholder is shown for a customer id missing from the loaded list.
const Placeholder = "Cliente não encontrado"

// NewSchema describes the customer form.
func NewSchema() *console.Schema[Customer] {
	return &console.Schema[Customer]{
		Resource:    "Clientes",
		Title:       "Clientes",
		Identity:    "id",
		CreateTitle: "Novo Cliente",
		EditTitle:   "Editar Cliente",
		CreateLabel: "Criar",
		EditLabel:   "Salvar",
		DeleteNoun:  "o cliente",
		DeleteLabel: Label,
		Fields: []console.Field{
			{Name: "nome", Label: "Nome", Kind: console.KindText, Rules: "filled", Messages: map[string]string{
				"filled": "Nome é obrigatório",
			}},
			{Name: "cpf", Label: "CPF", Kind: console.KindText, Rules: "filled,taxid=11", Messages: map[string]string{
				"filled": "CPF é obrigatório",
				"taxid":  "CPF deve conter 11 dígitos",
			}},
			{Name: "email", Label: "Email", Kind: console.KindEmail, Rules: "filled,simplemail", Messages: map[string]string{
				"filled":     "Email é obrigatório",
				"simplemail": "Email inválido",
			}},
			{Name: "telefone", Label: "Telefone", Kind: console.KindText, Rules: "filled", Messages: map[string]string{
				"filled": "Telefone é obrigatório",
			}},
		},
		Defaults: func(time.Time) console.Form {
			return console.Form{"nome": "", "cpf": "", "email": "", "telefone": ""}
		},
		Messages: console.Messages{
			LoadFailed:   "Erro ao carregar clientes",
			Created:      "Cliente criado com sucesso!",
			Updated:      "Cliente atualizado com sucesso!",
			Deleted:      "Cliente excluído com sucesso!",
			CreateFailed: "Erro ao criar cliente",
			UpdateFailed: "Erro ao atualizar cliente",
			DeleteFailed: "Erro ao excluir cliente",
			Busy:         "Aguarde a conclusão da operação anterior",
			NoModal:      "O formulário foi fechado, abra-o novamente",
		},
	}
}
