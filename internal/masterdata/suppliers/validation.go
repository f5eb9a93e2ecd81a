package suppliers

import (
	"time"

	"github.com/casadopescador/console/internal/console"
)

// Placeholder is shown for a supplier id missing from the loaded list.
const Placeholder = "Fornecedor não encontrado"

// NewSchema describes the supplier form.
func NewSchema() *console.Schema[Supplier] {
	return &console.Schema[Supplier]{
		Resource:    "Fornecedores",
		Title:       "Fornecedores",
		Identity:    "id",
		CreateTitle: "Novo Fornecedor",
		EditTitle:   "Editar Fornecedor",
		CreateLabel: "Criar",
		EditLabel:   "Salvar",
		DeleteNoun:  "o fornecedor",
		DeleteLabel: Label,
		Fields: []console.Field{
			{Name: "nomeEmpresa", Label: "Nome da Empresa", Kind: console.KindText, Rules: "filled", Messages: map[string]string{
				"filled": "Nome da empresa é obrigatório",
			}},
			{Name: "cnpj", Label: "CNPJ", Kind: console.KindText, Rules: "filled,taxid=14", Messages: map[string]string{
				"filled": "CNPJ é obrigatório",
				"taxid":  "CNPJ deve conter 14 dígitos",
			}},
			{Name: "endereco", Label: "Endereço", Kind: console.KindText, Rules: "filled", Messages: map[string]string{
				"filled": "Endereço é obrigatório",
			}},
			{Name: "telefone", Label: "Telefone", Kind: console.KindText, Rules: "filled", Messages: map[string]string{
				"filled": "Telefone é obrigatório",
			}},
			{Name: "email", Label: "Email", Kind: console.KindEmail, Rules: "filled,simplemail", Messages: map[string]string{
				"filled":     "Email é obrigatório",
				"simplemail": "Email inválido",
			}},
		},
		Defaults: func(time.Time) console.Form {
			return console.Form{"nomeEmpresa": "", "cnpj": "", "endereco": "", "telefone": "", "email": ""}
		},
		Messages: console.Messages{
			LoadFailed:   "Erro ao carregar fornecedores",
			Created:      "Fornecedor criado com sucesso!",
			Updated:      "Fornecedor atualizado com sucesso!",
			Deleted:      "Fornecedor excluído com sucesso!",
			CreateFailed: "Erro ao criar fornecedor",
			UpdateFailed: "Erro ao atualizar fornecedor",
			DeleteFailed: "Erro ao excluir fornecedor",
			Busy:         "Aguarde a conclusão da operação anterior",
			NoModal:      "O formulário foi fechado, abra-o novamente",
		},
	}
}
