package products

import (
	"time"

	"github.com/casadopescador/console/internal/console"
)

// Placeholder is shown for a product id missing from the loaded list.
const Placeholder = "Produto não encontrado"

// SupplierRef names the supplier list the product form selects from.
const SupplierRef = "fornecedores"

// NewSchema describes the product form.
func NewSchema() *console.Schema[Product] {
	return &console.Schema[Product]{
		Resource:    "Produtos",
		Title:       "Produtos",
		Identity:    "id",
		CreateTitle: "Novo Produto",
		EditTitle:   "Editar Produto",
		CreateLabel: "Criar",
		EditLabel:   "Salvar",
		DeleteNoun:  "o produto",
		DeleteLabel: Label,
		Fields: []console.Field{
			{Name: "nome", Label: "Nome", Kind: console.KindText, Rules: "filled", Messages: map[string]string{
				"filled": "Nome é obrigatório",
			}},
			{Name: "descricao", Label: "Descrição", Kind: console.KindLongText, Rules: "filled", Messages: map[string]string{
				"filled": "Descrição é obrigatória",
			}},
			{Name: "preco", Label: "Preço", Kind: console.KindNumber, Rules: "positive", Step: "0.01", Prefix: "R$", Messages: map[string]string{
				"positive": "Preço deve ser maior que zero",
			}},
			{Name: "quantidadeEstoque", Label: "Quantidade em Estoque", Kind: console.KindNumber, Rules: "nonnegative", Step: "1", Messages: map[string]string{
				"nonnegative": "Quantidade não pode ser negativa",
			}},
			{Name: "fornecedorId", Label: "Fornecedor", Kind: console.KindRef, Ref: SupplierRef, RefEmpty: "Selecione um fornecedor", Rules: "filled", Messages: map[string]string{
				"filled": "Fornecedor é obrigatório",
				"ref":    "Fornecedor é obrigatório",
			}},
		},
		Defaults: func(time.Time) console.Form {
			return console.Form{
				"nome":              "",
				"descricao":         "",
				"preco":             float64(0),
				"quantidadeEstoque": float64(0),
				"fornecedorId":      "",
			}
		},
		Messages: console.Messages{
			LoadFailed:   "Erro ao carregar produtos",
			Created:      "Produto criado com sucesso!",
			Updated:      "Produto atualizado com sucesso!",
			Deleted:      "Produto excluído com sucesso!",
			CreateFailed: "Erro ao criar produto",
			UpdateFailed: "Erro ao atualizar produto",
			DeleteFailed: "Erro ao excluir produto",
			Busy:         "Aguarde a conclusão da operação anterior",
			NoModal:      "O formulário foi fechado, abra-o novamente",
		},
	}
}
