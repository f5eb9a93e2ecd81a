package sales

import (
	"time"

	"github.com/casadopescador/console/internal/console"
)

// Reference list names used by the sale form.
const (
	CustomerRef = "clientes"
	ProductRef  = "produtos"
)

// issuedAtLayout is the UTC timestamp format the store API expects.
const issuedAtLayout = "2006-01-02T15:04:05.000Z"

// NewSchema describes the sale form.
func NewSchema() *console.Schema[Sale] {
	return &console.Schema[Sale]{
		Resource:    "Vendas",
		Title:       "Vendas",
		Identity:    "vendaId",
		CreateTitle: "Nova Venda",
		EditTitle:   "Editar Venda",
		CreateLabel: "Registrar",
		EditLabel:   "Salvar",
		DeleteNoun:  "esta venda",
		Fields: []console.Field{
			{Name: "clienteId", Label: "Cliente", Kind: console.KindRef, Ref: CustomerRef, RefEmpty: "Selecione um cliente", Rules: "filled", Messages: map[string]string{
				"filled": "Cliente é obrigatório",
				"ref":    "Cliente é obrigatório",
			}},
			{Name: "produtoId", Label: "Produto", Kind: console.KindRef, Ref: ProductRef, RefEmpty: "Selecione um produto", Rules: "filled", Messages: map[string]string{
				"filled": "Produto é obrigatório",
				"ref":    "Produto é obrigatório",
			}},
			{Name: "valorTotal", Label: "Valor Total", Kind: console.KindNumber, Rules: "positive", Step: "0.01", Prefix: "R$", Messages: map[string]string{
				"positive": "Valor total deve ser maior que zero",
			}},
			{Name: "dataEmissao", Label: "Data de Emissão", Kind: console.KindDateTime, Rules: "filled,isodatetime", Messages: map[string]string{
				"filled":      "Data de emissão é obrigatória",
				"isodatetime": "Data de emissão inválida",
			}},
		},
		Defaults: func(now time.Time) console.Form {
			return console.Form{
				"clienteId":   "",
				"produtoId":   "",
				"valorTotal":  float64(0),
				"dataEmissao": now.UTC().Format(issuedAtLayout),
			}
		},
		Messages: console.Messages{
			LoadFailed:   "Erro ao carregar vendas",
			Created:      "Venda registrada com sucesso!",
			Updated:      "Venda atualizada com sucesso!",
			Deleted:      "Venda excluída com sucesso!",
			CreateFailed: "Erro ao registrar venda",
			UpdateFailed: "Erro ao atualizar venda",
			DeleteFailed: "Erro ao excluir venda",
			Busy:         "Aguarde a conclusão da operação anterior",
			NoModal:      "O formulário foi fechado, abra-o novamente",
		},
	}
}
