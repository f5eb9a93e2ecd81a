package console

import (
	"context"
	"sync"
	"time"
)

// ============================================================================
// TEST ENTITY
// ============================================================================

type gadget struct {
	ID         ID      `json:"id"`
	Name       string  `json:"nome"`
	Code       string  `json:"codigo"`
	Email      string  `json:"email"`
	Price      float64 `json:"preco"`
	Stock      float64 `json:"estoque"`
	CategoryID ID      `json:"categoriaId"`
	IssuedAt   string  `json:"emitidoEm"`
}

func (g gadget) Key() ID { return g.ID }

var fixedNow = time.Date(2026, 10, 19, 14, 30, 0, 0, time.UTC)

func gadgetSchema() *Schema[gadget] {
	return &Schema[gadget]{
		Resource:    "Gadgets",
		Title:       "Gadgets",
		Identity:    "id",
		CreateTitle: "Novo Gadget",
		EditTitle:   "Editar Gadget",
		CreateLabel: "Criar",
		EditLabel:   "Salvar",
		DeleteNoun:  "o gadget",
		DeleteLabel: func(g gadget) string { return g.Name },
		Fields: []Field{
			{Name: "nome", Label: "Nome", Kind: KindText, Rules: "filled", Messages: map[string]string{"filled": "Nome é obrigatório"}},
			{Name: "codigo", Label: "Código", Kind: KindText, Rules: "filled,taxid=3", Messages: map[string]string{
				"filled": "Código é obrigatório",
				"taxid":  "Código deve conter 3 dígitos",
			}},
			{Name: "email", Label: "Email", Kind: KindEmail, Rules: "filled,simplemail", Messages: map[string]string{
				"filled":     "Email é obrigatório",
				"simplemail": "Email inválido",
			}},
			{Name: "preco", Label: "Preço", Kind: KindNumber, Rules: "positive", Messages: map[string]string{"positive": "Preço deve ser maior que zero"}},
			{Name: "estoque", Label: "Estoque", Kind: KindNumber, Rules: "nonnegative", Messages: map[string]string{"nonnegative": "Estoque não pode ser negativo"}},
			{Name: "categoriaId", Label: "Categoria", Kind: KindRef, Ref: "categorias", Rules: "filled", Messages: map[string]string{
				"filled": "Categoria é obrigatória",
				"ref":    "Categoria não encontrada",
			}},
			{Name: "emitidoEm", Label: "Emitido em", Kind: KindDateTime, Rules: "filled,isodatetime", Messages: map[string]string{"filled": "Data é obrigatória"}},
		},
		Defaults: func(now time.Time) Form {
			return Form{
				"nome":        "",
				"codigo":      "",
				"email":       "",
				"preco":       float64(0),
				"estoque":     float64(0),
				"categoriaId": "",
				"emitidoEm":   now.Format("2006-01-02T15:04"),
			}
		},
		Messages: Messages{
			LoadFailed:   "Erro ao carregar gadgets",
			Created:      "Gadget criado com sucesso!",
			Updated:      "Gadget atualizado com sucesso!",
			Deleted:      "Gadget excluído com sucesso!",
			CreateFailed: "Erro ao criar gadget",
			UpdateFailed: "Erro ao atualizar gadget",
			DeleteFailed: "Erro ao excluir gadget",
			Busy:         "Aguarde a conclusão da operação anterior",
			NoModal:      "Formulário expirado, tente novamente",
		},
	}
}

func validGadgetForm() Form {
	return Form{
		"nome":        "Molinete",
		"codigo":      "1-2-3",
		"email":       "loja@pesca.com",
		"preco":       float64(10),
		"estoque":     float64(0),
		"categoriaId": "C1",
		"emitidoEm":   "2026-10-19T10:00",
	}
}

func categoryRefs() Refs {
	return Refs{"categorias": Lookup{
		Options:     []Option{{ID: "C1", Label: "Varas"}, {ID: "C2", Label: "Iscas"}},
		Placeholder: "Categoria não encontrada",
	}}
}

// ============================================================================
// FAKE COLLABORATORS
// ============================================================================

type call struct {
	Method  string
	ID      string
	Payload map[string]any
}

type remoteFailure struct{ msg string }

func (e remoteFailure) Error() string       { return "remote: " + e.msg }
func (e remoteFailure) UserMessage() string { return e.msg }

type fakeResource struct {
	mu        sync.Mutex
	items     []gadget
	calls     []call
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	// block, when set, is received from before a mutation returns.
	block chan struct{}
}

func (f *fakeResource) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeResource) List(context.Context) ([]gadget, error) {
	f.record(call{Method: "GET"})
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]gadget, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeResource) Create(_ context.Context, payload map[string]any) error {
	f.record(call{Method: "POST", Payload: payload})
	if f.block != nil {
		<-f.block
	}
	return f.createErr
}

func (f *fakeResource) Update(_ context.Context, id string, payload map[string]any) error {
	f.record(call{Method: "PUT", ID: id, Payload: payload})
	return f.updateErr
}

func (f *fakeResource) Delete(_ context.Context, id string) error {
	f.record(call{Method: "DELETE", ID: id})
	return f.deleteErr
}

func (f *fakeResource) count(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

func (f *fakeResource) last(method string) (call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].Method == method {
			return f.calls[i], true
		}
	}
	return call{}, false
}

type alert struct {
	Kind    AlertKind
	Message string
}

type recordingNotifier struct {
	mu     sync.Mutex
	alerts []alert
}

func (n *recordingNotifier) Notify(_ context.Context, kind AlertKind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.alerts = append(n.alerts, alert{Kind: kind, Message: message})
}

func (n *recordingNotifier) all() []alert {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]alert, len(n.alerts))
	copy(out, n.alerts)
	return out
}

type fakeLister struct {
	items []gadget
	err   error
}

func (l fakeLister) List(context.Context) ([]gadget, error) {
	return l.items, l.err
}

func newTestController(res *fakeResource, refs ...Reference) (*Controller[gadget], *recordingNotifier) {
	notifier := &recordingNotifier{}
	ctrl := NewController(Config[gadget]{
		Schema:     gadgetSchema(),
		Resource:   res,
		References: refs,
		Notifier:   notifier,
		Guard:      NewMemoryGuard(),
		Now:        func() time.Time { return fixedNow },
	})
	return ctrl, notifier
}

func categoryReference(items []gadget, err error) Reference {
	return ReferenceTo[gadget]("categorias", fakeLister{items: items, err: err}, func(g gadget) string { return g.Name }, "Categoria não encontrada", "Erro ao carregar categorias")
}
