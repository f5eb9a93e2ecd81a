package console

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/casadopescador/console/internal/shared"
	"github.com/casadopescador/console/internal/view"
)

const notFoundMessage = "Registro não encontrado, atualize a lista"

// Renderer renders a named page template.
type Renderer interface {
	Render(w http.ResponseWriter, name string, data view.TemplateData) error
}

// FieldView is a form field prepared for the modal template.
type FieldView struct {
	Name        string
	Label       string
	InputType   string
	Value       string
	Error       string
	Step        string
	Prefix      string
	Placeholder string
	// Select fields only.
	Select   bool
	Empty    string
	Options  []Option
	Selected ID
}

// PageView is the Data of a resource page template.
type PageView[T Entity] struct {
	Title        string
	Path         string
	Items        []T
	Refs         Refs
	Modal        Modal
	ModalTitle   string
	SubmitLabel  string
	SubmitAction string
	Fields       []FieldView
	DeleteNoun   string
	DeleteName   string
}

// HandlerParams groups the dependencies of a Handler.
type HandlerParams[T Entity] struct {
	Logger     *slog.Logger
	Controller *Controller[T]
	Templates  Renderer
	CSRF       *shared.CSRFManager
	Store      Store
	// Template is the page template name, e.g. "pages/customers.html".
	Template string
	// BasePath is where the routes are mounted, e.g. "/clientes".
	BasePath string
}

// Handler serves one resource page. Every POST runs a single controller
// operation on the session's page state and redirects back to the page.
type Handler[T Entity] struct {
	logger    *slog.Logger
	ctrl      *Controller[T]
	templates Renderer
	csrf      *shared.CSRFManager
	store     Store
	template  string
	basePath  string
}

// NewHandler builds a Handler.
func NewHandler[T Entity](p HandlerParams[T]) *Handler[T] {
	logger := p.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler[T]{
		logger:    logger,
		ctrl:      p.Controller,
		templates: p.Templates,
		csrf:      p.CSRF,
		store:     p.Store,
		template:  p.Template,
		basePath:  p.BasePath,
	}
}

// MountRoutes registers the page routes.
func (h *Handler[T]) MountRoutes(r chi.Router) {
	r.Get("/", h.show)
	r.Post("/reload", h.act(h.reload))
	r.Post("/new", h.act(h.openCreate))
	r.Post("/{id}/edit", h.act(h.openEdit))
	r.Post("/{id}/delete", h.act(h.openDelete))
	msgs := h.ctrl.Schema().Messages
	r.Post("/create", h.guarded(msgs.CreateFailed, h.submitCreate))
	r.Post("/update", h.guarded(msgs.UpdateFailed, h.submitEdit))
	r.Post("/confirm-delete", h.guarded(msgs.DeleteFailed, h.confirmDelete))
	r.Post("/close", h.act(h.closeModal))
}

type action[T Entity] func(ctx context.Context, r *http.Request, st *State[T]) error

func (h *Handler[T]) show(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := shared.SessionFromContext(ctx)
	if sess == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	st, err := h.state(ctx, sess)
	if err != nil {
		h.logger.Error("load page state", slog.String("resource", h.resource()), slog.Any("error", err))
		st = h.ctrl.NewState(sess.ID)
	}
	if !st.Loaded {
		_ = h.ctrl.Open(ctx, st)
		h.save(ctx, sess, st)
	}

	csrfToken, err := h.csrf.EnsureToken(sess)
	if err != nil {
		h.logger.Error("ensure csrf token", slog.Any("error", err))
	}
	data := view.TemplateData{
		Title:       h.ctrl.Schema().Title,
		CSRFToken:   csrfToken,
		Flashes:     sess.PopFlashes(),
		CurrentPath: h.basePath,
		Data:        h.page(st),
	}
	if err := h.templates.Render(w, h.template, data); err != nil {
		h.logger.Error("render template", slog.String("template", h.template), slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler[T]) act(fn action[T]) http.HandlerFunc {
	return h.run(false, "", fn)
}

// guarded runs a mutating action with the busy guard held from before the
// state is loaded until after it is saved. A repeated submit therefore sees
// either a held guard or the state the first submit left behind.
func (h *Handler[T]) guarded(fallback string, fn action[T]) http.HandlerFunc {
	return h.run(true, fallback, fn)
}

func (h *Handler[T]) run(guard bool, fallback string, fn action[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		sess := shared.SessionFromContext(ctx)
		if sess == nil {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		if guard {
			held, release, err := h.ctrl.Hold(ctx, sess.ID, fallback)
			if err != nil {
				h.redirect(w, r)
				return
			}
			defer release()
			ctx = held
		}

		st, err := h.state(ctx, sess)
		if err != nil {
			h.logger.Error("load page state", slog.String("resource", h.resource()), slog.Any("error", err))
			shared.AddFlash(ctx, shared.FlashError, h.ctrl.Schema().Messages.LoadFailed)
			h.redirect(w, r)
			return
		}

		err = fn(ctx, r, st)
		switch {
		case errors.Is(err, ErrBusy):
			// The in-flight request owns the state; saving here would overwrite it.
			h.redirect(w, r)
			return
		case errors.Is(err, ErrNotFound):
			shared.AddFlash(ctx, shared.FlashWarning, notFoundMessage)
		case err != nil && !errors.Is(err, ErrInvalidForm) && !errors.Is(err, ErrNoModal):
			h.logger.Debug("page action failed", slog.String("resource", h.resource()), slog.String("path", r.URL.Path), slog.Any("error", err))
		}
		h.save(ctx, sess, st)
		h.redirect(w, r)
	}
}

func (h *Handler[T]) reload(ctx context.Context, _ *http.Request, st *State[T]) error {
	return h.ctrl.Refresh(ctx, st)
}

func (h *Handler[T]) openCreate(_ context.Context, _ *http.Request, st *State[T]) error {
	h.ctrl.OpenCreate(st)
	return nil
}

func (h *Handler[T]) openEdit(_ context.Context, r *http.Request, st *State[T]) error {
	entity, err := h.entity(r, st)
	if err != nil {
		return err
	}
	return h.ctrl.OpenEdit(st, entity)
}

func (h *Handler[T]) openDelete(_ context.Context, r *http.Request, st *State[T]) error {
	entity, err := h.entity(r, st)
	if err != nil {
		return err
	}
	h.ctrl.OpenDelete(st, entity)
	return nil
}

func (h *Handler[T]) submitCreate(ctx context.Context, r *http.Request, st *State[T]) error {
	if st.Modal == ModalCreate {
		if err := h.applyForm(r, st); err != nil {
			return err
		}
	}
	return h.ctrl.SubmitCreate(ctx, st)
}

func (h *Handler[T]) submitEdit(ctx context.Context, r *http.Request, st *State[T]) error {
	if st.Modal == ModalEdit {
		if err := h.applyForm(r, st); err != nil {
			return err
		}
	}
	return h.ctrl.SubmitEdit(ctx, st)
}

func (h *Handler[T]) confirmDelete(ctx context.Context, _ *http.Request, st *State[T]) error {
	return h.ctrl.ConfirmDelete(ctx, st)
}

func (h *Handler[T]) closeModal(_ context.Context, _ *http.Request, st *State[T]) error {
	h.ctrl.CloseModal(st)
	return nil
}

// applyForm feeds every posted declared field through ChangeField.
func (h *Handler[T]) applyForm(r *http.Request, st *State[T]) error {
	if err := r.ParseForm(); err != nil {
		return err
	}
	for _, f := range h.ctrl.Schema().Fields {
		values, ok := r.PostForm[f.Name]
		if !ok || len(values) == 0 {
			continue
		}
		if err := h.ctrl.ChangeField(st, f.Name, values[0]); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler[T]) entity(r *http.Request, st *State[T]) (T, error) {
	raw := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	entity, ok := st.Find(ID(raw))
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return entity, nil
}

func (h *Handler[T]) state(ctx context.Context, sess *shared.Session) (*State[T], error) {
	st := &State[T]{}
	found, err := h.store.Load(ctx, h.key(sess), st)
	if err != nil {
		return nil, err
	}
	if !found {
		return h.ctrl.NewState(sess.ID), nil
	}
	st.Owner = sess.ID
	st.ensure()
	return st, nil
}

func (h *Handler[T]) save(ctx context.Context, sess *shared.Session, st *State[T]) {
	if err := h.store.Save(ctx, h.key(sess), st); err != nil {
		h.logger.Error("save page state", slog.String("resource", h.resource()), slog.Any("error", err))
	}
}

func (h *Handler[T]) key(sess *shared.Session) string {
	return shared.PageStateKey(sess.ID, h.resource())
}

func (h *Handler[T]) resource() string {
	return h.ctrl.Schema().Resource
}

func (h *Handler[T]) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.basePath, http.StatusSeeOther)
}

func (h *Handler[T]) page(st *State[T]) PageView[T] {
	s := h.ctrl.Schema()
	v := PageView[T]{
		Title:      s.Title,
		Path:       h.basePath,
		Items:      st.Items,
		Refs:       st.Refs,
		Modal:      st.Modal,
		DeleteNoun: s.DeleteNoun,
	}
	switch st.Modal {
	case ModalCreate:
		v.ModalTitle = s.CreateTitle
		v.SubmitLabel = s.CreateLabel
		v.SubmitAction = h.basePath + "/create"
	case ModalEdit:
		v.ModalTitle = s.EditTitle
		v.SubmitLabel = s.EditLabel
		v.SubmitAction = h.basePath + "/update"
	case ModalDelete:
		v.ModalTitle = "Confirmar Exclusão"
		if st.Selected != nil && s.DeleteLabel != nil {
			v.DeleteName = s.DeleteLabel(*st.Selected)
		}
	}
	if st.Modal.IsForm() {
		v.Fields = FieldViews(s.Fields, st.Form, st.Errors, st.Refs)
	}
	return v
}

// FieldViews prepares the declared fields for rendering.
func FieldViews(fields []Field, form Form, errs FieldErrors, refs Refs) []FieldView {
	views := make([]FieldView, 0, len(fields))
	for _, f := range fields {
		fv := FieldView{
			Name:        f.Name,
			Label:       f.Label,
			Value:       FormatValue(f, form[f.Name]),
			Error:       errs[f.Name],
			Step:        f.Step,
			Prefix:      f.Prefix,
			Placeholder: f.Placeholder,
		}
		switch f.Kind {
		case KindRef:
			fv.Select = true
			fv.Empty = f.RefEmpty
			fv.Options = refs.Lookup(f.Ref).Options
			fv.Selected = ID(fv.Value)
		case KindEmail:
			fv.InputType = "email"
		case KindNumber:
			fv.InputType = "number"
		case KindDateTime:
			fv.InputType = "datetime-local"
		case KindLongText:
			fv.InputType = "textarea"
		default:
			fv.InputType = "text"
		}
		views = append(views, fv)
	}
	return views
}
