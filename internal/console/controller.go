package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/casadopescador/console/internal/shared"
)

// Resource is the remote collection behind a page.
type Resource[T Entity] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, payload map[string]any) error
	Update(ctx context.Context, id string, payload map[string]any) error
	Delete(ctx context.Context, id string) error
}

// Config groups the dependencies of a Controller.
type Config[T Entity] struct {
	Schema     *Schema[T]
	Resource   Resource[T]
	References []Reference
	Notifier   Notifier
	Guard      Guard
	Logger     *slog.Logger
	Now        func() time.Time
}

// Controller runs the page workflow of one resource: list, create, edit and
// delete through modals, with validation before every submission.
type Controller[T Entity] struct {
	schema   *Schema[T]
	resource Resource[T]
	refs     []Reference
	notifier Notifier
	guard    Guard
	logger   *slog.Logger
	now      func() time.Time
}

// NewController builds a Controller, filling unset dependencies with
// in-process defaults.
func NewController[T Entity](cfg Config[T]) *Controller[T] {
	c := &Controller[T]{
		schema:   cfg.Schema,
		resource: cfg.Resource,
		refs:     cfg.References,
		notifier: cfg.Notifier,
		guard:    cfg.Guard,
		logger:   cfg.Logger,
		now:      cfg.Now,
	}
	if c.notifier == nil {
		c.notifier = SessionNotifier{}
	}
	if c.guard == nil {
		c.guard = NewMemoryGuard()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// Schema exposes the entity schema.
func (c *Controller[T]) Schema() *Schema[T] {
	return c.schema
}

// NewState returns the initial state of a page owned by owner.
func (c *Controller[T]) NewState(owner string) *State[T] {
	st := &State[T]{
		Owner:  owner,
		Items:  []T{},
		Refs:   Refs{},
		Form:   c.defaults(),
		Errors: FieldErrors{},
		Modal:  ModalNone,
	}
	for _, ref := range c.refs {
		st.Refs[ref.Name] = Lookup{Options: []Option{}, Placeholder: ref.Placeholder}
	}
	return st
}

// Load fetches the full collection and replaces the list. On failure the list
// is left as it was.
func (c *Controller[T]) Load(ctx context.Context, st *State[T]) error {
	items, err := c.resource.List(ctx)
	if err != nil {
		c.logger.Warn("load list failed", slog.String("resource", c.schema.Resource), slog.Any("error", err))
		c.notifier.Notify(ctx, AlertError, c.schema.Messages.LoadFailed)
		return fmt.Errorf("console: list %s: %w", c.schema.Resource, err)
	}
	if items == nil {
		items = []T{}
	}
	st.Items = items
	return nil
}

// Open performs the first display of a page: the own list and every
// reference list are fetched concurrently. Each failed fetch raises one alert
// and leaves its list unchanged.
func (c *Controller[T]) Open(ctx context.Context, st *State[T]) error {
	st.ensure()

	var (
		g       errgroup.Group
		items   []T
		listErr error
		fetched = make([][]Option, len(c.refs))
		refErrs = make([]error, len(c.refs))
	)
	g.Go(func() error {
		items, listErr = c.resource.List(ctx)
		return listErr
	})
	for i, ref := range c.refs {
		i, ref := i, ref
		g.Go(func() error {
			fetched[i], refErrs[i] = ref.Fetch(ctx)
			return refErrs[i]
		})
	}
	firstErr := g.Wait()

	// Alerts are raised after Wait so the session is only touched from here.
	if listErr != nil {
		c.logger.Warn("load list failed", slog.String("resource", c.schema.Resource), slog.Any("error", listErr))
		c.notifier.Notify(ctx, AlertError, c.schema.Messages.LoadFailed)
	} else {
		if items == nil {
			items = []T{}
		}
		st.Items = items
	}
	for i, ref := range c.refs {
		if refErrs[i] != nil {
			c.logger.Warn("load reference failed", slog.String("resource", c.schema.Resource), slog.String("reference", ref.Name), slog.Any("error", refErrs[i]))
			c.notifier.Notify(ctx, AlertError, ref.LoadFailed)
			continue
		}
		opts := fetched[i]
		if opts == nil {
			opts = []Option{}
		}
		st.Refs[ref.Name] = Lookup{Options: opts, Placeholder: ref.Placeholder}
	}
	st.Loaded = true
	if firstErr != nil {
		return fmt.Errorf("console: open %s: %w", c.schema.Resource, firstErr)
	}
	return nil
}

// Refresh reloads the own list and every reference list.
func (c *Controller[T]) Refresh(ctx context.Context, st *State[T]) error {
	return c.Open(ctx, st)
}

// OpenCreate shows the create modal with a fresh form.
func (c *Controller[T]) OpenCreate(st *State[T]) {
	st.Form = c.defaults()
	st.Errors = FieldErrors{}
	st.Modal = ModalCreate
}

// OpenEdit shows the edit modal with the form holding every field of entity.
func (c *Controller[T]) OpenEdit(st *State[T], entity T) error {
	form, err := FormFrom(entity)
	if err != nil {
		return err
	}
	st.Selected = &entity
	st.Form = form
	st.Errors = FieldErrors{}
	st.Modal = ModalEdit
	return nil
}

// OpenDelete shows the delete confirmation for entity.
func (c *Controller[T]) OpenDelete(st *State[T], entity T) {
	st.Selected = &entity
	st.Modal = ModalDelete
}

// ChangeField records an edit of one declared field and clears its error.
// A datetime input shows a shortened value; posting it back unchanged keeps
// the stored value with its seconds and zone.
func (c *Controller[T]) ChangeField(st *State[T], name, raw string) error {
	f, ok := c.schema.Field(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	st.ensure()
	if current, ok := st.Form[name]; ok && f.Kind == KindDateTime && raw == FormatValue(f, current) {
		delete(st.Errors, name)
		return nil
	}
	st.Form[name] = Coerce(f, raw)
	delete(st.Errors, name)
	return nil
}

// SubmitCreate validates the form and creates the entity.
func (c *Controller[T]) SubmitCreate(ctx context.Context, st *State[T]) error {
	if st.Modal != ModalCreate {
		c.notifier.Notify(ctx, AlertError, c.schema.Messages.NoModal)
		return ErrNoModal
	}
	return c.submit(ctx, st, "create", c.schema.Messages.Created, c.schema.Messages.CreateFailed, func(payload map[string]any) error {
		return c.resource.Create(ctx, payload)
	})
}

// SubmitEdit validates the form and updates the selected entity.
func (c *Controller[T]) SubmitEdit(ctx context.Context, st *State[T]) error {
	if st.Modal != ModalEdit {
		c.notifier.Notify(ctx, AlertError, c.schema.Messages.NoModal)
		return ErrNoModal
	}
	id := c.editID(st)
	if id == "" {
		c.notifier.Notify(ctx, AlertError, c.schema.Messages.NoModal)
		return ErrNoModal
	}
	return c.submit(ctx, st, "update", c.schema.Messages.Updated, c.schema.Messages.UpdateFailed, func(payload map[string]any) error {
		return c.resource.Update(ctx, id.String(), payload)
	})
}

// ConfirmDelete deletes the selected entity. The confirmation is consumed
// whatever the outcome: the modal closes and the selection is cleared.
func (c *Controller[T]) ConfirmDelete(ctx context.Context, st *State[T]) error {
	if st.Modal != ModalDelete || st.Selected == nil {
		c.notifier.Notify(ctx, AlertError, c.schema.Messages.NoModal)
		return ErrNoModal
	}
	release, err := c.acquire(ctx, st, c.schema.Messages.DeleteFailed)
	if err != nil {
		return err
	}
	defer release()

	id := (*st.Selected).Key()
	err = c.resource.Delete(ctx, id.String())
	st.Modal = ModalNone
	st.Selected = nil
	if err != nil {
		c.logger.Warn("delete failed", slog.String("resource", c.schema.Resource), slog.String("id", id.String()), slog.Any("error", err))
		c.notifier.Notify(ctx, AlertError, RemoteMessage(err, c.schema.Messages.DeleteFailed))
		return fmt.Errorf("console: delete %s %s: %w", c.schema.Resource, id, err)
	}
	_ = c.Load(ctx, st)
	c.notifier.Notify(ctx, AlertSuccess, c.schema.Messages.Deleted)
	return nil
}

// CloseModal hides any modal and resets the form. Closing twice is harmless.
func (c *Controller[T]) CloseModal(st *State[T]) {
	st.Modal = ModalNone
	st.Form = c.defaults()
	st.Errors = FieldErrors{}
	st.Selected = nil
}

func (c *Controller[T]) submit(ctx context.Context, st *State[T], op, success, fallback string, send func(map[string]any) error) error {
	if errs := c.schema.Validate(st.Form, st.Refs); len(errs) > 0 {
		st.Errors = errs
		return ErrInvalidForm
	}
	st.Errors = FieldErrors{}

	release, err := c.acquire(ctx, st, fallback)
	if err != nil {
		return err
	}
	defer release()

	if err := send(c.schema.Payload(st.Form)); err != nil {
		c.logger.Warn(op+" failed", slog.String("resource", c.schema.Resource), slog.Any("error", err))
		c.notifier.Notify(ctx, AlertError, RemoteMessage(err, fallback))
		return fmt.Errorf("console: %s %s: %w", op, c.schema.Resource, err)
	}
	c.CloseModal(st)
	_ = c.Load(ctx, st)
	c.notifier.Notify(ctx, AlertSuccess, success)
	return nil
}

type heldGuardKey struct{}

// Hold takes the busy guard of owner for a whole request. Submit operations
// run with the returned context reuse it instead of taking it again, so the
// guard stays held until the caller has saved the resulting state.
func (c *Controller[T]) Hold(ctx context.Context, owner, fallback string) (context.Context, func(), error) {
	key := shared.BusyLockKey(owner, c.schema.Resource)
	release, err := c.lock(ctx, key, fallback)
	if err != nil {
		return ctx, nil, err
	}
	return context.WithValue(ctx, heldGuardKey{}, key), release, nil
}

func (c *Controller[T]) acquire(ctx context.Context, st *State[T], fallback string) (func(), error) {
	key := shared.BusyLockKey(st.Owner, c.schema.Resource)
	if held, _ := ctx.Value(heldGuardKey{}).(string); held == key {
		return func() {}, nil
	}
	return c.lock(ctx, key, fallback)
}

func (c *Controller[T]) lock(ctx context.Context, key, fallback string) (func(), error) {
	release, err := c.guard.Acquire(ctx, key)
	if err == nil {
		return release, nil
	}
	if errors.Is(err, ErrBusy) {
		c.notifier.Notify(ctx, AlertWarning, c.schema.Messages.Busy)
		return nil, ErrBusy
	}
	c.logger.Error("busy guard unavailable", slog.String("resource", c.schema.Resource), slog.Any("error", err))
	c.notifier.Notify(ctx, AlertError, fallback)
	return nil, err
}

func (c *Controller[T]) editID(st *State[T]) ID {
	if st.Selected != nil {
		return (*st.Selected).Key()
	}
	return ID(textValue(st.Form[c.schema.Identity]))
}

func (c *Controller[T]) defaults() Form {
	if c.schema.Defaults != nil {
		if form := c.schema.Defaults(c.now()); form != nil {
			return form
		}
	}
	form := make(Form, len(c.schema.Fields))
	for _, f := range c.schema.Fields {
		if f.Kind == KindNumber {
			form[f.Name] = float64(0)
			continue
		}
		form[f.Name] = ""
	}
	return form
}
