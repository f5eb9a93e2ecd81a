package console

import "context"

// ResolveLabel finds the entity with the given id in list and returns its
// label, or placeholder when no entity matches. The scan is linear.
func ResolveLabel[R any](id ID, list []R, identity func(R) ID, label func(R) string, placeholder string) string {
	for _, item := range list {
		if identity(item) == id {
			return label(item)
		}
	}
	return placeholder
}

// Option is a reference entity projected to what a page needs from it.
type Option struct {
	ID    ID     `json:"id"`
	Label string `json:"label"`
}

// Lookup is a loaded reference list.
type Lookup struct {
	Options     []Option `json:"options"`
	Placeholder string   `json:"placeholder"`
}

// Label resolves id against the loaded options.
func (l Lookup) Label(id ID) string {
	return ResolveLabel(id, l.Options, optionID, optionLabel, l.Placeholder)
}

// Has reports whether id is present in the loaded options.
func (l Lookup) Has(id ID) bool {
	for _, opt := range l.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Refs holds the reference lists of one page, keyed by reference name.
type Refs map[string]Lookup

// Lookup returns the named list; a missing list behaves as an empty one.
func (r Refs) Lookup(name string) Lookup {
	return r[name]
}

// Label resolves id against the named reference list.
func (r Refs) Label(name string, id ID) string {
	return r.Lookup(name).Label(id)
}

// Lister fetches a full collection.
type Lister[R any] interface {
	List(ctx context.Context) ([]R, error)
}

// Reference declares a list a page loads to resolve foreign ids.
type Reference struct {
	Name        string
	Placeholder string
	LoadFailed  string
	Fetch       func(ctx context.Context) ([]Option, error)
}

// ReferenceTo builds a Reference backed by src.
func ReferenceTo[R Entity](name string, src Lister[R], label func(R) string, placeholder, loadFailed string) Reference {
	return Reference{
		Name:        name,
		Placeholder: placeholder,
		LoadFailed:  loadFailed,
		Fetch: func(ctx context.Context) ([]Option, error) {
			items, err := src.List(ctx)
			if err != nil {
				return nil, err
			}
			opts := make([]Option, 0, len(items))
			for _, item := range items {
				opts = append(opts, Option{ID: item.Key(), Label: label(item)})
			}
			return opts, nil
		},
	}
}

func optionID(o Option) ID       { return o.ID }
func optionLabel(o Option) string { return o.Label }
