package console

// State is the per-session state of one resource page.
type State[T Entity] struct {
	// Owner scopes busy guards and stored state, normally the session id.
	Owner    string      `json:"owner"`
	Loaded   bool        `json:"loaded"`
	Items    []T         `json:"items"`
	Refs     Refs        `json:"refs"`
	Form     Form        `json:"form"`
	Errors   FieldErrors `json:"errors"`
	Modal    Modal       `json:"modal"`
	Selected *T          `json:"selected,omitempty"`
}

// Find returns the loaded entity with the given id.
func (s *State[T]) Find(id ID) (T, bool) {
	for _, item := range s.Items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (s *State[T]) ensure() {
	if s.Form == nil {
		s.Form = Form{}
	}
	if s.Errors == nil {
		s.Errors = FieldErrors{}
	}
	if s.Refs == nil {
		s.Refs = Refs{}
	}
}
