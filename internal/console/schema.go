package console

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// FieldKind drives input rendering and value coercion.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindLongText FieldKind = "longtext"
	KindEmail    FieldKind = "email"
	KindNumber   FieldKind = "number"
	KindDateTime FieldKind = "datetime"
	KindRef      FieldKind = "ref"
)

// Field declares one submittable entity field.
type Field struct {
	// Name is the JSON name used on the wire and as the form key.
	Name  string
	Label string
	Kind  FieldKind
	// Rules is a validator tag list, evaluated left to right.
	Rules string
	// Messages maps a rule tag to the message shown when it fails. The "ref"
	// key is used when a reference id is not in the loaded list.
	Messages map[string]string
	// Ref names the reference list backing a KindRef field.
	Ref         string
	RefEmpty    string
	Step        string
	Prefix      string
	Placeholder string
}

// Message returns the text for a failed rule.
func (f Field) Message(tag string) string {
	if msg, ok := f.Messages[tag]; ok {
		return msg
	}
	return f.Label + " inválido"
}

// Form holds the values being edited, keyed by field name.
type Form map[string]any

// FieldErrors maps a field name to its validation message. Empty means valid.
type FieldErrors map[string]string

// Messages holds the operator facing texts of one resource page.
type Messages struct {
	LoadFailed   string
	Created      string
	Updated      string
	Deleted      string
	CreateFailed string
	UpdateFailed string
	DeleteFailed string
	Busy         string
	NoModal      string
}

// Schema describes an entity to the generic page controller.
type Schema[T Entity] struct {
	// Resource is the collection path on the remote API, e.g. "Clientes".
	Resource string
	Title    string
	// Identity is the JSON name of the identity field, never sent in bodies.
	Identity    string
	CreateTitle string
	EditTitle   string
	CreateLabel string
	EditLabel   string
	// DeleteNoun is used in the delete confirmation, e.g. "o cliente".
	DeleteNoun  string
	DeleteLabel func(T) string
	Fields      []Field
	Defaults    func(now time.Time) Form
	Messages    Messages
}

// Field looks up a declared field by name.
func (s *Schema[T]) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Payload builds a request body holding only the declared fields.
func (s *Schema[T]) Payload(form Form) map[string]any {
	payload := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		value := form[f.Name]
		if f.Kind == KindNumber {
			payload[f.Name] = numberValue(value)
			continue
		}
		payload[f.Name] = textValue(value)
	}
	return payload
}

// FormFrom copies every field of entity into a form, identity included.
func FormFrom[T any](entity T) (Form, error) {
	raw, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("console: encode entity: %w", err)
	}
	form := Form{}
	if err := json.Unmarshal(raw, &form); err != nil {
		return nil, fmt.Errorf("console: decode entity form: %w", err)
	}
	return form, nil
}

// Coerce converts raw input to the value stored in the form. Numbers accept
// either "." or "," as decimal separator; input that does not parse is kept
// as text so validation can reject it.
func Coerce(f Field, raw string) any {
	if f.Kind != KindNumber {
		return raw
	}
	v := strings.TrimSpace(raw)
	if v == "" {
		return float64(0)
	}
	if strings.Contains(v, ",") {
		v = strings.ReplaceAll(v, ".", "")
		v = strings.ReplaceAll(v, ",", ".")
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return raw
	}
	return n
}

// FormatValue renders a form value for an input element.
func FormatValue(f Field, value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		if f.Kind == KindDateTime && len(v) > 16 {
			return v[:16]
		}
		return v
	default:
		return fmt.Sprint(v)
	}
}

func numberValue(value any) any {
	switch v := value.(type) {
	case float64:
		return v
	case string:
		if n, ok := Coerce(Field{Kind: KindNumber}, v).(float64); ok {
			return n
		}
		return nil
	case nil:
		return float64(0)
	default:
		return v
	}
}

func textValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
