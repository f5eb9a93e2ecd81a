package console

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID identifies an entity on the remote API. The API may send ids as JSON
// strings or numbers; both decode to the same textual form.
type ID string

// UnmarshalJSON accepts string, number and null literals.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("console: id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// String returns the textual id.
func (id ID) String() string {
	return string(id)
}

// Entity is implemented by every resource managed by a page controller.
type Entity interface {
	Key() ID
}
