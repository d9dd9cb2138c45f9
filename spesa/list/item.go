package list

import "encoding/json"

// Item is one shopping-list entry.
type Item struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity"`
	Category string `json:"category"`
}

// flexName absorbs a historical schema bug where the "name" field of a
// stored record could itself be a whole record, arbitrarily nested.
// Decoding unwraps nested name fields until a plain string is found;
// anything else is left unresolved and the record is dropped by the loader.
type flexName struct {
	value string
	ok    bool
}

func (f *flexName) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.value = s
		f.ok = true
		return nil
	}

	var nested struct {
		Name flexName `json:"name"`
	}
	if err := json.Unmarshal(b, &nested); err == nil && nested.Name.ok {
		*f = nested.Name
		return nil
	}

	// unrepairable shape, swallow instead of failing the whole document
	*f = flexName{}
	return nil
}

// storedItem is the on-disk record shape, tolerant of the corruptions
// repaired at load time.
type storedItem struct {
	Name     flexName `json:"name"`
	Quantity string   `json:"quantity"`
	Category string   `json:"category"`
}
