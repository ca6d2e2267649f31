package models

import (
	"bytes"
	"encoding/json"
)

// RawValue: сырое JSON-значение поля. Отличает отсутствие поля (Present=false) от null.
type RawValue struct {
	Present bool
	Raw     json.RawMessage
}

func (v *RawValue) UnmarshalJSON(b []byte) error {
	v.Present = true
	v.Raw = append(v.Raw[:0], b...)
	return nil
}

// IsNull: поле есть, но равно null.
func (v RawValue) IsNull() bool {
	return v.Present && bytes.Equal(bytes.TrimSpace(v.Raw), []byte("null"))
}

// Token возвращает значение как строку: числа как есть, строки без кавычек.
// ok=false для объектов, массивов и bool.
func (v RawValue) Token() (string, bool) {
	raw := bytes.TrimSpace(v.Raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), true
	default:
		return "", false
	}
}
