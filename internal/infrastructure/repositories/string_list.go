package repositories

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// EncodeStringList serialises an ordered sequence for its text column.
// Nil and empty sequences are stored as NULL.
func EncodeStringList(items []string) ([]byte, error) {
	if len(items) == 0 {
		return nil, nil
	}
	return json.Marshal(items)
}

// DecodeStringList restores a sequence written by EncodeStringList.
// NULL and empty input decode to an empty, non-nil sequence.
func DecodeStringList(raw []byte) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}
	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode string list: %w", err)
	}
	if items == nil {
		// a stored JSON null
		return []string{}, nil
	}
	return items, nil
}

// StringList is the column type for ordered string sequences
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	raw, err := EncodeStringList(l)
	if err != nil || raw == nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan implements sql.Scanner
func (l *StringList) Scan(src interface{}) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("decode string list: unsupported column type %T", src)
	}
	items, err := DecodeStringList(raw)
	if err != nil {
		return err
	}
	*l = items
	return nil
}
