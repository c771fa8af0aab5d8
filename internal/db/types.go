package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringArray handles JSONB string arrays. NULL scans as an empty array and
// a nil array is stored as [].
type StringArray []string

// Scan implements the Scanner interface for StringArray
func (a *StringArray) Scan(src any) error {
	return scanJSONArray(src, a, func() { *a = StringArray{} })
}

// Value implements the Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(a))
}

// IntArray handles JSONB integer arrays such as the confidence history.
type IntArray []int

// Scan implements the Scanner interface for IntArray
func (a *IntArray) Scan(src any) error {
	return scanJSONArray(src, a, func() { *a = IntArray{} })
}

// Value implements the Valuer interface for IntArray
func (a IntArray) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]int(a))
}

func scanJSONArray(src, dst any, empty func()) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		empty()
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into %T", src, dst)
	}
	if len(raw) == 0 || string(raw) == "null" {
		empty()
		return nil
	}
	return json.Unmarshal(raw, dst)
}
