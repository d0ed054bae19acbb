package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/sbilibin2017/gw-entities/internal/models"
)

// DecodeObject decodes a JSON object keeping numbers as json.Number
// so integers are not rounded through float64.
func DecodeObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var obj map[string]any
	if err := dec.Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, fmt.Errorf("expected a JSON object")
	}
	return obj, nil
}

// Coerce converts a decoded JSON value to the Go type stored for the field.
// nil passes through unchanged.
func (f Field) Coerce(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch f.Type {
	case String:
		if s, ok := v.(string); ok {
			return s, nil
		}
	case Boolean:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case Integer:
		if n, ok := toInt64(v); ok {
			return n, nil
		}
	}

	return nil, fmt.Errorf("%w: field %s must be %s", ErrValidation, f.Name, f.Type)
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) || n >= math.MaxInt64 || n < math.MinInt64 {
			return 0, false
		}
		return int64(n), true
	}
	return 0, false
}

// CreateValues returns the column values to insert for a create payload.
// Unknown keys, id and user_id are dropped; required fields must be present and non-null.
func (e *Entity) CreateValues(payload map[string]any) (map[string]any, error) {
	values := make(map[string]any, len(payload))
	for _, f := range e.Fields {
		if !writable(f) {
			continue
		}
		raw, present := payload[f.Name]
		if f.Required && (!present || raw == nil) {
			return nil, fmt.Errorf("%w: field %s is required", ErrValidation, f.Name)
		}
		if !present || raw == nil {
			continue
		}
		v, err := f.Coerce(raw)
		if err != nil {
			return nil, err
		}
		values[f.Name] = v
	}
	return values, nil
}

// PatchValues returns the column values to apply for a partial update.
// Null or absent keys are not applied, and id and user_id are never patched.
func (e *Entity) PatchValues(payload map[string]any) (map[string]any, error) {
	values := make(map[string]any, len(payload))
	for _, f := range e.Fields {
		if !writable(f) {
			continue
		}
		raw, present := payload[f.Name]
		if !present || raw == nil {
			continue
		}
		v, err := f.Coerce(raw)
		if err != nil {
			return nil, err
		}
		values[f.Name] = v
	}
	return values, nil
}

// FilterValues returns the equality conditions for a list query.
// Keys naming undeclared fields are ignored; nil values are kept and match NULL.
func (e *Entity) FilterValues(filters map[string]any) (map[string]any, error) {
	conds := make(map[string]any, len(filters))
	for name, raw := range filters {
		f, ok := e.Field(name)
		if !ok {
			continue
		}
		v, err := f.Coerce(raw)
		if err != nil {
			return nil, err
		}
		conds[name] = v
	}
	return conds, nil
}

// SortColumn resolves a sort expression. It returns the column, whether the
// order is descending, and false when the field is not declared.
func (e *Entity) SortColumn(sort string) (column string, desc bool, ok bool) {
	if sort == "" {
		return "", false, false
	}
	if sort[0] == '-' {
		desc = true
		sort = sort[1:]
	}
	if !e.Has(sort) {
		return "", false, false
	}
	return sort, desc, true
}

// Normalize converts a scanned row to a Record holding only declared columns.
func (e *Entity) Normalize(row map[string]any) (models.Record, error) {
	rec := make(models.Record, len(e.Fields))
	for _, f := range e.Fields {
		raw, ok := row[f.Name]
		if !ok {
			continue
		}
		v, err := normalizeValue(f, raw)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = v
	}
	return rec, nil
}

func normalizeValue(f Field, raw any) (any, error) {
	if raw == nil {
		return nil, nil
	}

	if b, ok := raw.([]byte); ok {
		switch f.Type {
		case String:
			return string(b), nil
		case Integer:
			n, err := strconv.ParseInt(string(b), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", f.Name, err)
			}
			return n, nil
		case Boolean:
			v, err := strconv.ParseBool(string(b))
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", f.Name, err)
			}
			return v, nil
		}
	}

	v, err := f.Coerce(raw)
	if err != nil {
		return nil, fmt.Errorf("column %s: unexpected value %T", f.Name, raw)
	}
	return v, nil
}

// DecodeRecord decodes a JSON encoded record and normalizes its values.
func (e *Entity) DecodeRecord(data []byte) (models.Record, error) {
	row, err := DecodeObject(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return e.Normalize(row)
}
