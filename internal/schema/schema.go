// Package schema declares the entity tables served by the API and
// validates client values against their field declarations.
package schema

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-entities/internal/models"
)

// FieldType is the storage type of an entity field.
type FieldType string

// Supported field types.
const (
	String  FieldType = "string"
	Integer FieldType = "integer"
	Boolean FieldType = "boolean"
)

// ErrValidation is returned when a client value does not match the entity declaration.
var ErrValidation = errors.New("validation failed")

// Field declares a single column of an entity table.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Entity is the static description of one table.
type Entity struct {
	Name   string // URL segment and event name, e.g. "chat_history"
	Label  string // human readable name used in messages
	Table  string
	Fields []Field

	index map[string]int
}

// NewEntity builds an entity and checks its declaration.
// Every entity must declare id (integer), user_id (string) and created_at (string).
func NewEntity(name, label, table string, fields ...Field) (*Entity, error) {
	e := &Entity{
		Name:   name,
		Label:  label,
		Table:  table,
		Fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	if name == "" || table == "" {
		return nil, fmt.Errorf("entity %q: name and table are required", name)
	}

	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("entity %s: field %d has no name", name, i)
		}
		switch f.Type {
		case String, Integer, Boolean:
		default:
			return nil, fmt.Errorf("entity %s: field %s has unsupported type %q", name, f.Name, f.Type)
		}
		if _, dup := e.index[f.Name]; dup {
			return nil, fmt.Errorf("entity %s: duplicate field %s", name, f.Name)
		}
		e.index[f.Name] = i
	}

	mandatory := []struct {
		name string
		typ  FieldType
	}{
		{models.ColumnID, Integer},
		{models.ColumnUserID, String},
		{models.ColumnCreatedAt, String},
	}
	for _, m := range mandatory {
		f, ok := e.Field(m.name)
		if !ok {
			return nil, fmt.Errorf("entity %s: missing %s field", name, m.name)
		}
		if f.Type != m.typ {
			return nil, fmt.Errorf("entity %s: field %s must be %s", name, m.name, m.typ)
		}
	}

	return e, nil
}

// MustEntity is like NewEntity but panics on an invalid declaration.
func MustEntity(name, label, table string, fields ...Field) *Entity {
	e, err := NewEntity(name, label, table, fields...)
	if err != nil {
		panic(err)
	}
	return e
}

// Field returns the declaration of the named field.
func (e *Entity) Field(name string) (Field, bool) {
	i, ok := e.index[name]
	if !ok {
		return Field{}, false
	}
	return e.Fields[i], true
}

// Has reports whether the entity declares the named field.
func (e *Entity) Has(name string) bool {
	_, ok := e.index[name]
	return ok
}

// Columns returns all column names in declaration order.
func (e *Entity) Columns() []string {
	cols := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		cols[i] = f.Name
	}
	return cols
}

// writable reports whether clients may set the field.
func writable(f Field) bool {
	return f.Name != models.ColumnID && f.Name != models.ColumnUserID
}

// DDL returns a CREATE TABLE statement matching the declaration.
func (e *Entity) DDL() string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", e.Table)
	for i, f := range e.Fields {
		if i > 0 {
			b.WriteString(",\n")
		}
		if f.Name == models.ColumnID {
			fmt.Fprintf(&b, "\t%s BIGSERIAL PRIMARY KEY", f.Name)
			continue
		}
		fmt.Fprintf(&b, "\t%s %s", f.Name, sqlType(f.Type))
		if f.Required || f.Name == models.ColumnUserID {
			b.WriteString(" NOT NULL")
		}
	}
	b.WriteString("\n);\n")
	fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS idx_%s_user_id ON %s (user_id);", e.Table, e.Table)
	return b.String()
}

func sqlType(t FieldType) string {
	switch t {
	case Integer:
		return "BIGINT"
	case Boolean:
		return "BOOLEAN"
	default:
		return "TEXT"
	}
}
