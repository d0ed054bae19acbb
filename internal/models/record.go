package models

// Column names shared by every entity table.
const (
	ColumnID        = "id"
	ColumnUserID    = "user_id"
	ColumnCreatedAt = "created_at"
)

// Record is a single entity row keyed by column name.
// Values are string, int64, bool or nil.
type Record map[string]any

// ID returns the surrogate key of the record.
func (r Record) ID() int64 {
	id, _ := r[ColumnID].(int64)
	return id
}

// UserID returns the owner of the record.
func (r Record) UserID() string {
	owner, _ := r[ColumnUserID].(string)
	return owner
}

// Project returns a copy of the record restricted to the given columns.
// The id column is always kept; names the record does not carry are ignored.
func (r Record) Project(columns []string) Record {
	if len(columns) == 0 {
		return r
	}
	out := Record{}
	if id, ok := r[ColumnID]; ok {
		out[ColumnID] = id
	}
	for _, c := range columns {
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out
}
