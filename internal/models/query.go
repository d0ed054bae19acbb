package models

// Pagination bounds for list queries.
const (
	DefaultLimit = 20
	MaxLimit     = 2000
)

// ListQuery describes a filtered, sorted, paginated scan of one entity table.
type ListQuery struct {
	Filters map[string]any // column -> exact value, nil matches NULL
	Sort    string         // "field" ascending, "-field" descending
	Skip    int
	Limit   int
	Owner   string // empty means all owners
}

// ListResult is the list envelope returned to clients.
// swagger:model ListResult
type ListResult struct {
	Items []Record `json:"items"`
	Total int64    `json:"total"`
	Skip  int      `json:"skip"`
	Limit int      `json:"limit"`
}

// BatchUpdateItem is one element of a batch update request.
type BatchUpdateItem struct {
	ID      int64          `json:"id"`
	Updates map[string]any `json:"updates"`
}
