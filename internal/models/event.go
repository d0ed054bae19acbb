package models

// Operations reported in change events.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// Event describes a committed change to a single record.
type Event struct {
	EventID   string `json:"event_id"`
	Entity    string `json:"entity"`
	Operation string `json:"operation"`
	RecordID  int64  `json:"record_id"`
	UserID    string `json:"user_id"`
	Timestamp int64  `json:"timestamp"`
}
