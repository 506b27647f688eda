package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldPath      = "path"
	FieldSession   = "session_id"
	FieldCount     = "count"
)

// Standard component names.
const (
	ComponentApp      = "app"
	ComponentLedger   = "ledger"
	ComponentSnapshot = "snapshot"
	ComponentCSV      = "csv"
)
