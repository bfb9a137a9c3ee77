package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldOperation = "operation"
	FieldKey       = "key"
	FieldBackend   = "backend"
	FieldPath      = "path"
	FieldID        = "id"
	FieldAmount    = "amount"
	FieldCount     = "count"
	FieldError     = "error"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentStorage = "storage"
	ComponentLedger  = "ledger"
	ComponentConfig  = "config"
	ComponentTUI     = "tui"
)

// Standard operation names.
const (
	OpCreate = "create"
	OpDelete = "delete"
	OpUpdate = "update"
	OpImport = "import"
	OpExport = "export"
	OpLoad   = "load"
)
