package logger

// Standard field names for consistent structured logging across transmute.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Conversion context
	FieldTarget  = "target"
	FieldSource  = "source"
	FieldBatchID = "batch_id"

	// Files
	FieldFile   = "file"
	FieldOutput = "output"
	FieldFormat = "format"

	// Timing
	FieldDurationMS = "duration_ms"

	// Counts and sizes
	FieldCount = "count"
	FieldLines = "lines"
	FieldSize  = "size"

	// Errors
	FieldError = "error"
)
