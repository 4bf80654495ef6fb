// export_test.go exports private functions for white-box testing.
package logger

// ExportErrorFormatting exports the private error formatting functions for testing.
var (
	CollectErrorEntries = collectErrorEntries
	FormatErrorEntries  = formatErrorEntries
)

// Message returns the message of an entry.
func (e errorEntry) Message() string { return e.message }

// Meta returns the metadata of an entry.
func (e errorEntry) Meta() map[string]any { return e.metadata }
