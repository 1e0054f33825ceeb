// Package exitcode exports propenc's exit status numbers.
package exitcode

const (
	// Success is returned when propenc finished without error.
	Success = iota
	// UsageError is returned when there was a syntax or usage error in the arguments.
	UsageError
	// UncategorizedError is returned for any error not categorised otherwise.
	UncategorizedError
	// FileNotFound is returned when an input file is not found.
	FileNotFound
	// ConversionError is returned when the input could not be converted.
	ConversionError
	// Interrupted is returned when the conversion was cancelled.
	Interrupted
)
