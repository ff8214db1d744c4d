package format

import "fmt"

// corruptIndex builds the panic value for an out-of-range index into one of
// the record arrays. Every such violation indicates the database failed one
// of the invariants the producer is required to uphold; this is treated as
// a fatal corruption, not a recoverable query error.
func corruptIndex(what string, index, length int) string {
	return fmt.Sprintf("locdb: corrupt database: %s index %d out of range (len %d)", what, index, length)
}
