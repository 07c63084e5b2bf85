package models

import "time"

// Stamp returns the server timestamp used for created_date/modified_date
// columns when the caller does not supply one. Dates are stored as
// strings so caller-supplied values round-trip verbatim; RFC3339 keeps
// lexical order equal to chronological order.
func Stamp() string {
	return time.Now().Format(time.RFC3339)
}
