package services

import "strings"

// isUniqueViolation reports whether err is a sqlite UNIQUE constraint
// failure. The driver exposes no typed error for this, so the message is
// the contract.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// isForeignKeyViolation reports whether err is a sqlite FOREIGN KEY
// constraint failure, i.e. a reference to a row that does not exist.
func isForeignKeyViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
