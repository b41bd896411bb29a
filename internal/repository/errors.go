// Package repository holds the data access logic for the domain entities.
// Each repository owns its SQL and declares the sentinel errors handlers use
// to map failures to HTTP statuses.  This file keeps the helpers that
// translate MySQL driver errors into those sentinels.
package repository

import "strings"

// isDuplicado reports whether err is a MySQL duplicate-key violation
// (error 1062), raised when a unique column such as usuarios.email collides.
func isDuplicado(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}

// isRestricaoFK reports whether err is a MySQL foreign-key restriction
// (error 1451), raised when deleting a parent row that child rows still
// reference.
func isRestricaoFK(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1451")
}
