package resource

import "strings"

// Fixed permission messages, kept in the backend's user-facing language.
const (
	msgNoViewPermission   = "No tienes permisos para ver este registro"
	msgNoUpdatePermission = "No tienes permisos para actualizar este registro"
	msgNoDeletePermission = "No tienes permisos para eliminar este registro"
)

// ValidationError is raised before any network call when required fields
// are missing from a create payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// PermissionError is raised when the fetched record's owner differs from
// the caller. It is a fast-fail convenience only; the store's own rules
// remain the security boundary.
type PermissionError struct {
	Message string
}

func (e *PermissionError) Error() string {
	return e.Message
}
