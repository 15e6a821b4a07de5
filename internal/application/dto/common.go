package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

// FieldError campo puntual que falló en una operación del asistente.
type FieldError struct {
	Field string `json:"field"`
	Value string `json:"value,omitempty"`
}

// SessionErrorResponse error de una operación del asistente junto con el estado de la sesión
// (sin cambios, o degradado si el snapshot quedó obsoleto).
type SessionErrorResponse struct {
	ErrorResponse
	Session *SessionResponse `json:"session"`
}
