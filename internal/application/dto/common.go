package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Notification tupla (título, descripción, severidad) para la superficie de
// avisos al usuario (toast/log). El core solo produce estos campos.
type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"` // success, error, warning
}
