package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// MessageResponse respuesta de éxito sin payload adicional.
type MessageResponse struct {
	Message string `json:"message"`
}

// DateLayout formato de fechas en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"
