package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DateRangeRequest rango de fechas para consultas del dashboard.
// Los defaults (p. ej. mes en curso) los aplica la capa HTTP, no el core.
type DateRangeRequest struct {
	Begin string `query:"begin"`
	End   string `query:"end"`
}
