package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Fields errores de validación por campo (solo code=VALIDATION).
	Fields map[string]string `json:"fields,omitempty"`
}

// StatusResponse respuesta de GET /api/status.
type StatusResponse struct {
	Mode             string `json:"mode"` // remote+local | local
	RemoteConfigured bool   `json:"remote_configured"`
	RemoteReachable  bool   `json:"remote_reachable"`
	RemoteError      string `json:"remote_error,omitempty"`
}
