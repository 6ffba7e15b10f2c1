package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta plana con solo un mensaje (contratos heredados del frontend).
type MessageResponse struct {
	Message string `json:"message"`
}
