package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// InsufficientStockResponse cuerpo de error 409 con los valores para un mensaje preciso.
type InsufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Available int    `json:"available"`
	Requested int    `json:"requested"`
}

// SuccessResponse respuesta simple de operaciones sin cuerpo.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// CreatedResponse identificador generado por un alta.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
