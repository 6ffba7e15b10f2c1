package dto

import "time"

// CreateContactRequest mensaje del formulario público de contacto.
type CreateContactRequest struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResponse representación de un mensaje recibido.
type ContactResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
