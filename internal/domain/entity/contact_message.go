package entity

import "time"

// ContactMessage mensaje libre enviado desde el formulario público.
// Sin dueño: lo crean visitantes anónimos y solo lo lee Admin.
type ContactMessage struct {
	ID        string
	Email     string
	Message   string
	CreatedAt time.Time
}
