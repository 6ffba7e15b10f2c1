package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tekup-hr/payroll-api/internal/domain/entity"
	"github.com/tekup-hr/payroll-api/internal/domain/repository"
)

var _ repository.ContactRepository = (*ContactRepo)(nil)

// ContactRepo implementación del puerto ContactRepository sobre PostgreSQL.
type ContactRepo struct {
	pool *pgxpool.Pool
}

// NewContactRepository construye el adaptador de persistencia para mensajes de contacto.
func NewContactRepository(pool *pgxpool.Pool) *ContactRepo {
	return &ContactRepo{pool: pool}
}

// Create persiste un mensaje de contacto.
func (r *ContactRepo) Create(msg *entity.ContactMessage) error {
	query := `INSERT INTO contact_messages (id, email, message, created_at) VALUES ($1, $2, $3, $4)`
	_, err := r.pool.Exec(context.Background(), query, msg.ID, msg.Email, msg.Message, msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

// List devuelve todos los mensajes, más recientes primero.
func (r *ContactRepo) List() ([]*entity.ContactMessage, error) {
	query := `SELECT id, email, message, created_at FROM contact_messages ORDER BY created_at DESC`
	rows, err := r.pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()
	var list []*entity.ContactMessage
	for rows.Next() {
		var m entity.ContactMessage
		if err := rows.Scan(&m.ID, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
