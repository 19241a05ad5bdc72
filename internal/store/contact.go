package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when a message with the same fingerprint exists.
var ErrDuplicate = errors.New("store: duplicate contact message")

const pgUniqueViolation = "23505"

type ContactMessage struct {
	ID          int64
	Name        string
	Email       string
	Company     string
	Message     string
	Fingerprint string
	RemoteIP    string
	UserAgent   string
	RequestID   string
	CreatedAt   time.Time
}

// InsertContactMessage stores msg and fills in ID and CreatedAt.
// Without a connection it does nothing.
func (d *DB) InsertContactMessage(ctx context.Context, msg *ContactMessage) error {
	if !d.Connected() {
		return nil
	}
	const q = `INSERT INTO contact_messages (name, email, company, message, fingerprint, remote_ip, user_agent, request_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`
	err := d.SQL.QueryRowContext(ctx, q,
		msg.Name, msg.Email, msg.Company, msg.Message, msg.Fingerprint, msg.RemoteIP, msg.UserAgent, msg.RequestID,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrDuplicate
		}
		return fmt.Errorf("store: insert contact message: %w", err)
	}
	return nil
}

// RecentContactMessages returns up to limit messages, newest first.
func (d *DB) RecentContactMessages(ctx context.Context, limit int) ([]ContactMessage, error) {
	if !d.Connected() {
		return nil, nil
	}
	const q = `SELECT id, name, email, company, message, fingerprint, remote_ip, user_agent, request_id, created_at
FROM contact_messages ORDER BY created_at DESC, id DESC LIMIT $1`
	rows, err := d.SQL.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list contact messages: %w", err)
	}
	defer rows.Close()
	var out []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Company, &m.Message, &m.Fingerprint, &m.RemoteIP, &m.UserAgent, &m.RequestID, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
