package database

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v4"

	"wakeguard/go-backend/internal/models"
)

var (
	ErrNotFound  = errors.New("database: not found")
	ErrDuplicate = errors.New("database: duplicate value")
)

func wrapDuplicate(err error) error {
	if err != nil && strings.Contains(err.Error(), "duplicate key") {
		return ErrDuplicate
	}
	return err
}

func (d *DB) CreateUser(ctx context.Context, email, username, passwordHash string) (models.User, error) {
	u := models.User{Email: email, Username: username}
	err := d.Pool.QueryRow(ctx,
		`INSERT INTO users (email, username, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`,
		email, username, passwordHash,
	).Scan(&u.ID, &u.CreatedAt)
	return u, wrapDuplicate(err)
}

func (d *DB) GetUserByEmail(ctx context.Context, email string) (models.User, string, error) {
	var u models.User
	var hash string
	err := d.Pool.QueryRow(ctx,
		`SELECT id, email, username, password_hash, created_at FROM users WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Email, &u.Username, &hash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, "", ErrNotFound
	}
	return u, hash, err
}

func (d *DB) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var u models.User
	err := d.Pool.QueryRow(ctx,
		`SELECT id, email, username, created_at FROM users WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Email, &u.Username, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, ErrNotFound
	}
	return u, err
}

func (d *DB) CreateSession(ctx context.Context, userID int, notes string) (models.Session, error) {
	s := models.Session{UserID: userID, Status: "active", Notes: notes}
	err := d.Pool.QueryRow(ctx,
		`INSERT INTO sessions (user_id, notes) VALUES ($1, $2) RETURNING id, start_time`,
		userID, notes,
	).Scan(&s.ID, &s.StartTime)
	return s, err
}

// GetSession fetches one session scoped to its owner.
func (d *DB) GetSession(ctx context.Context, sessionID, userID int) (models.Session, error) {
	var s models.Session
	err := d.Pool.QueryRow(ctx,
		`SELECT id, user_id, start_time, end_time, status, notes
		 FROM sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	).Scan(&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.Status, &s.Notes)
	if errors.Is(err, pgx.ErrNoRows) {
		return s, ErrNotFound
	}
	return s, err
}

func (d *DB) ListSessions(ctx context.Context, userID int) ([]models.Session, error) {
	rows, err := d.Pool.Query(ctx,
		`SELECT id, user_id, start_time, end_time, status, notes
		 FROM sessions WHERE user_id = $1 ORDER BY start_time DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.Session{}
	for rows.Next() {
		var s models.Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.Status, &s.Notes); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (d *DB) EndSession(ctx context.Context, sessionID, userID int) error {
	tag, err := d.Pool.Exec(ctx,
		`UPDATE sessions SET end_time = $1, status = 'completed' WHERE id = $2 AND user_id = $3`,
		time.Now(), sessionID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *DB) DeleteSession(ctx context.Context, sessionID, userID int) error {
	tag, err := d.Pool.Exec(ctx,
		`DELETE FROM sessions WHERE id = $1 AND user_id = $2`,
		sessionID, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (d *DB) SaveEvent(ctx context.Context, e models.Event) error {
	_, err := d.Pool.Exec(ctx,
		`INSERT INTO events (session_id, event_type, ear, mar, timestamp) VALUES ($1, $2, $3, $4, $5)`,
		e.SessionID, e.EventType, e.EAR, e.MAR, e.Timestamp,
	)
	return err
}

func (d *DB) ListEvents(ctx context.Context, sessionID, userID int) ([]models.Event, error) {
	rows, err := d.Pool.Query(ctx,
		`SELECT e.id, e.session_id, e.event_type, e.ear, e.mar, e.timestamp
		 FROM events e JOIN sessions s ON s.id = e.session_id
		 WHERE e.session_id = $1 AND s.user_id = $2 ORDER BY e.timestamp`,
		sessionID, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.SessionID, &e.EventType, &e.EAR, &e.MAR, &e.Timestamp); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (d *DB) GetAlertContact(ctx context.Context, userID int) (models.AlertContact, error) {
	var c models.AlertContact
	err := d.Pool.QueryRow(ctx,
		`SELECT user_id, phone_number, enabled, updated_at FROM alert_contacts WHERE user_id = $1`,
		userID,
	).Scan(&c.UserID, &c.PhoneNumber, &c.Enabled, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return c, ErrNotFound
	}
	return c, err
}

func (d *DB) UpsertAlertContact(ctx context.Context, c models.AlertContact) error {
	_, err := d.Pool.Exec(ctx,
		`INSERT INTO alert_contacts (user_id, phone_number, enabled, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (user_id) DO UPDATE SET phone_number = $2, enabled = $3, updated_at = now()`,
		c.UserID, c.PhoneNumber, c.Enabled,
	)
	return err
}
