package user

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// NewStore creates a SQLite-backed user Store.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Insert(u *User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt.Unix(),
	)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return ErrEmailTaken
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *store) GetByID(id string) (*User, error) {
	return s.getOne(`SELECT id, name, email, password_hash, created_at FROM users WHERE id = ?`, id)
}

func (s *store) GetByEmail(email string) (*User, error) {
	return s.getOne(`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email)
}

func (s *store) GetAll() ([]*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, email, password_hash, created_at FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []*User
	for rows.Next() {
		var u User
		var createdAt int64
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		u.CreatedAt = time.Unix(createdAt, 0).UTC()
		users = append(users, &u)
	}
	return users, rows.Err()
}

func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *store) getOne(query string, arg any) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var u User
	var createdAt int64
	err := s.db.QueryRow(query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	u.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &u, nil
}
