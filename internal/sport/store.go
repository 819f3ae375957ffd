package sport

import (
	"database/sql"
	"fmt"
)

// NewStore creates a SQLite-backed sport Store.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) Insert(sp *Sport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO sports (id, name, image, description) VALUES (?, ?, ?, ?)`,
		sp.ID, sp.Name, sp.Image, sp.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert sport: %w", err)
	}
	return nil
}

func (s *store) GetByID(id string) (*Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sp Sport
	var image, description sql.NullString
	err := s.db.QueryRow(`SELECT id, name, image, description FROM sports WHERE id = ?`, id).
		Scan(&sp.ID, &sp.Name, &image, &description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sport: %w", err)
	}
	sp.Image = image.String
	sp.Description = description.String
	return &sp, nil
}

func (s *store) GetAll() ([]*Sport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT id, name, image, description FROM sports ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sports: %w", err)
	}
	defer rows.Close()

	var sports []*Sport
	for rows.Next() {
		var sp Sport
		var image, description sql.NullString
		if err := rows.Scan(&sp.ID, &sp.Name, &image, &description); err != nil {
			return nil, fmt.Errorf("failed to scan sport row: %w", err)
		}
		sp.Image = image.String
		sp.Description = description.String
		sports = append(sports, &sp)
	}
	return sports, rows.Err()
}

func (s *store) Replace(id string, sp *Sport) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(
		`UPDATE sports SET name = ?, image = ?, description = ? WHERE id = ?`,
		sp.Name, sp.Image, sp.Description, id,
	)
	if err != nil {
		return fmt.Errorf("failed to replace sport: %w", err)
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

func (s *store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.Exec(`DELETE FROM sports WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete sport: %w", err)
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
