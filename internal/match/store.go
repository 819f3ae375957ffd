package match

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// NewStore creates a SQLite-backed match Store.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const matchColumns = `id, court_id, date, start_time, end_time, sport, players_json, max_players, status, created_by, created_at`

func (s *store) Insert(m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playersJSON, err := json.Marshal(m.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	query := `
		INSERT INTO matches (` + matchColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.Exec(query,
		m.ID, m.CourtID, m.Date, m.StartTime, m.EndTime, m.Sport,
		string(playersJSON), m.MaxPlayers, string(m.Status), m.CreatedBy,
		m.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

func (s *store) GetByID(id string) (*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id)
	m, err := scanMatch(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return m, nil
}

func (s *store) GetByCourt(courtID string) ([]*Match, error) {
	return s.query(`SELECT `+matchColumns+` FROM matches WHERE court_id = ? ORDER BY created_at`, courtID)
}

func (s *store) GetByUser(userID string) ([]*Match, error) {
	// Player membership is checked against the JSON-encoded list; ids are
	// stored quoted so a substring match on the quoted id is exact.
	return s.query(`
		SELECT `+matchColumns+` FROM matches
		WHERE created_by = ? OR players_json LIKE '%"' || ? || '"%'
		ORDER BY created_at`,
		userID, userID)
}

func (s *store) GetOpen() ([]*Match, error) {
	return s.query(`SELECT `+matchColumns+` FROM matches WHERE status = ? ORDER BY created_at`, string(StatusOpen))
}

func (s *store) GetAll() ([]*Match, error) {
	return s.query(`SELECT ` + matchColumns + ` FROM matches ORDER BY created_at`)
}

func (s *store) Replace(id string, m *Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	playersJSON, err := json.Marshal(m.Players)
	if err != nil {
		return fmt.Errorf("failed to marshal players: %w", err)
	}

	query := `
		UPDATE matches SET
			court_id = ?, date = ?, start_time = ?, end_time = ?, sport = ?,
			players_json = ?, max_players = ?, status = ?, created_by = ?, created_at = ?
		WHERE id = ?
	`
	res, err := s.db.Exec(query,
		m.CourtID, m.Date, m.StartTime, m.EndTime, m.Sport,
		string(playersJSON), m.MaxPlayers, string(m.Status), m.CreatedBy,
		m.CreatedAt.Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to replace match: %w", err)
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

	res, err := s.db.Exec(`DELETE FROM matches WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
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

func (s *store) query(query string, args ...any) ([]*Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	var matches []*Match
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan match row: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// scanMatch is a helper to scan a single match row.
func scanMatch(scanner interface{ Scan(...any) error }) (*Match, error) {
	var m Match
	var playersJSON string
	var status string
	var createdAt int64

	err := scanner.Scan(
		&m.ID, &m.CourtID, &m.Date, &m.StartTime, &m.EndTime, &m.Sport,
		&playersJSON, &m.MaxPlayers, &status, &m.CreatedBy, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	if playersJSON != "" {
		if err := json.Unmarshal([]byte(playersJSON), &m.Players); err != nil {
			return nil, fmt.Errorf("failed to unmarshal players: %w", err)
		}
	}
	if m.Players == nil {
		m.Players = []string{}
	}

	m.Status = Status(status)
	m.CreatedAt = time.Unix(createdAt, 0).UTC()
	return &m, nil
}
