package court

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// NewStore creates a SQLite-backed court Store. Nested address, sports and
// unit lists are stored as JSON blobs.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const courtColumns = `id, name, address_json, sports_json, opening_hour, closing_hour, units_json, facility_image, price`

func (s *store) Insert(c *Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	addressJSON, sportsJSON, unitsJSON, err := marshalBlobs(c)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(
		`INSERT INTO courts (`+courtColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, addressJSON, sportsJSON, c.OpeningHour, c.ClosingHour,
		unitsJSON, c.FacilityImage, c.Price,
	)
	if err != nil {
		return fmt.Errorf("failed to insert court: %w", err)
	}
	return nil
}

func (s *store) GetByID(id string) (*Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+courtColumns+` FROM courts WHERE id = ?`, id)
	c, err := scanCourt(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get court: %w", err)
	}
	return c, nil
}

func (s *store) GetAll() ([]*Court, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`SELECT ` + courtColumns + ` FROM courts ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query courts: %w", err)
	}
	defer rows.Close()

	var courts []*Court
	for rows.Next() {
		c, err := scanCourt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan court row: %w", err)
		}
		courts = append(courts, c)
	}
	return courts, rows.Err()
}

func (s *store) Replace(id string, c *Court) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	addressJSON, sportsJSON, unitsJSON, err := marshalBlobs(c)
	if err != nil {
		return err
	}

	res, err := s.db.Exec(
		`UPDATE courts SET name = ?, address_json = ?, sports_json = ?, opening_hour = ?,
			closing_hour = ?, units_json = ?, facility_image = ?, price = ?
		WHERE id = ?`,
		c.Name, addressJSON, sportsJSON, c.OpeningHour, c.ClosingHour,
		unitsJSON, c.FacilityImage, c.Price, id,
	)
	if err != nil {
		return fmt.Errorf("failed to replace court: %w", err)
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

	res, err := s.db.Exec(`DELETE FROM courts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete court: %w", err)
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

func marshalBlobs(c *Court) (string, string, string, error) {
	addressJSON, err := json.Marshal(c.Address)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal address: %w", err)
	}
	sportsJSON, err := json.Marshal(c.Sports)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal sports: %w", err)
	}
	unitsJSON, err := json.Marshal(c.Units)
	if err != nil {
		return "", "", "", fmt.Errorf("failed to marshal units: %w", err)
	}
	return string(addressJSON), string(sportsJSON), string(unitsJSON), nil
}

// scanCourt is a helper to scan a single court row.
func scanCourt(scanner interface{ Scan(...any) error }) (*Court, error) {
	var c Court
	var addressJSON string
	var sportsJSON, unitsJSON, facilityImage sql.NullString

	err := scanner.Scan(
		&c.ID, &c.Name, &addressJSON, &sportsJSON, &c.OpeningHour,
		&c.ClosingHour, &unitsJSON, &facilityImage, &c.Price,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(addressJSON), &c.Address); err != nil {
		return nil, fmt.Errorf("failed to unmarshal address: %w", err)
	}
	if sportsJSON.Valid && sportsJSON.String != "" {
		if err := json.Unmarshal([]byte(sportsJSON.String), &c.Sports); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sports: %w", err)
		}
	}
	if unitsJSON.Valid && unitsJSON.String != "" {
		if err := json.Unmarshal([]byte(unitsJSON.String), &c.Units); err != nil {
			return nil, fmt.Errorf("failed to unmarshal units: %w", err)
		}
	}
	c.FacilityImage = facilityImage.String
	return &c, nil
}
