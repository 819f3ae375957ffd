package reservation

import (
	"database/sql"
	"fmt"
	"time"
)

// NewStore creates a SQLite-backed reservation Store.
func NewStore(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

const reservationColumns = `id, court_id, user_id, date, start_time, end_time, sport, facility_name, facility_address, court_image, can_modify, status, price, payment_status, created_at`

func (s *store) Insert(r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		INSERT INTO reservations (` + reservationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query,
		r.ID, r.CourtID, r.UserID, r.Date,
		r.StartTime.Unix(), r.EndTime.Unix(),
		r.Sport, r.FacilityName, r.FacilityAddress, r.CourtImage,
		r.CanModify, string(r.Status), r.Price, string(r.PaymentStatus),
		r.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("failed to insert reservation: %w", err)
	}
	return nil
}

func (s *store) GetByID(id string) (*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRow(`SELECT `+reservationColumns+` FROM reservations WHERE id = ?`, id)
	r, err := scanReservation(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}
	return r, nil
}

func (s *store) GetByUser(userID string) ([]*Reservation, error) {
	return s.query(`SELECT `+reservationColumns+` FROM reservations WHERE user_id = ? ORDER BY start_time`, userID)
}

func (s *store) GetByCourt(courtID string) ([]*Reservation, error) {
	return s.query(`SELECT `+reservationColumns+` FROM reservations WHERE court_id = ? ORDER BY start_time`, courtID)
}

func (s *store) GetByDate(date string) ([]*Reservation, error) {
	return s.query(`SELECT `+reservationColumns+` FROM reservations WHERE date = ? ORDER BY start_time`, date)
}

func (s *store) GetActiveByCourtDate(courtID, date string) ([]*Reservation, error) {
	return s.query(`
		SELECT `+reservationColumns+` FROM reservations
		WHERE court_id = ? AND date = ? AND status != ?
		ORDER BY start_time`,
		courtID, date, string(StatusCancelled))
}

func (s *store) GetAll() ([]*Reservation, error) {
	return s.query(`SELECT ` + reservationColumns + ` FROM reservations ORDER BY start_time`)
}

func (s *store) Replace(id string, r *Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	query := `
		UPDATE reservations SET
			court_id = ?, user_id = ?, date = ?, start_time = ?, end_time = ?,
			sport = ?, facility_name = ?, facility_address = ?, court_image = ?,
			can_modify = ?, status = ?, price = ?, payment_status = ?, created_at = ?
		WHERE id = ?
	`
	res, err := s.db.Exec(query,
		r.CourtID, r.UserID, r.Date,
		r.StartTime.Unix(), r.EndTime.Unix(),
		r.Sport, r.FacilityName, r.FacilityAddress, r.CourtImage,
		r.CanModify, string(r.Status), r.Price, string(r.PaymentStatus),
		r.CreatedAt.Unix(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to replace reservation: %w", err)
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

	res, err := s.db.Exec(`DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete reservation: %w", err)
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

func (s *store) query(query string, args ...any) ([]*Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservations: %w", err)
	}
	defer rows.Close()

	var reservations []*Reservation
	for rows.Next() {
		r, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reservation row: %w", err)
		}
		reservations = append(reservations, r)
	}
	return reservations, rows.Err()
}

// scanReservation is a helper to scan a single reservation row.
func scanReservation(scanner interface{ Scan(...any) error }) (*Reservation, error) {
	var r Reservation
	var start, end, createdAt int64
	var status, paymentStatus string
	var courtImage sql.NullString

	err := scanner.Scan(
		&r.ID, &r.CourtID, &r.UserID, &r.Date, &start, &end,
		&r.Sport, &r.FacilityName, &r.FacilityAddress, &courtImage,
		&r.CanModify, &status, &r.Price, &paymentStatus, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	r.StartTime = time.Unix(start, 0).UTC()
	r.EndTime = time.Unix(end, 0).UTC()
	r.CreatedAt = time.Unix(createdAt, 0).UTC()
	r.Status = Status(status)
	r.PaymentStatus = PaymentStatus(paymentStatus)
	r.CourtImage = courtImage.String
	return &r, nil
}
