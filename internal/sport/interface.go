package sport

// Store defines the persistence operations for the sport catalog.
type Store interface {
	Insert(s *Sport) error
	GetByID(id string) (*Sport, error)
	GetAll() ([]*Sport, error)
	Replace(id string, s *Sport) error
	Delete(id string) error
}
