package court

// Store defines the persistence operations for the court catalog.
type Store interface {
	Insert(c *Court) error
	GetByID(id string) (*Court, error)
	GetAll() ([]*Court, error)
	Replace(id string, c *Court) error
	Delete(id string) error
}
