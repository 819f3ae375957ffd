package user

// Store defines the persistence operations for user accounts.
type Store interface {
	Insert(u *User) error
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	GetAll() ([]*User, error)
	Delete(id string) error
}
