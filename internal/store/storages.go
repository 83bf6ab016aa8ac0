package store

// Storages aggregates the repositories the service layer depends on.
type Storages struct {
	UserRepository    UserRepository
	MessageRepository MessageRepository
}

// NewStorages builds every repository on top of one connection.
func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db),
		MessageRepository: NewMessageRepository(db),
	}
}
