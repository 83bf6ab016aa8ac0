package service

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}

// MessageServiceWrapper defines middleware composition for MessageService.
type MessageServiceWrapper interface {
	Wrap(MessageService) MessageService
}
