// Package exception defines keyed errors that the GraphQL layer turns into
// client-visible error codes.
package exception

// Error keys exposed through the API.
const (
	KeyNotFound      = "NOT_FOUND"
	KeyAlreadyExists = "ALREADY_EXISTS"
	KeyBadUserInput  = "BAD_USER_INPUT"
)

// Error carries a stable key alongside a human-readable message. The key
// surfaces as extensions.code on the GraphQL error.
type Error struct {
	Key     string
	Message string
}

func New(key, message string) *Error {
	return &Error{Key: key, Message: message}
}

func (e *Error) Error() string {
	return e.Message
}

// Extensions satisfies the resolver library's extended-error contract.
func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Key}
}
