package service

import "errors"

// Kind classifies service failures so the transport layer can pick a status code.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
)

// Error is a classified service failure with a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// ErrEmailInUse is returned when signing up with a registered email.
	ErrEmailInUse = &Error{Kind: KindConflict, Message: "Email is already in use"}

	// ErrEmailNotFound is returned when signing in with an unknown email.
	ErrEmailNotFound = &Error{Kind: KindNotFound, Message: "Email not in use"}

	// ErrInvalidPassword indicates the password does not match the stored hash.
	ErrInvalidPassword = &Error{Kind: KindUnauthorized, Message: "Invalid password"}

	// ErrUnauthorized covers missing, malformed, expired or mis-signed tokens.
	ErrUnauthorized = &Error{Kind: KindUnauthorized, Message: "Unauthorized"}

	ErrPostNotFound  = &Error{Kind: KindNotFound, Message: "Post not found"}
	ErrPresignFailed = &Error{Kind: KindInternal, Message: "Cannot generate pre-signed URL"}
)

// KindOf reports the classification of err, defaulting to KindInternal.
func KindOf(err error) Kind {
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return svcErr.Kind
	}
	return KindInternal
}
