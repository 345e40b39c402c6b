package service

import "errors"

// Error taxonomy of the service layer. Handlers map these to HTTP statuses:
// validation → 422 (401 inside the auth path), not found → 404, everything
// else → 500. Callers match with [errors.Is]; the concrete message wrapped
// around a sentinel carries the context.
var (
	// ErrValidation marks bad input or an entity-invariant violation.
	ErrValidation = errors.New("invalid data provided")

	// ErrNotFound marks a lookup that matched no document.
	ErrNotFound = errors.New("resource not found")

	// ErrService marks a store failure or an unexpected condition. Internal
	// detail stays wrapped inside and is never surfaced to clients.
	ErrService = errors.New("service error")

	// ErrWrongPassword is returned by Login when the supplied password does
	// not match the stored hash.
	ErrWrongPassword = errors.New("Credenciais inválidas")

	// ErrNoStoredPassword is returned by Login when the account has no
	// password hash on record.
	ErrNoStoredPassword = errors.New("Usuário sem senha cadastrada")

	// ErrTokenSubjectMissing is returned by Authenticate when an otherwise
	// valid token carries no usable subject claim.
	ErrTokenSubjectMissing = errors.New("Token inválido")

	// ErrUserNotFound is returned when the token's subject (or a login
	// email) resolves to no account.
	ErrUserNotFound = errors.New("Usuário não encontrado")
)
