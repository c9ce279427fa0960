package httperr

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation      Kind = "validation"
	KindUnauthorized    Kind = "unauthorized"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindTooManyRequests Kind = "too_many_requests"
	KindInternal        Kind = "internal"
)

// AppError is the single error type business code raises. It carries a
// stable machine code and a message meant for the API caller.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string]string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func (e *AppError) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error {
	return New(KindValidation, code, message)
}

func ValidationFields(code, message string, fields map[string]string) error {
	e := New(KindValidation, code, message)
	e.Fields = fields
	return e
}

func Unauthorized(code, message string) error {
	return New(KindUnauthorized, code, message)
}

func NotFound(code, message string) error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) error {
	return New(KindConflict, code, message)
}

func TooManyRequests(code, message string) error {
	return New(KindTooManyRequests, code, message)
}

// As returns the AppError wrapped anywhere in err's chain.
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, kind Kind) bool {
	ae, ok := As(err)
	return ok && ae.Kind == kind
}

func IsCode(err error, code string) bool {
	ae, ok := As(err)
	return ok && ae.Code == code
}

const pgUniqueViolation = "23505"

// IsUniqueViolation reports whether err comes from a unique index rejecting
// a write.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
