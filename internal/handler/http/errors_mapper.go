package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrWrongPassword:              http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:    http.StatusUnauthorized,
	service.ErrResetTokenInvalidOrExpired: http.StatusBadRequest,
	service.ErrNotPostOwner:               http.StatusForbidden,

	ErrAdminRequired:        http.StatusForbidden,
	ErrInvalidPathParameter: http.StatusBadRequest,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrPostNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// publicMessage returns a display-safe message for err: the sentinel's own
// text when the error is a mapped one, a generic status text otherwise.
// Internal error detail never reaches the response body.
func publicMessage(err error) string {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			if status == http.StatusInternalServerError {
				return http.StatusText(http.StatusInternalServerError)
			}
			return target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
