package http

import (
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// writeSuccess sends the uniform envelope for a successful operation.
func (h *Handler) writeSuccess(w http.ResponseWriter, statusCode int, message string, data any) {
	utils.WriteJSON(w, models.Envelope{
		Status:  true,
		Message: message,
		Data:    data,
	}, statusCode)
}

// writeFailure maps err to an HTTP status via the sentinel table and sends
// the uniform envelope with a display-safe message.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := publicMessage(err)
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
	}

	utils.WriteJSON(w, models.Envelope{
		Status:  false,
		Message: message,
		Error:   &models.APIError{Message: message},
	}, status)
}

// writeBadRequest reports a malformed request body without going through the
// sentinel table.
func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.Envelope{
		Status:  false,
		Message: message,
		Error:   &models.APIError{Message: message},
	}, http.StatusBadRequest)
}

// writeUnauthorized is used by the middleware for the 401 taxonomy; the
// sentinel's text is safe to show.
func writeUnauthorized(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.Envelope{
		Status:  false,
		Message: err.Error(),
		Error:   &models.APIError{Message: err.Error()},
	}, http.StatusUnauthorized)
}
