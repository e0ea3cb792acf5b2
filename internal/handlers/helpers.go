package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"campus-safety/internal/apperr"
)

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.WriteHeader(code)
	if err := JSONResponse(w, payload); err != nil {
		// If marshaling fails, log the error
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Internal server error"}`))
	}
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithServiceError maps the service error taxonomy onto HTTP status
// codes. Transition rejections carry the current state and the legal next
// states so the client can correct the request.
func respondWithServiceError(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		respondWithJSON(w, http.StatusBadRequest, map[string]string{
			"error": ve.Error(),
			"field": ve.Field,
		})
		return
	}

	var te *apperr.InvalidTransitionError
	if errors.As(err, &te) {
		respondWithJSON(w, http.StatusConflict, map[string]interface{}{
			"error":          te.Error(),
			"current_status": te.From,
			"allowed":        te.Allowed,
		})
		return
	}

	var ne *apperr.NotFoundError
	if errors.As(err, &ne) {
		respondWithError(w, http.StatusNotFound, ne.Error())
		return
	}

	var tr *apperr.TransportError
	if errors.As(err, &tr) {
		slog.Error("Store unavailable", "op", tr.Op, "error", tr.Err)
		respondWithError(w, http.StatusBadGateway, "Store temporarily unavailable")
		return
	}

	slog.Error("Unhandled service error", "error", err)
	respondWithError(w, http.StatusInternalServerError, "Internal server error")
}

func getIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return forwarded
	}
	realIP := r.Header.Get("X-Real-IP")
	if realIP != "" {
		return realIP
	}
	return r.RemoteAddr
}
