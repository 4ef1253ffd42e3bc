package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body of every non-resource reply.
type MessageResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// Mensajes de error comunes
const (
	MsgInvalidBody   = "Cuerpo de solicitud inválido"
	MsgValidation    = "Datos inválidos"
	MsgNotFound      = "Usuario no encontrado"
	MsgInternalError = "Error interno del servidor"
)

// ResponseJSON writes v as JSON with the given status code
func ResponseJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, MessageResponse{Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}

// returns 503 Service Unavailable
func ResponseUnavailable(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusServiceUnavailable, MessageResponse{Message: message})
}
