// Package utils provides utility functions and helpers for the application.
// This file implements the API response helpers that keep every endpoint's
// JSON output in the same shape: a `message` string, optional payload
// members, and a `data` array of field errors on validation failures.
package utils

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/postsblog/backend/internal/constants"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Message string       `json:"message"`
	Data    []FieldError `json:"data,omitempty"`
}

// JSON sends a JSON response with the given status code and payload.
// This is the primary function for sending successful responses.
func JSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	SendJSON(w, statusCode, payload)
}

// Error sends an error response with the given status code and message.
func Error(w http.ResponseWriter, statusCode int, message string, data []FieldError) {
	SendJSON(w, statusCode, ErrorResponse{
		Message: message,
		Data:    data,
	})
}

// ErrorFromAppError sends an error response based on an AppError.
// The status code, message, and any validation details are taken from the
// error itself; internal details in DevInfo are logged but never sent.
func ErrorFromAppError(w http.ResponseWriter, err *AppError) {
	if err.DevInfo != "" {
		log.Debug().
			Int("status", err.StatusCode).
			Str("dev_info", err.DevInfo).
			Msg("Request failed")
	}
	Error(w, err.StatusCode, err.Message, err.Data)
}

// SendJSON is a helper function to send JSON data with proper headers.
// This handles JSON marshaling and error handling for all response types.
func SendJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set(constants.HeaderContentType, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)

	jsonData, err := json.Marshal(data)
	if err != nil {
		// If marshaling fails, log the error and send a simple error response
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		if _, err := w.Write([]byte(`{"message":"Failed to generate response"}`)); err != nil {
			log.Error().Err(err).Msg("Failed to write error response")
		}
		return
	}

	if _, err := w.Write(jsonData); err != nil {
		// Log write errors but don't try to recover
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// BadRequest sends a 400 Bad Request response with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	Error(w, constants.StatusBadRequest, message, nil)
}

// Unauthorized sends a 401 Unauthorized response with the given message.
func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgAuthRequired
	}
	Error(w, constants.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 Not Found response with the given message.
func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = constants.MsgResourceNotFound
	}
	Error(w, constants.StatusNotFound, message, nil)
}

// MethodNotAllowed sends a 405 Method Not Allowed response.
func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, constants.StatusMethodNotAllowed, constants.MsgMethodNotAllowed, nil)
}

// InternalServerError sends a 500 Internal Server Error response.
// The underlying error is logged but not exposed to the client.
func InternalServerError(w http.ResponseWriter, err error) {
	log.Error().Err(err).Msg("Internal server error")
	Error(w, constants.StatusInternalServerError, constants.MsgInternalServerError, nil)
}
