package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/textloom/textloom/pkg/services"
)

// errorBody is the JSON error envelope returned by every endpoint.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": errorBody{Code: code, Message: message}})
}

// mapServiceError maps service-layer errors to HTTP error responses.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		respondError(c, http.StatusBadRequest, "INVALID_SPEC", validErr.Error())
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		respondError(c, http.StatusNotFound, "NOT_FOUND", "task not found")
		return
	}
	if errors.Is(err, services.ErrAlreadyTerminal) {
		respondError(c, http.StatusConflict, "ALREADY_TERMINAL", "task has already reached a terminal status")
		return
	}
	if errors.Is(err, services.ErrNotRetryable) {
		respondError(c, http.StatusConflict, "NOT_RETRYABLE", "task is not in a retryable status")
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		respondError(c, http.StatusConflict, "ALREADY_EXISTS", "resource already exists")
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	respondError(c, http.StatusInternalServerError, "INTERNAL", "internal server error")
}
