// Package response holds the JSON envelope shared by every endpoint and
// the mapping from domain errors onto HTTP statuses.
package response

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"cabmed-api/internal/core/domain"
)

// Response is the envelope every endpoint replies with. Data is only
// set on success, Error and Code only on failure.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Code    int         `json:"code,omitempty"`
}

func send(c *fiber.Ctx, status int, body Response) error {
	return c.Status(status).JSON(body)
}

// Success sends a 200 response carrying data
func Success(c *fiber.Ctx, message string, data interface{}) error {
	return send(c, fiber.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 created response
func Created(c *fiber.Ctx, message string, data interface{}) error {
	return send(c, fiber.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error sends an error response with the given status
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return send(c, statusCode, Response{
		Success: false,
		Error:   message,
		Code:    statusCode,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

// notFoundSentinels groups every entity resolution failure surfaced by
// the services
var notFoundSentinels = []error{
	domain.ErrNotFound,
	domain.ErrPatientNotFound,
	domain.ErrUtilisateurNotFound,
	domain.ErrCabinetNotFound,
	domain.ErrSpecialiteNotFound,
	domain.ErrConsultationNotFound,
	domain.ErrRendezVousNotFound,
	domain.ErrOrdonnanceNotFound,
	domain.ErrFactureNotFound,
	domain.ErrMedicamentNotFound,
	domain.ErrDossierNotFound,
}

// conflictSentinels groups uniqueness violations
var conflictSentinels = []error{
	domain.ErrDuplicateEntry,
	domain.ErrCINAlreadyExists,
	domain.ErrEmailAlreadyExists,
}

// StatusOf maps a domain sentinel onto its HTTP status. Errors outside
// the domain taxonomy are treated as internal.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenInvalid):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	}
	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			return fiber.StatusNotFound
		}
	}
	for _, sentinel := range conflictSentinels {
		if errors.Is(err, sentinel) {
			return fiber.StatusConflict
		}
	}
	return fiber.StatusInternalServerError
}

// FromError replies with the status implied by the domain sentinel. For
// known sentinels the sentinel text is surfaced as the error message;
// fallback covers everything else.
func FromError(c *fiber.Ctx, err error, fallback string) error {
	status := StatusOf(err)
	if status == fiber.StatusInternalServerError {
		return Error(c, status, fallback)
	}
	return Error(c, status, err.Error())
}
