package handlers

import (
	"errors"

	"cabmed-api/internal/core/domain"
	"cabmed-api/internal/core/services"
	"cabmed-api/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification and hand-off endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// EnvoyerPatientRequest represents the hand-off request body
type EnvoyerPatientRequest struct {
	PatientID uint `json:"patient_id"`
	MedecinID uint `json:"medecin_id"`
}

// EnvoyerPatient hands a patient off to a doctor
// @Summary Send patient to doctor
// @Description Place a patient in a doctor's waiting slot. A doctor holds at most one waiting patient; a second send replaces the first.
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body EnvoyerPatientRequest true "Hand-off data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/envoyer-patient [post]
func (h *NotificationHandler) EnvoyerPatient(c *fiber.Ctx) error {
	var req EnvoyerPatientRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if req.PatientID == 0 || req.MedecinID == 0 {
		return response.BadRequest(c, "patient_id and medecin_id are required")
	}

	err := h.notificationService.SendPatientToMedecin(c.Context(), req.PatientID, req.MedecinID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPatientNotFound):
			return response.NotFound(c, "Patient not found")
		case errors.Is(err, domain.ErrUtilisateurNotFound):
			return response.NotFound(c, "Medecin not found")
		default:
			return response.InternalServerError(c, "Failed to send patient")
		}
	}

	return response.Success(c, "Patient sent to medecin", nil)
}

// PatientEnCours returns the doctor's waiting patient
// @Summary Get waiting patient
// @Description Get the patient currently waiting for the authenticated doctor. Returns null when nobody is waiting.
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/patient-en-cours [get]
func (h *NotificationHandler) PatientEnCours(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	result, err := h.notificationService.GetPatientEnCours(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to retrieve waiting patient")
	}

	if result == nil {
		return response.Success(c, "No patient waiting", nil)
	}
	return response.Success(c, "Waiting patient retrieved", result)
}

// ClearPatientEnCours frees the doctor's waiting slot
// @Summary Clear waiting patient
// @Description Free the authenticated doctor's waiting slot. Idempotent.
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/patient-en-cours [delete]
func (h *NotificationHandler) ClearPatientEnCours(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	if err := h.notificationService.ClearPatientEnCours(c.Context(), userID); err != nil {
		return response.InternalServerError(c, "Failed to clear waiting patient")
	}

	return response.Success(c, "Waiting patient cleared", nil)
}

// Unread lists the authenticated user's unread notifications
// @Summary List unread notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications/non-lues [get]
func (h *NotificationHandler) Unread(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	notifications, err := h.notificationService.GetUnreadNotifications(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list notifications")
	}

	return response.Success(c, "Notifications retrieved successfully", notifications)
}

// All lists every notification of the authenticated user
// @Summary List all notifications
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *NotificationHandler) All(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	notifications, err := h.notificationService.GetAllNotifications(c.Context(), userID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list notifications")
	}

	return response.Success(c, "Notifications retrieved successfully", notifications)
}

// MarkAsRead marks a notification as read
// @Summary Mark notification as read
// @Tags Notifications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /notifications/{id}/lue [patch]
func (h *NotificationHandler) MarkAsRead(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "Invalid notification ID")
	}

	notification, err := h.notificationService.MarkAsRead(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return response.NotFound(c, "Notification not found")
		}
		return response.InternalServerError(c, "Failed to mark notification as read")
	}

	return response.Success(c, "Notification marked as read", notification)
}
