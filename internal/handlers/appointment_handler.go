package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gobarber-api/internal/httperr"
	"gobarber-api/internal/httpresp"
	"gobarber-api/internal/middleware"
	ucAppointment "gobarber-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
}

func NewAppointmentHandler(createUC *ucAppointment.CreateAppointment) *AppointmentHandler {
	return &AppointmentHandler{createUC: createUC}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProviderID uuid.UUID `json:"provider_id" binding:"required"`
	Date       time.Time `json:"date" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		ProviderID: req.ProviderID,
		UserID:     userID,
		Date:       req.Date,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeProviderNotFound:
			httperr.NotFound(c, httperr.CodeProviderNotFound, "Cabeleireiro não encontrado.")
		case httperr.CodeUserNotFound:
			httperr.NotFound(c, httperr.CodeUserNotFound, "Usuário não encontrado.")
		case httperr.CodePastDate:
			httperr.BadRequest(c, httperr.CodePastDate, "Você não pode marcar agendamento em datas passadas.")
		case httperr.CodeOutsideBusinessHours:
			httperr.BadRequest(c, httperr.CodeOutsideBusinessHours, "Você só pode criar agendamentos entre 8:00 e 17:00.")
		case httperr.CodeSelfBooking:
			httperr.BadRequest(c, httperr.CodeSelfBooking, "Você não pode marcar agendamento consigo mesmo.")
		case httperr.CodeSlotTaken:
			httperr.Conflict(c, httperr.CodeSlotTaken, "Este horário já está agendado.")
		default:
			httperr.Internal(c, "create_failed", "Erro ao criar agendamento.")
		}
		return
	}

	httpresp.Created(c, ap)
}
