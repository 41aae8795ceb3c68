package dto

import (
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/models"
)

type AppointmentDTO struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	UserID     uuid.UUID `json:"user_id"`
	Date       time.Time `json:"date"`
}

func FromAppointments(apps []models.Appointment) []AppointmentDTO {
	out := make([]AppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentDTO{
			ID:         ap.ID,
			ProviderID: ap.ProviderID,
			UserID:     ap.UserID,
			Date:       ap.Date,
		})
	}
	return out
}
