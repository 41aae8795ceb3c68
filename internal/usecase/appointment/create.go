package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gobarber-api/internal/cache"
	domain "gobarber-api/internal/domain/appointment"
	userdomain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/httperr"
	"gobarber-api/internal/models"
	"gobarber-api/internal/notification"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ProviderID uuid.UUID
	UserID     uuid.UUID

	// horário solicitado, com o offset enviado pelo cliente; a validação
	// de expediente usa a hora de parede desse instante
	Date time.Time
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	users    userdomain.Repository
	cache    *cache.Cache
	notifier *notification.Dispatcher

	now func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	users userdomain.Repository,
	c *cache.Cache,
	notifier *notification.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		users:    users,
		cache:    c,
		notifier: notifier,
		now:      time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Prestador existe
	// --------------------------------------------------
	provider, err := uc.users.FindByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, httperr.ErrBusiness(httperr.CodeProviderNotFound)
	}

	user, err := uc.users.FindByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrBusiness(httperr.CodeUserNotFound)
	}

	// --------------------------------------------------
	// 2. Data no futuro
	// --------------------------------------------------
	if in.Date.Before(uc.now()) {
		return nil, httperr.ErrBusiness(httperr.CodePastDate)
	}

	// --------------------------------------------------
	// 3. Dentro do expediente (hora de parede do pedido)
	// --------------------------------------------------
	if hour := in.Date.Hour(); hour < domain.DayStartHour || hour > domain.DayEndHour {
		return nil, httperr.ErrBusiness(httperr.CodeOutsideBusinessHours)
	}

	// --------------------------------------------------
	// 4. Sem auto-agendamento
	// --------------------------------------------------
	if in.ProviderID == in.UserID {
		return nil, httperr.ErrBusiness(httperr.CodeSelfBooking)
	}

	// --------------------------------------------------
	// 5. Slot livre. O pré-check dá a resposta amigável no caso comum;
	//    a corrida entre dois pedidos simultâneos é fechada pelo índice
	//    único em (provider_id, date) dentro do Create.
	// --------------------------------------------------
	existing, err := uc.repo.FindByProviderAndDate(ctx, in.ProviderID, in.Date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrBusiness(httperr.CodeSlotTaken)
	}

	// --------------------------------------------------
	// 6. Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		ProviderID: in.ProviderID,
		UserID:     in.UserID,
		Date:       in.Date,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7. Notificação assíncrona ao prestador
	// --------------------------------------------------
	uc.notifier.Dispatch(notification.Event{
		RecipientID: in.ProviderID.String(),
		Content:     notification.FormatBookingMessage(user.Name, user.Surname, in.Date),
	})

	// --------------------------------------------------
	// 8. Invalida o dia do prestador e a lista do usuário
	// --------------------------------------------------
	uc.cache.Delete(
		ctx,
		cache.ProviderAppointmentsDayKey(in.ProviderID, in.Date.Day(), in.Date.Month(), in.Date.Year()),
		cache.UserAppointmentsKey(in.UserID),
	)

	return ap, nil
}
