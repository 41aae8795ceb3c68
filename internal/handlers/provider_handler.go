package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"gobarber-api/internal/httperr"
	"gobarber-api/internal/httpresp"
	"gobarber-api/internal/middleware"
	"gobarber-api/internal/notification"
	ucAppointment "gobarber-api/internal/usecase/appointment"
	ucUser "gobarber-api/internal/usecase/user"
)

type ProviderHandler struct {
	listProvidersUC *ucUser.ListProviders
	monthUC         *ucAppointment.GetMonthAvailability
	dayUC           *ucAppointment.GetDayAvailability
	dayListUC       *ucAppointment.ListProviderDayAppointments
	notifications   *notification.Store
}

func NewProviderHandler(
	listProvidersUC *ucUser.ListProviders,
	monthUC *ucAppointment.GetMonthAvailability,
	dayUC *ucAppointment.GetDayAvailability,
	dayListUC *ucAppointment.ListProviderDayAppointments,
	notifications *notification.Store,
) *ProviderHandler {
	return &ProviderHandler{
		listProvidersUC: listProvidersUC,
		monthUC:         monthUC,
		dayUC:           dayUC,
		dayListUC:       dayListUC,
		notifications:   notifications,
	}
}

// ======================================================
// HELPERS
// ======================================================

func queryInt(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Parâmetro "+name+" inválido.")
		return 0, false
	}
	return v, true
}

func queryProviderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Query("provider_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Parâmetro provider_id inválido.")
		return uuid.Nil, false
	}
	return id, true
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ProviderHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	providers, err := h.listProvidersUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar prestadores.")
		return
	}

	httpresp.List(c, providers)
}

// ListMyDayAppointments devolve a agenda do dia do prestador logado.
func (h *ProviderHandler) ListMyDayAppointments(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	day, ok := queryInt(c, "day")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	apps, err := h.dayListUC.Execute(c.Request.Context(), userID, day, time.Month(month), year)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *ProviderHandler) MonthAvailability(c *gin.Context) {
	providerID, ok := queryProviderID(c)
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	availability, err := h.monthUC.Execute(c.Request.Context(), providerID, time.Month(month), year)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular disponibilidade.")
		return
	}

	httpresp.OK(c, availability)
}

func (h *ProviderHandler) DayAvailability(c *gin.Context) {
	providerID, ok := queryProviderID(c)
	if !ok {
		return
	}
	day, ok := queryInt(c, "day")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}

	availability, err := h.dayUC.Execute(c.Request.Context(), providerID, day, time.Month(month), year)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular disponibilidade.")
		return
	}

	httpresp.OK(c, availability)
}

// ======================================================
// NOTIFICATIONS
// ======================================================

func (h *ProviderHandler) ListNotifications(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	notifications, err := h.notifications.ListUnread(c.Request.Context(), userID.String())
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar notificações.")
		return
	}

	httpresp.List(c, notifications)
}

type ReadNotificationRequest struct {
	DocID string `json:"doc_id" binding:"required"`
}

func (h *ProviderHandler) ReadNotification(c *gin.Context) {
	var req ReadNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), req.DocID); err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar notificação.")
		return
	}

	httpresp.NoContent(c)
}
