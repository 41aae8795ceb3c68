package handlers

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/httperr"
	"gobarber-api/internal/httpresp"
	"gobarber-api/internal/media"
	"gobarber-api/internal/middleware"
	ucAppointment "gobarber-api/internal/usecase/appointment"
	ucUser "gobarber-api/internal/usecase/user"
)

type UserHandler struct {
	users       domain.Repository
	updateUC    *ucUser.UpdateProfile
	passwordUC  *ucUser.UpdatePassword
	upcomingUC  *ucAppointment.ListUpcomingAppointments
	avatars     *media.AvatarStore
	invalidator *ucUser.ProfileCacheInvalidator
}

func NewUserHandler(
	users domain.Repository,
	updateUC *ucUser.UpdateProfile,
	passwordUC *ucUser.UpdatePassword,
	upcomingUC *ucAppointment.ListUpcomingAppointments,
	avatars *media.AvatarStore,
	invalidator *ucUser.ProfileCacheInvalidator,
) *UserHandler {
	return &UserHandler{
		users:       users,
		updateUC:    updateUC,
		passwordUC:  passwordUC,
		upcomingUC:  upcomingUC,
		avatars:     avatars,
		invalidator: invalidator,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type UpdateProfileRequest struct {
	Name    string  `json:"name" binding:"required"`
	Surname string  `json:"surname" binding:"required"`
	Email   string  `json:"email" binding:"required,email"`
	Address *string `json:"address"`
}

type UpdatePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

// ======================================================
// HANDLERS
// ======================================================

// ListAppointments devolve os agendamentos futuros do usuário logado.
func (h *UserHandler) ListAppointments(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	apps, err := h.upcomingUC.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		return
	}

	httpresp.List(c, apps)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.updateUC.Execute(c.Request.Context(), ucUser.UpdateProfileInput{
		UserID:  userID,
		Name:    req.Name,
		Surname: req.Surname,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeEmailTaken:
			httperr.BadRequest(c, httperr.CodeEmailTaken, "Endereço de e-mail já registrado.")
		case httperr.CodeUserNotFound:
			httperr.NotFound(c, httperr.CodeUserNotFound, "Usuário não encontrado.")
		default:
			httperr.Internal(c, "update_failed", "Erro ao atualizar perfil.")
		}
		return
	}

	httpresp.OK(c, userPayload(user))
}

func (h *UserHandler) UpdatePassword(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	err := h.passwordUC.Execute(c.Request.Context(), ucUser.UpdatePasswordInput{
		UserID:      userID,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		switch httperr.BusinessCode(err) {
		case httperr.CodeInvalidPassword:
			httperr.BadRequest(c, httperr.CodeInvalidPassword, "A senha atual esta incorreta")
		case httperr.CodeUserNotFound:
			httperr.NotFound(c, httperr.CodeUserNotFound, "Usuário não encontrado.")
		default:
			httperr.Internal(c, "update_failed", "Erro ao atualizar senha.")
		}
		return
	}

	httpresp.NoContent(c)
}

func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uuid.UUID)

	file, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Arquivo de avatar ausente.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "avatar_read_failed", "Erro ao ler arquivo.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "avatar_read_failed", "Erro ao ler arquivo.")
		return
	}

	url, err := h.avatars.Upload(c.Request.Context(), data)
	if err != nil {
		httperr.Internal(c, "avatar_upload_failed", "Erro ao enviar avatar.")
		return
	}

	user, err := h.users.FindByID(c.Request.Context(), userID)
	if err != nil || user == nil {
		httperr.NotFound(c, httperr.CodeUserNotFound, "Usuário não encontrado.")
		return
	}

	user.Avatar = url
	if err := h.users.Update(c.Request.Context(), user); err != nil {
		httperr.Internal(c, "update_failed", "Erro ao atualizar perfil.")
		return
	}

	// mesmo sweep do update de perfil: o avatar aparece nos caches
	h.invalidator.Execute(c.Request.Context(), user)

	httpresp.OK(c, userPayload(user))
}
