package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"gobarber-api/internal/cache"
	"gobarber-api/internal/config"
	domain "gobarber-api/internal/domain/user"
	"gobarber-api/internal/httperr"
	"gobarber-api/internal/models"
	"gobarber-api/internal/validators"
)

type AuthHandler struct {
	users  domain.Repository
	cache  *cache.Cache
	config *config.Config
}

func NewAuthHandler(users domain.Repository, c *cache.Cache, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, cache: c, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "user_lookup_failed", "Erro ao consultar usuário.")
		return
	}
	if existing != nil {
		httperr.BadRequest(c, "email_taken", "Endereço de e-mail já registrado.")
		return
	}

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao registrar usuário.")
		return
	}

	user := models.User{
		Name:         req.Name,
		Surname:      req.Surname,
		Email:        email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if addr := strings.TrimSpace(req.Address); addr != "" {
		user.Address = &addr
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		// corrida entre dois registros simultâneos do mesmo e-mail
		if httperr.BusinessCode(err) == httperr.CodeEmailTaken {
			httperr.BadRequest(c, httperr.CodeEmailTaken, "Endereço de e-mail já registrado.")
			return
		}
		httperr.Internal(c, "failed_to_create_user", "Erro ao registrar usuário.")
		return
	}

	// o diretório de prestadores pode ter ganhado uma entrada
	h.cache.DeletePrefix(c.Request.Context(), cache.ProvidersListPrefix)

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if err != nil {
		httperr.Internal(c, "user_lookup_failed", "Erro ao consultar usuário.")
		return
	}
	if user == nil || !user.IsActive {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

// --------- Helpers ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub": user.ID.String(),
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":        user.ID,
		"name":      user.Name,
		"surname":   user.Surname,
		"email":     user.Email,
		"address":   user.Address,
		"avatar":    user.Avatar,
		"is_active": user.IsActive,
	}
}
