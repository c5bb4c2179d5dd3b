package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/agenda-hub/internal/usecase/auth"
)

type AuthHandler struct {
	register   *auth.Register
	login      *auth.Login
	logout     *auth.Logout
	getMe      *auth.GetMe
	createUser *auth.CreateUser
	log        logrus.FieldLogger
}

func NewAuthHandler(
	register *auth.Register,
	login *auth.Login,
	logout *auth.Logout,
	getMe *auth.GetMe,
	createUser *auth.CreateUser,
	log logrus.FieldLogger,
) *AuthHandler {
	return &AuthHandler{
		register:   register,
		login:      login,
		logout:     logout,
		getMe:      getMe,
		createUser: createUser,
		log:        log,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateUserRequest struct {
	RegisterRequest
	IsAdmin bool `json:"is_admin"`
}

func (r RegisterRequest) input() auth.RegisterInput {
	return auth.RegisterInput{
		Email:    r.Email,
		Password: r.Password,
		FullName: r.FullName,
		Phone:    r.Phone,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.register.Execute(c.Request.Context(), req.input())
	if err != nil {
		respondError(c, h.log, err, "failed_to_register", "No se pudo crear la cuenta.")
		return
	}

	c.JSON(http.StatusCreated, out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.log, err, "failed_to_login", "No se pudo iniciar sesión.")
		return
	}

	c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), sessionFrom(c)); err != nil {
		respondError(c, h.log, err, "failed_to_logout", "No se pudo cerrar la sesión.")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AuthHandler) Me(c *gin.Context) {
	out, err := h.getMe.Execute(c.Request.Context(), sessionFrom(c))
	if err != nil {
		respondError(c, h.log, err, "failed_to_get_profile", "Error al cargar el perfil.")
		return
	}

	c.JSON(http.StatusOK, out)
}

// CreateUser is the admin-only registration behind /admin/register.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c)
		return
	}

	out, err := h.createUser.Execute(c.Request.Context(), sessionFrom(c), req.input(), req.IsAdmin)
	if err != nil {
		respondError(c, h.log, err, "failed_to_create_user", "No se pudo registrar el usuario.")
		return
	}

	c.JSON(http.StatusCreated, out)
}
