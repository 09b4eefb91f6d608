package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards-api/internal/application"
	"github.com/oksasatya/photocards-api/internal/interface/middleware"
	"github.com/oksasatya/photocards-api/pkg/apperr"
	"github.com/oksasatya/photocards-api/pkg/helpers"
	"github.com/oksasatya/photocards-api/pkg/response"
	"github.com/oksasatya/photocards-api/pkg/validation"
)

type UserHandler struct {
	Svc     *application.UserService
	Logger  *logrus.Logger
	Cookies *helpers.Manager
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Name     string `json:"name" binding:"omitempty,min=2,max=30"`
	About    string `json:"about" binding:"omitempty,min=2,max=200"`
	Avatar   string `json:"avatar" binding:"omitempty,url"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type updateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=30"`
	About string `json:"about" binding:"omitempty,min=2,max=200"`
}

type updateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url"`
}

// Register POST /signup
func (h *UserHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logBinding("register", err)
		response.Fail(c, apperr.BadRequest("illegal request parameters"))
		return
	}
	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		About:     req.About,
		AvatarURL: req.Avatar,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusCreated, u)
}

// Login POST /signin
func (h *UserHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logBinding("login", err)
		response.Fail(c, apperr.BadRequest("illegal request parameters"))
		return
	}
	u, token, exp, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.Fail(c, err)
		return
	}
	h.Cookies.SetToken(c, token, exp)
	response.Data(c, http.StatusOK, gin.H{"token": token, "user": u})
}

// GetUsers GET /users
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, users)
}

// GetMe GET /users/me
func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, u)
}

// GetUser GET /users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	u, err := h.Svc.GetUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, u)
}

// UpdateProfile PATCH /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logBinding("update profile", err)
		response.Fail(c, apperr.BadRequest("illegal request parameters"))
		return
	}
	u, err := h.Svc.UpdateProfile(c.Request.Context(), middleware.CallerID(c), application.UpdateProfileInput{
		Name:  req.Name,
		About: req.About,
	})
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, u)
}

// UpdateAvatar PATCH /users/me/avatar
func (h *UserHandler) UpdateAvatar(c *gin.Context) {
	var req updateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logBinding("update avatar", err)
		response.Fail(c, apperr.BadRequest("illegal request parameters"))
		return
	}
	u, err := h.Svc.UpdateAvatar(c.Request.Context(), middleware.CallerID(c), req.Avatar)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, u)
}

func (h *UserHandler) logBinding(op string, err error) {
	if h.Logger == nil {
		return
	}
	h.Logger.WithFields(logrus.Fields{"op": op, "details": validation.ToDetails(err)}).Debug("binding failed")
}
