package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards-api/internal/container"
	handlers "github.com/oksasatya/photocards-api/internal/interface/http"
	"github.com/oksasatya/photocards-api/internal/interface/middleware"
	"github.com/oksasatya/photocards-api/pkg/helpers"
)

// UserModule wires user HTTP handlers and auth middleware into routes.
// Public: POST /signup, POST /signin — the only unauthenticated entry points.
// Protected: GET /users, GET /users/me, GET /users/:userId,
// PATCH /users/me, PATCH /users/me/avatar.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	// Public with per-IP rate limiting
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Register)
	rg.POST("/signin", signinLimiter, m.Handler.Login)

	// Protected
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("", m.Handler.GetUsers)
		auth.GET("/me", m.Handler.GetMe)
		auth.PATCH("/me", m.Handler.UpdateProfile)
		auth.PATCH("/me/avatar", m.Handler.UpdateAvatar)
		auth.GET("/:userId", m.Handler.GetUser)
	}
}
