package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/photocards-api/internal/container"
	handlers "github.com/oksasatya/photocards-api/internal/interface/http"
	"github.com/oksasatya/photocards-api/internal/interface/middleware"
	"github.com/oksasatya/photocards-api/pkg/helpers"
)

// CardModule wires card routes. Everything is behind auth; like toggling is
// open to any authenticated caller while deletion is owner-only.
type CardModule struct {
	Handler *handlers.CardHandler
	JWT     *helpers.JWTManager
}

func NewCardModule(h *handlers.CardHandler, jwt *helpers.JWTManager) *CardModule {
	return &CardModule{Handler: h, JWT: jwt}
}

func (m *CardModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/cards")
	auth.Use(middleware.Auth(m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), middleware.AllowPrivateIP()))
	{
		auth.GET("", m.Handler.GetCards)
		auth.POST("", m.Handler.CreateCard)
		auth.DELETE("/:cardId", m.Handler.DeleteCard)
		auth.PUT("/:cardId/likes", m.Handler.LikeCard)
		auth.DELETE("/:cardId/likes", m.Handler.DislikeCard)
	}
}
