package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/photocards-api/internal/application"
	"github.com/oksasatya/photocards-api/internal/interface/middleware"
	"github.com/oksasatya/photocards-api/pkg/apperr"
	"github.com/oksasatya/photocards-api/pkg/response"
	"github.com/oksasatya/photocards-api/pkg/validation"
)

type CardHandler struct {
	Svc    *application.CardService
	Logger *logrus.Logger
}

func NewCardHandler(svc *application.CardService, logger *logrus.Logger) *CardHandler {
	return &CardHandler{Svc: svc, Logger: logger}
}

type createCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,url"`
}

// GetCards GET /cards
func (h *CardHandler) GetCards(c *gin.Context) {
	cards, err := h.Svc.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, cards)
}

// CreateCard POST /cards
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if h.Logger != nil {
			h.Logger.WithField("details", validation.ToDetails(err)).Debug("binding failed")
		}
		response.Fail(c, apperr.BadRequest("illegal request parameters"))
		return
	}
	card, err := h.Svc.Create(c.Request.Context(), middleware.CallerID(c), req.Name, req.Link)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusCreated, card)
}

// DeleteCard DELETE /cards/:cardId
// Only the card's owner may delete it; the service runs the ownership check.
func (h *CardHandler) DeleteCard(c *gin.Context) {
	card, err := h.Svc.Delete(c.Request.Context(), c.Param("cardId"), middleware.CallerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, card)
}

// LikeCard PUT /cards/:cardId/likes
func (h *CardHandler) LikeCard(c *gin.Context) {
	card, err := h.Svc.Like(c.Request.Context(), c.Param("cardId"), middleware.CallerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, card)
}

// DislikeCard DELETE /cards/:cardId/likes
func (h *CardHandler) DislikeCard(c *gin.Context) {
	card, err := h.Svc.Dislike(c.Request.Context(), c.Param("cardId"), middleware.CallerID(c))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Data(c, http.StatusOK, card)
}
