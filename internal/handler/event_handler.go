package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type EventHandler struct {
	eventService service.EventService
	logger       *zap.Logger
}

func NewEventHandler(eventService service.EventService, logger *zap.Logger) *EventHandler {
	return &EventHandler{eventService: eventService, logger: logger}
}

type EventSettingsRequest struct {
	Partner1Name  string    `json:"partner1Name" binding:"required"`
	Partner2Name  string    `json:"partner2Name" binding:"required"`
	Tagline       string    `json:"tagline"`
	EventDate     time.Time `json:"eventDate" binding:"required"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	VenueName     string    `json:"venueName"`
	VenueAddress  string    `json:"venueAddress"`
	MapLinkURL    string    `json:"mapLinkUrl"`
	WATemplateMsg string    `json:"waTemplateMsg"`
}

func (h *EventHandler) Get(c *gin.Context) {
	settings, err := h.eventService.Get(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed to load event settings")
		return
	}
	response.Success(c, settings)
}

func (h *EventHandler) Update(c *gin.Context) {
	var req EventSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}
	settings, err := h.eventService.Upsert(c.Request.Context(), &model.EventSettings{
		Partner1Name:  req.Partner1Name,
		Partner2Name:  req.Partner2Name,
		Tagline:       req.Tagline,
		EventDate:     req.EventDate,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		VenueName:     req.VenueName,
		VenueAddress:  req.VenueAddress,
		MapLinkURL:    req.MapLinkURL,
		WATemplateMsg: req.WATemplateMsg,
	})
	if err != nil {
		respondError(c, h.logger, err, "failed to save event settings")
		return
	}
	response.Success(c, settings)
}
