package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type RSVPHandler struct {
	rsvpService service.RSVPService
	logger      *zap.Logger
}

func NewRSVPHandler(rsvpService service.RSVPService, logger *zap.Logger) *RSVPHandler {
	return &RSVPHandler{rsvpService: rsvpService, logger: logger}
}

type RSVPRequest struct {
	Slug        string  `json:"slug"`
	Name        string  `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	RSVPStatus  string  `json:"rsvpStatus" binding:"required"`
	GuestCount  *int    `json:"guestCount"`
}

type RSVPResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Guest   service.PublicGuest `json:"guest"`
}

func (h *RSVPHandler) Submit(c *gin.Context) {
	var req RSVPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	res, err := h.rsvpService.Submit(c.Request.Context(), service.RSVPInput{
		Slug:        req.Slug,
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		RSVPStatus:  model.RSVPStatus(req.RSVPStatus),
		GuestCount:  req.GuestCount,
	})
	if err != nil {
		respondError(c, h.logger, err, "failed to save rsvp")
		return
	}

	response.Success(c, RSVPResponse{
		Success: true,
		Message: "rsvp saved",
		Guest:   res.Guest,
	})
}

// Invitation serves the personalized invitation page data for a slug.
func (h *RSVPHandler) Invitation(c *gin.Context) {
	inv, err := h.rsvpService.Invitation(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, h.logger, err, "failed to load invitation")
		return
	}
	response.Success(c, inv)
}
