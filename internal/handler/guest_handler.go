package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/repository"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type GuestHandler struct {
	guestService service.GuestService
	logger       *zap.Logger
}

func NewGuestHandler(guestService service.GuestService, logger *zap.Logger) *GuestHandler {
	return &GuestHandler{guestService: guestService, logger: logger}
}

type CreateGuestRequest struct {
	Name        string  `json:"name" binding:"required"`
	PhoneNumber *string `json:"phoneNumber"`
	Category    string  `json:"category"`
}

type UpdateGuestRequest struct {
	Name        *string `json:"name"`
	PhoneNumber *string `json:"phoneNumber"`
	Category    *string `json:"category"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// List supports ?category=, ?rsvpStatus=, ?checkedIn=true|false and ?q=.
func (h *GuestHandler) List(c *gin.Context) {
	filter := repository.GuestFilter{
		Category:   model.GuestCategory(c.Query("category")),
		RSVPStatus: model.RSVPStatus(c.Query("rsvpStatus")),
		Query:      c.Query("q"),
	}
	if v := c.Query("checkedIn"); v != "" {
		checkedIn, err := strconv.ParseBool(v)
		if err != nil {
			response.BadRequest(c, "checkedIn must be true or false")
			return
		}
		filter.CheckedIn = &checkedIn
	}

	guests, err := h.guestService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, h.logger, err, "failed to list guests")
		return
	}
	response.Success(c, guests)
}

func (h *GuestHandler) Create(c *gin.Context) {
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	guest, err := h.guestService.Create(c.Request.Context(), service.GuestInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		Category:    model.GuestCategory(req.Category),
	})
	if err != nil {
		respondError(c, h.logger, err, "failed to create guest")
		return
	}
	response.Created(c, guest)
}

func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	guest, err := h.guestService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "failed to fetch guest")
		return
	}
	response.Success(c, guest)
}

func (h *GuestHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	patch := service.GuestPatch{Name: req.Name, PhoneNumber: req.PhoneNumber}
	if req.Category != nil {
		category := model.GuestCategory(*req.Category)
		patch.Category = &category
	}
	guest, err := h.guestService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, h.logger, err, "failed to update guest")
		return
	}
	response.Success(c, guest)
}

func (h *GuestHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.guestService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "failed to delete guest")
		return
	}
	response.Success(c, SuccessResponse{Success: true})
}

func (h *GuestHandler) Stats(c *gin.Context) {
	stats, err := h.guestService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed to load stats")
		return
	}
	response.Success(c, stats)
}

// ExportCSV streams the guest list, optionally restricted with ?ids=1,2,3.
func (h *GuestHandler) ExportCSV(c *gin.Context) {
	ids, err := parseIDList(c.Query("ids"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := h.guestService.ExportCSV(c.Request.Context(), &buf, ids); err != nil {
		respondError(c, h.logger, err, "failed to export guests")
		return
	}
	filename := fmt.Sprintf("guests-%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// QRCode renders the guest's check-in QR as PNG; ?size= sets the edge in pixels.
func (h *GuestHandler) QRCode(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	size := 0
	if v := c.Query("size"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(c, "size must be an integer")
			return
		}
		size = n
	}

	png, guest, err := h.guestService.QRCodePNG(c.Request.Context(), id, size)
	if err != nil {
		respondError(c, h.logger, err, "failed to render qr code")
		return
	}
	if c.Query("download") == "true" {
		c.Header("Content-Disposition", `attachment; filename="qr-`+guest.Slug+`.png"`)
	}
	c.Data(http.StatusOK, "image/png", png)
}

func (h *GuestHandler) Share(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	info, err := h.guestService.Share(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err, "failed to build share message")
		return
	}
	response.Success(c, info)
}
