package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/handler/middleware"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

type WishHandler struct {
	wishService service.WishService
	logger      *zap.Logger
}

func NewWishHandler(wishService service.WishService, logger *zap.Logger) *WishHandler {
	return &WishHandler{wishService: wishService, logger: logger}
}

type SubmitWishRequest struct {
	Name    string `json:"name" binding:"required"`
	Message string `json:"message" binding:"required"`
}

type SubmitWishResponse struct {
	Success bool                   `json:"success"`
	Message string                 `json:"message"`
	Wish    *service.SubmittedWish `json:"wish"`
}

type ApprovalRequest struct {
	IsApproved *bool `json:"isApproved" binding:"required"`
}

type ApproveAllResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

// List returns approved wishes. ?all=true includes unapproved ones and
// requires an admin token.
func (h *WishHandler) List(c *gin.Context) {
	all := c.Query("all") == "true"
	if all {
		if _, ok := middleware.AdminClaims(c); !ok {
			response.Unauthorized(c, "admin authentication required")
			return
		}
	}
	wishes, err := h.wishService.List(c.Request.Context(), all)
	if err != nil {
		respondError(c, h.logger, err, "failed to list wishes")
		return
	}
	response.Success(c, wishes)
}

func (h *WishHandler) Submit(c *gin.Context) {
	var req SubmitWishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and message are required")
		return
	}
	wish, err := h.wishService.Submit(c.Request.Context(), req.Name, req.Message)
	if err != nil {
		respondError(c, h.logger, err, "failed to submit wish")
		return
	}
	response.Created(c, SubmitWishResponse{
		Success: true,
		Message: "wish received and awaiting approval",
		Wish:    wish,
	})
}

func (h *WishHandler) SetApproval(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "isApproved is required")
		return
	}
	wish, err := h.wishService.SetApproval(c.Request.Context(), id, *req.IsApproved)
	if err != nil {
		respondError(c, h.logger, err, "failed to update wish")
		return
	}
	response.Success(c, wish)
}

func (h *WishHandler) ApproveAll(c *gin.Context) {
	n, err := h.wishService.ApproveAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "failed to approve wishes")
		return
	}
	response.Success(c, ApproveAllResponse{
		Success: true,
		Message: "all pending wishes approved",
		Count:   n,
	})
}

func (h *WishHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.wishService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err, "failed to delete wish")
		return
	}
	response.Success(c, SuccessResponse{Success: true})
}
