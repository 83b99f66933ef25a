package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wedding/guesthub/internal/model"
	"wedding/guesthub/internal/service"
	"wedding/guesthub/pkg/response"
)

const (
	CheckInActionValidate = "validate"
	CheckInActionCommit   = "checkin"
)

type CheckInHandler struct {
	checkInService service.CheckInService
	logger         *zap.Logger
}

func NewCheckInHandler(checkInService service.CheckInService, logger *zap.Logger) *CheckInHandler {
	return &CheckInHandler{checkInService: checkInService, logger: logger}
}

type CheckInRequest struct {
	Action       string `json:"action" binding:"required"`
	QRCodeString string `json:"qrCodeString"`
	GuestID      uint   `json:"guestId"`
	GiftType     string `json:"giftType"`
}

type ValidateResponse struct {
	Guest *service.GuestSummary `json:"guest"`
}

type CommitResponse struct {
	Success          bool         `json:"success"`
	Message          string       `json:"message"`
	Guest            *model.Guest `json:"guest"`
	AlreadyCheckedIn bool         `json:"alreadyCheckedIn"`
}

// Handle serves both scanner steps: validate a code, then commit the guest.
func (h *CheckInHandler) Handle(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request: "+err.Error())
		return
	}

	switch req.Action {
	case CheckInActionValidate:
		summary, err := h.checkInService.Validate(c.Request.Context(), req.QRCodeString)
		if err != nil {
			respondError(c, h.logger, err, "failed to validate code")
			return
		}
		response.Success(c, ValidateResponse{Guest: summary})

	case CheckInActionCommit:
		result, err := h.checkInService.Commit(c.Request.Context(), req.GuestID, req.GiftType)
		if err != nil {
			respondError(c, h.logger, err, "failed to check in guest")
			return
		}
		msg := "guest checked in"
		if result.AlreadyCheckedIn {
			msg = "guest was already checked in"
		}
		response.Success(c, CommitResponse{
			Success:          true,
			Message:          msg,
			Guest:            result.Guest,
			AlreadyCheckedIn: result.AlreadyCheckedIn,
		})

	default:
		response.BadRequest(c, "invalid action")
	}
}
