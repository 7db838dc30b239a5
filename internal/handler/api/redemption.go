package api

import (
	"errors"
	"net/http"

	resdto "membership-portal/internal/handler/dto/response"
	"membership-portal/internal/handler/middleware"
	"membership-portal/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RedemptionHandler struct {
	redemptionCommands commands.RedemptionCommands
}

func NewRedemptionHandler(redemptionCommands commands.RedemptionCommands) *RedemptionHandler {
	return &RedemptionHandler{
		redemptionCommands: redemptionCommands,
	}
}

// @Summary Generate a redemption QR token
// @Description Issue a single-use 15-minute token for a campaign. Requires all past dues to be paid.
// @Tags redemption
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.GenerateQRResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /campaigns/{id}/generate-qr [post]
func (h *RedemptionHandler) GenerateQR(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Member not authenticated",
		})
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	issued, err := h.redemptionCommands.IssueToken(c.Request.Context(), memberID, campaignID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuesNotCurrent):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Membership dues are not current",
			})
		case errors.Is(err, commands.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		case errors.Is(err, commands.ErrCampaignExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Campaign has expired",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromIssuedToken(issued))
}

// @Summary Verify and consume a redemption QR token
// @Description Always returns 200 with a structured verdict. Consuming is atomic: a token verifies successfully exactly once.
// @Tags redemption
// @Produce json
// @Param qr_token path string true "Scanned token"
// @Success 200 {object} resdto.VerifyQRResponse
// @Router /verify-qr/{qr_token} [get]
func (h *RedemptionHandler) VerifyQR(c *gin.Context) {
	result, err := h.redemptionCommands.Redeem(c.Request.Context(), c.Param("qr_token"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromVerificationResult(result))
}
