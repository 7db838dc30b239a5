package api

import (
	"context"
	"errors"
	"net/http"

	"membership-portal/internal/domain/member"
	resdto "membership-portal/internal/handler/dto/response"
	"membership-portal/internal/handler/middleware"
	"membership-portal/internal/usecase/commands"
	"membership-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DuesHandler struct {
	duesCommands commands.DuesCommands
	duesQueries  queries.DuesQueries
}

func NewDuesHandler(duesCommands commands.DuesCommands, duesQueries queries.DuesQueries) *DuesHandler {
	return &DuesHandler{
		duesCommands: duesCommands,
		duesQueries:  duesQueries,
	}
}

// @Summary List own dues ledger
// @Description List the authenticated member's dues records in academic-year order
// @Tags dues
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DuesRecordResponse
// @Failure 401 {object} map[string]string
// @Router /dues [get]
func (h *DuesHandler) ListOwn(c *gin.Context) {
	memberID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Member not authenticated",
		})
		return
	}

	views, err := h.duesQueries.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDuesRecordViews(views))
}

// @Summary List a member's dues ledger
// @Description Members may read their own ledger; reading another member's requires admin
// @Tags dues
// @Security BearerAuth
// @Produce json
// @Param id path string true "Member ID"
// @Success 200 {array} resdto.DuesRecordResponse
// @Failure 403 {object} map[string]string
// @Router /dues/{id} [get]
func (h *DuesHandler) ListByMember(c *gin.Context) {
	memberID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID",
		})
		return
	}

	requesterID, ok := middleware.GetMemberID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Member not authenticated",
		})
		return
	}
	role, _ := middleware.GetMemberRole(c)
	if requesterID != memberID && role != member.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Insufficient permissions",
		})
		return
	}

	views, err := h.duesQueries.ListByMember(c.Request.Context(), memberID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDuesRecordViews(views))
}

// @Summary List all dues records
// @Tags dues
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.DuesRecordResponse
// @Router /dues/all [get]
func (h *DuesHandler) ListAll(c *gin.Context) {
	views, err := h.duesQueries.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromDuesRecordViews(views))
}

// @Summary Mark a dues record paid
// @Description Idempotent: an already-paid record keeps its original payment date
// @Tags dues
// @Security BearerAuth
// @Produce json
// @Param id path string true "Dues record ID"
// @Success 200 {object} resdto.DuesRecordResponse
// @Failure 404 {object} map[string]string
// @Router /dues/{id}/pay [put]
func (h *DuesHandler) Pay(c *gin.Context) {
	h.setPaidState(c, h.duesCommands.MarkPaid)
}

// @Summary Mark a dues record unpaid
// @Description Administrative reversal of a mistaken payment entry
// @Tags dues
// @Security BearerAuth
// @Produce json
// @Param id path string true "Dues record ID"
// @Success 200 {object} resdto.DuesRecordResponse
// @Failure 404 {object} map[string]string
// @Router /dues/{id}/unpay [put]
func (h *DuesHandler) Unpay(c *gin.Context) {
	h.setPaidState(c, h.duesCommands.MarkUnpaid)
}

func (h *DuesHandler) setPaidState(c *gin.Context, op func(ctx context.Context, id uuid.UUID) (*queries.DuesRecordView, error)) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid dues record ID",
		})
		return
	}

	view, err := op(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuesRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Dues record not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromDuesRecordView(view))
}
