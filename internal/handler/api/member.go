package api

import (
	"errors"
	"net/http"

	reqdto "membership-portal/internal/handler/dto/request"
	resdto "membership-portal/internal/handler/dto/response"
	"membership-portal/internal/usecase/commands"
	"membership-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MemberHandler struct {
	memberCommands commands.MemberCommands
	memberQueries  queries.MemberQueries
}

func NewMemberHandler(memberCommands commands.MemberCommands, memberQueries queries.MemberQueries) *MemberHandler {
	return &MemberHandler{
		memberCommands: memberCommands,
		memberQueries:  memberQueries,
	}
}

// @Summary Create a member
// @Description Register a member together with their academic-year dues ledger
// @Tags members
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMemberRequest true "Member data"
// @Success 201 {object} resdto.MemberResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	var req reqdto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.memberCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Username already registered",
			})
		case errors.Is(err, commands.ErrInvalidMember):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid member data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMemberView(view))
}

// @Summary Approve a member
// @Description Approve a pending membership application
// @Tags members
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /members/{id}/approve [put]
func (h *MemberHandler) Approve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID",
		})
		return
	}

	if err := h.memberCommands.Approve(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get a member
// @Tags members
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Produce json
// @Success 200 {object} resdto.MemberResponse
// @Failure 404 {object} map[string]string
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid member ID",
		})
		return
	}

	view, err := h.memberQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrMemberNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Member not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMemberView(view))
}

// @Summary List approved members
// @Tags members
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Router /members [get]
func (h *MemberHandler) ListApproved(c *gin.Context) {
	views, err := h.memberQueries.ListApproved(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberViews(views))
}

// @Summary List pending members
// @Tags members
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.MemberResponse
// @Router /members/pending [get]
func (h *MemberHandler) ListPending(c *gin.Context) {
	views, err := h.memberQueries.ListPending(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromMemberViews(views))
}
