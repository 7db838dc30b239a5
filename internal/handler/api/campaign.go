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

type CampaignHandler struct {
	campaignCommands commands.CampaignCommands
	campaignQueries  queries.CampaignQueries
}

func NewCampaignHandler(campaignCommands commands.CampaignCommands, campaignQueries queries.CampaignQueries) *CampaignHandler {
	return &CampaignHandler{
		campaignCommands: campaignCommands,
		campaignQueries:  campaignQueries,
	}
}

// @Summary List campaigns
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CampaignResponse
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	views, err := h.campaignQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignViews(views))
}

// @Summary Get a campaign
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [get]
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	view, err := h.campaignQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Create a campaign
// @Tags campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCampaignRequest true "Campaign data"
// @Success 201 {object} resdto.CampaignResponse
// @Failure 400 {object} map[string]string
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	var req reqdto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.campaignCommands.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCampaign):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid campaign data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCampaignView(view))
}

// @Summary Update a campaign
// @Tags campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Campaign ID"
// @Param request body reqdto.UpdateCampaignRequest true "Campaign data"
// @Success 200 {object} resdto.CampaignResponse
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [put]
func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	var req reqdto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.campaignCommands.Update(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
			})
		case errors.Is(err, commands.ErrInvalidCampaign):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid campaign data",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromCampaignView(view))
}

// @Summary Delete a campaign
// @Description Tokens already issued for the campaign stay in the store; verifying them fails cleanly
// @Tags campaigns
// @Security BearerAuth
// @Param id path string true "Campaign ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /campaigns/{id} [delete]
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid campaign ID",
		})
		return
	}

	if err := h.campaignCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrCampaignNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Campaign not found",
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
