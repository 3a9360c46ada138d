package api

import (
	"net/http"

	"decor-rental/internal/domain/content"
	reqdto "decor-rental/internal/handler/dto/request"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SiteHandler struct {
	commands commands.SiteCommands
	queries  queries.SiteQueries
}

func NewSiteHandler(cmd commands.SiteCommands, q queries.SiteQueries) *SiteHandler {
	return &SiteHandler{commands: cmd, queries: q}
}

// @Summary Get site content
// @Tags site
// @Produce json
// @Success 200 {object} content.SiteContent
// @Router /content [get]
func (h *SiteHandler) Content(c *gin.Context) {
	sc, err := h.queries.Content(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// @Summary Replace site content
// @Tags site
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body content.SiteContent true "Content"
// @Success 200 {object} content.SiteContent
// @Router /content [put]
func (h *SiteHandler) ReplaceContent(c *gin.Context) {
	var req content.SiteContent
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	sc, err := h.commands.ReplaceContent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

// @Summary Get settings
// @Tags site
// @Produce json
// @Success 200 {object} settings.Settings
// @Router /settings [get]
func (h *SiteHandler) Settings(c *gin.Context) {
	s, err := h.queries.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// @Summary Replace settings
// @Tags site
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.SettingsRequest true "Settings"
// @Success 200 {object} settings.Settings
// @Failure 400 {object} httperr.Response
// @Router /settings [put]
func (h *SiteHandler) ReplaceSettings(c *gin.Context) {
	var req reqdto.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	s, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.ReplaceSettings(c.Request.Context(), s)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
