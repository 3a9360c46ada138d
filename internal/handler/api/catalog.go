package api

import (
	"net/http"
	"strconv"

	reqdto "decor-rental/internal/handler/dto/request"
	resdto "decor-rental/internal/handler/dto/response"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PackageHandler struct {
	commands commands.PackageCommands
	queries  queries.PackageQueries
}

func NewPackageHandler(cmd commands.PackageCommands, q queries.PackageQueries) *PackageHandler {
	return &PackageHandler{commands: cmd, queries: q}
}

// @Summary List packages
// @Tags packages
// @Produce json
// @Param featuredFirst query bool false "Order featured packages first"
// @Success 200 {object} resdto.ListResponse[catalog.Package]
// @Router /packages [get]
func (h *PackageHandler) List(c *gin.Context) {
	featuredFirst, _ := strconv.ParseBool(c.Query("featuredFirst"))
	list, err := h.queries.List(c.Request.Context(), featuredFirst)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(list))
}

// @Summary Get package
// @Tags packages
// @Produce json
// @Param id path string true "Package ID"
// @Success 200 {object} catalog.Package
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [get]
func (h *PackageHandler) Get(c *gin.Context) {
	p, err := h.queries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary Create package
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.PackageRequest true "Package"
// @Success 201 {object} catalog.Package
// @Failure 400 {object} httperr.Response
// @Router /packages [post]
func (h *PackageHandler) Create(c *gin.Context) {
	var req reqdto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Replace package
// @Tags packages
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Package ID"
// @Param request body reqdto.PackageRequest true "Package"
// @Success 200 {object} catalog.Package
// @Failure 404 {object} httperr.Response
// @Router /packages/{id} [put]
func (h *PackageHandler) Update(c *gin.Context) {
	var req reqdto.PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.Update(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete package
// @Tags packages
// @Security BearerAuth
// @Param id path string true "Package ID"
// @Success 204 "No Content"
// @Router /packages/{id} [delete]
func (h *PackageHandler) Delete(c *gin.Context) {
	if err := h.commands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
