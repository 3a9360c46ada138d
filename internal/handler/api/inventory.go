package api

import (
	"net/http"

	"decor-rental/internal/domain/inventory"
	reqdto "decor-rental/internal/handler/dto/request"
	resdto "decor-rental/internal/handler/dto/response"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	commands commands.InventoryCommands
	queries  queries.InventoryQueries
}

func NewInventoryHandler(cmd commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{commands: cmd, queries: q}
}

// @Summary List inventory
// @Description Public catalog. "Others" selects items outside the standard categories.
// @Tags inventory
// @Produce json
// @Param category query string false "Category filter (All, Others or a standard category)"
// @Success 200 {object} resdto.ListResponse[queries.ItemView]
// @Router /inventory [get]
func (h *InventoryHandler) List(c *gin.Context) {
	items, err := h.queries.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(items))
}

// @Summary List categories
// @Tags inventory
// @Produce json
// @Success 200 {array} string
// @Router /inventory/categories [get]
func (h *InventoryHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, inventory.Categories())
}

// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} queries.ItemView
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [get]
func (h *InventoryHandler) Get(c *gin.Context) {
	item, err := h.queries.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// @Summary Inventory stats
// @Tags inventory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} inventory.Stats
// @Router /inventory/stats [get]
func (h *InventoryHandler) Stats(c *gin.Context) {
	stats, err := h.queries.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// @Summary Create inventory item
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.ItemRequest true "Item"
// @Success 201 {object} inventory.Item
// @Failure 400 {object} httperr.Response
// @Router /inventory [post]
func (h *InventoryHandler) Create(c *gin.Context) {
	var req reqdto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Replace inventory item
// @Tags inventory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body reqdto.ItemRequest true "Item"
// @Success 200 {object} inventory.Item
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [put]
func (h *InventoryHandler) Update(c *gin.Context) {
	var req reqdto.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	item, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.Update(c.Request.Context(), c.Param("id"), item)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete inventory item
// @Tags inventory
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /inventory/{id} [delete]
func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.commands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
