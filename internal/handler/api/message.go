package api

import (
	"net/http"

	reqdto "decor-rental/internal/handler/dto/request"
	resdto "decor-rental/internal/handler/dto/response"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	commands commands.MessageCommands
	queries  queries.MessageQueries
}

func NewMessageHandler(cmd commands.MessageCommands, q queries.MessageQueries) *MessageHandler {
	return &MessageHandler{commands: cmd, queries: q}
}

// @Summary Send contact message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body reqdto.MessageRequest true "Message"
// @Success 201 {object} message.Message
// @Failure 400 {object} httperr.Response
// @Router /messages [post]
func (h *MessageHandler) Submit(c *gin.Context) {
	var req reqdto.MessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	m, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.Submit(c.Request.Context(), m)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary List messages
// @Description Newest first, with the unread count.
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.MessageList
// @Router /messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	list, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Mark message read
// @Description Idempotent.
// @Tags messages
// @Security BearerAuth
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} message.Message
// @Failure 404 {object} httperr.Response
// @Router /messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	m, err := h.commands.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// @Summary Delete message
// @Tags messages
// @Security BearerAuth
// @Param id path string true "Message ID"
// @Success 204 "No Content"
// @Router /messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	if err := h.commands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type TestimonialHandler struct {
	commands commands.TestimonialCommands
	queries  queries.TestimonialQueries
}

func NewTestimonialHandler(cmd commands.TestimonialCommands, q queries.TestimonialQueries) *TestimonialHandler {
	return &TestimonialHandler{commands: cmd, queries: q}
}

// @Summary List testimonials
// @Tags testimonials
// @Produce json
// @Success 200 {object} resdto.ListResponse[testimonial.Testimonial]
// @Router /testimonials [get]
func (h *TestimonialHandler) List(c *gin.Context) {
	list, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(list))
}

// @Summary Create testimonial
// @Tags testimonials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.TestimonialRequest true "Testimonial"
// @Success 201 {object} testimonial.Testimonial
// @Router /testimonials [post]
func (h *TestimonialHandler) Create(c *gin.Context) {
	var req reqdto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.Create(c.Request.Context(), t)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary Replace testimonial
// @Tags testimonials
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Testimonial ID"
// @Param request body reqdto.TestimonialRequest true "Testimonial"
// @Success 200 {object} testimonial.Testimonial
// @Router /testimonials/{id} [put]
func (h *TestimonialHandler) Update(c *gin.Context) {
	var req reqdto.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	t, err := req.ToDomain()
	if err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.Update(c.Request.Context(), c.Param("id"), t)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary Delete testimonial
// @Tags testimonials
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 204 "No Content"
// @Router /testimonials/{id} [delete]
func (h *TestimonialHandler) Delete(c *gin.Context) {
	if err := h.commands.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
