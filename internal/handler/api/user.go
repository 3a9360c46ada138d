package api

import (
	"net/http"

	reqdto "decor-rental/internal/handler/dto/request"
	resdto "decor-rental/internal/handler/dto/response"
	"decor-rental/internal/handler/httperr"
	"decor-rental/internal/handler/middleware"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	commands commands.UserCommands
	queries  queries.UserQueries
}

func NewUserHandler(cmd commands.UserCommands, q queries.UserQueries) *UserHandler {
	return &UserHandler{commands: cmd, queries: q}
}

// @Summary List users
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.ListResponse[queries.UserView]
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	list, err := h.queries.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.NewListResponse(list))
}

// @Summary Create user
// @Description Nobody can grant a role above their own.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	actorRole, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing role in context"), "User not authenticated", nil)
		return
	}

	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.commands.Create(c.Request.Context(), req.ToInput(), actorRole)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, queries.NewUserView(*u))
}

// @Summary Update user
// @Description Omitted fields are left unchanged. Setting a password forces a change on next login.
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body reqdto.UpdateUserRequest true "Changes"
// @Success 200 {object} queries.UserView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	actorRole, ok := middleware.GetUserRole(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing role in context"), "User not authenticated", nil)
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	u, err := h.commands.Update(c.Request.Context(), c.Param("id"), req.ToInput(), actorRole)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, queries.NewUserView(*u))
}

// @Summary Delete user
// @Description The last Super Admin, the caller's own account and accounts ranked above the caller cannot be deleted.
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	session, ok := middleware.GetSession(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing session in context"), "User not authenticated", nil)
		return
	}

	if err := h.commands.Delete(c.Request.Context(), c.Param("id"), session.UserID, session.Role); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
