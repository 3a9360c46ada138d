package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	resdto "decor-rental/internal/handler/dto/response"
	"decor-rental/internal/handler/httperr"
	"decor-rental/internal/infra/backup"
	"decor-rental/internal/pkg/config"
	"decor-rental/internal/pkg/errs"
	"decor-rental/internal/usecase/commands"
	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const backupFormField = "file"

type BackupHandler struct {
	commands      commands.BackupCommands
	queries       queries.BackupQueries
	maxUploadSize int64
}

func NewBackupHandler(cmd commands.BackupCommands, q queries.BackupQueries, cfg config.Config) *BackupHandler {
	return &BackupHandler{commands: cmd, queries: q, maxUploadSize: cfg.Server.MaxUploadSize}
}

// @Summary Download JSON backup
// @Description Whole dataset as a JSON attachment.
// @Tags backup
// @Security BearerAuth
// @Produce json
// @Success 200 {file} file
// @Router /backup [get]
func (h *BackupHandler) ExportJSON(c *gin.Context) {
	file, err := h.queries.ExportJSON(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, file)
}

// @Summary Download XLSX backup
// @Description Inventory, Bookings and Services sheets. Images are not included.
// @Tags backup
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Router /backup/export [get]
func (h *BackupHandler) ExportXLSX(c *gin.Context) {
	file, err := h.queries.ExportXLSX(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	sendAttachment(c, file)
}

func sendAttachment(c *gin.Context, file *queries.BackupFile) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}

// @Summary Restore backup
// @Description Multipart upload (field "file", .xlsx or .json) or a raw JSON body. Collections present in the file replace the stored ones; the store is untouched when the file is rejected.
// @Tags backup
// @Security BearerAuth
// @Accept mpfd
// @Accept json
// @Produce json
// @Param file formData file false "Backup file"
// @Success 200 {object} resdto.RestoreResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /backup/restore [post]
func (h *BackupHandler) Restore(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	format, body, err := h.openUpload(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No readable backup file in request", err.Error())
		return
	}
	defer body.Close()

	counts, err := h.commands.Restore(c.Request.Context(), format, body)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.RestoreResponse{Message: "Backup restored", Counts: *counts})
}

// openUpload picks the backup payload and its format from either request shape.
func (h *BackupHandler) openUpload(c *gin.Context) (string, io.ReadCloser, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		fh, err := c.FormFile(backupFormField)
		if err != nil {
			return "", nil, errs.Wrap(err, "missing multipart file")
		}
		f, err := fh.Open()
		if err != nil {
			return "", nil, errs.Wrap(err, "failed to open uploaded file")
		}
		return formatFromName(fh.Filename), f, nil
	}
	if c.ContentType() == gin.MIMEJSON {
		return commands.FormatJSON, c.Request.Body, nil
	}
	return "", nil, backup.ErrUnsupportedFormat
}

// formatFromName maps the extension onto a codec. Unknown extensions fall through to
// the usecase, which rejects them as an invalid backup.
func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".xlsx":
		return commands.FormatXLSX
	case ".json":
		return commands.FormatJSON
	default:
		return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	}
}

// @Summary Reset dataset
// @Description Clears all bookings and inventory. Content, settings and users are kept.
// @Tags backup
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /reset [post]
func (h *BackupHandler) Reset(c *gin.Context) {
	if err := h.commands.Reset(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Bookings and inventory cleared"})
}
