package api

import (
	"net/http"

	"decor-rental/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	queries queries.ReportQueries
}

func NewReportHandler(q queries.ReportQueries) *ReportHandler {
	return &ReportHandler{queries: q}
}

// @Summary Sales report
// @Description Lifetime confirmed revenue, daily breakdown (newest first), monthly totals summed across all years and inventory stats.
// @Tags reports
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.SalesReport
// @Router /reports/sales [get]
func (h *ReportHandler) Sales(c *gin.Context) {
	report, err := h.queries.Sales(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
