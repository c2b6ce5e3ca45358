package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	resdto "parking-facility/internal/handler/dto/response"
	"parking-facility/internal/handler/httperr"
	"parking-facility/internal/usecase/queries"
)

type ReportHandler struct {
	reports queries.ReportQueries
}

func NewReportHandler(reports queries.ReportQueries) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// @Summary Daily report
// @Description Entries, revenue and durations for the current day
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReportResponse
// @Router /reports/daily [get]
func (h *ReportHandler) Daily(c *gin.Context) {
	h.render(c, h.reports.Daily())
}

// @Summary Monthly report
// @Description Entries, revenue and durations for the current month
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ReportResponse
// @Router /reports/monthly [get]
func (h *ReportHandler) Monthly(c *gin.Context) {
	h.render(c, h.reports.Monthly())
}

func (h *ReportHandler) render(c *gin.Context, view *queries.ReportView) {
	resp, err := resdto.FromReportView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, resp)
}
