package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "daywise/internal/errors"
	"daywise/internal/services"
	"daywise/internal/types"
)

// SummaryHandler handles monthly summary and history requests.
type SummaryHandler struct {
	summaryService services.SummaryServicer
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(summaryService services.SummaryServicer) *SummaryHandler {
	return &SummaryHandler{summaryService: summaryService}
}

// MonthQuery represents the query parameters for the monthly summary.
type MonthQuery struct {
	Month string `form:"month" binding:"omitempty,month"`
}

// GetMonthSummary returns the summary for a single calendar month
// @Summary     Monthly summary
// @Description Get income, expense and balance totals plus transactions for one calendar month. Defaults to the current month; future months are clamped to the current month.
// @Tags        summaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       month query string false "Month in YYYY-MM form (default: current month)"
// @Success     200 {object} services.MonthSummary "Month summary"
// @Failure     400 {object} ErrorResponse "Invalid month"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /summary [get]
func (h *SummaryHandler) GetMonthSummary(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var query MonthQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM"))
		return
	}

	var month types.Month
	if query.Month != "" {
		month, err = types.ParseMonth(query.Month)
		if err != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid month, use YYYY-MM"))
			return
		}
	}

	summary, err := h.summaryService.MonthSummary(userID, month)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// GetHistory returns all transactions grouped by month
// @Summary     Transaction history
// @Description Get all of the user's transactions grouped into per-month summaries, most recent month first
// @Tags        summaries
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} report.MonthGroup "Month groups"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /history [get]
func (h *SummaryHandler) GetHistory(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	history, err := h.summaryService.History(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}
