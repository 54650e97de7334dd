package handlers

import (
	"errors"
	"log"
	"net/http"

	request "wheelworks/internal/adapter/http/dto/request"
	response "wheelworks/internal/adapter/http/dto/response"
	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase"
	"wheelworks/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the protected analytics dashboard: the aggregate
// overview, quote detail and status updates.

type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	quotes    usecase.IQuoteUseCase
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, quotes usecase.IQuoteUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, quotes: quotes}
}

// Overview recomputes the analytics snapshot and returns it with the quote
// list sorted newest-first. `range` is week|month|year or absent for all.
func (h *DashboardHandler) Overview(c *gin.Context) {
	dateRange := c.Query("range")

	snapshot, quotes, err := h.dashboard.Overview(c.Request.Context(), dateRange)
	if err != nil {
		log.Printf("[dashboard][handler] overview failed range=%q err=%v", dateRange, err)
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOverview(snapshot, quotes))
}

func (h *DashboardHandler) GetQuote(c *gin.Context) {
	id := c.Param("id")

	q, err := h.quotes.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[dashboard][handler] get quote failed quote_id=%s err=%v", id, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(q))
}

// UpdateQuoteStatus is an unconditional status write; there is no transition
// table and concurrent updates last-write-wins.
func (h *DashboardHandler) UpdateQuoteStatus(c *gin.Context) {
	id := c.Param("id")

	var payload request.QuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.quotes.UpdateStatus(c.Request.Context(), id, entities.QuoteStatus(payload.Status))
	if err != nil {
		log.Printf("[dashboard][handler] status update failed quote_id=%s status=%s err=%v", id, payload.Status, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(updated))
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
