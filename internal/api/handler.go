package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/internal/dataset"
	"github.com/guttosm/fxpulse/internal/domain/dto"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/middleware"
	"github.com/guttosm/fxpulse/internal/service"
)

// Handler provides HTTP handlers for stored extraction results.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Call the records service
//   - Translate domain results into response DTOs
type Handler struct {
	svc service.RecordsService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.RecordsService) *Handler {
	return &Handler{svc: svc}
}

// GetRecords godoc
// @Summary      List extracted records
// @Description  Returns stored records ordered by date and occurrence, optionally bounded by date (inclusive)
// @Tags         records
// @Produce      json
// @Param        from  query     string  false  "First date, YYYY-MM-DD" example(2025-01-01)
// @Param        to    query     string  false  "Last date, YYYY-MM-DD" example(2025-01-31)
// @Success      200   {object}  dto.RecordsResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/records [get]
func (h *Handler) GetRecords(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ds, err := h.svc.ListRecords(c.Request.Context(), from, to)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch records", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewRecordsResponse(ds, from, to))
}

// GetSummary godoc
// @Summary      Summarize extracted records
// @Description  Returns totals by original currency, daily CAD totals and the overall CAD total
// @Tags         records
// @Produce      json
// @Param        from  query     string  false  "First date, YYYY-MM-DD" example(2025-01-01)
// @Param        to    query     string  false  "Last date, YYYY-MM-DD" example(2025-01-31)
// @Success      200   {object}  dto.SummaryResponse  "Success"
// @Failure      400   {object}  dto.ErrorResponse    "Bad Request"
// @Failure      500   {object}  dto.ErrorResponse    "Internal Error"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	from, to, err := parseRange(c)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	sum, err := h.svc.Summary(c.Request.Context(), from, to)
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to summarize records", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSummaryResponse(sum, dataset.Display(sum.TotalCAD, models.CAD)))
}

// GetLatestRun godoc
// @Summary      Latest extraction run
// @Description  Returns the most recent stored run with its skipped files
// @Tags         runs
// @Produce      json
// @Success      200  {object}  dto.RunResponse    "Success"
// @Failure      404  {object}  dto.ErrorResponse  "Not Found"
// @Failure      500  {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/runs/latest [get]
func (h *Handler) GetLatestRun(c *gin.Context) {
	run, err := h.svc.LatestRun(c.Request.Context())
	if err != nil {
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to fetch run", err)
		return
	}
	if run == nil {
		middleware.AbortWithError(c, http.StatusNotFound, "no run stored", nil)
		return
	}

	c.JSON(http.StatusOK, dto.NewRunResponse(*run))
}

// parseRange reads the optional "from" and "to" query parameters.
func parseRange(c *gin.Context) (from, to *time.Time, err error) {
	parse := func(key string) (*time.Time, error) {
		s := c.Query(key)
		if s == "" {
			return nil, nil
		}
		d, err := time.Parse(models.DateLayout, s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s, expected YYYY-MM-DD", key)
		}
		return &d, nil
	}

	if from, err = parse("from"); err != nil {
		return nil, nil, err
	}
	if to, err = parse("to"); err != nil {
		return nil, nil, err
	}
	if from != nil && to != nil && to.Before(*from) {
		return nil, nil, errors.New("to must not be before from")
	}
	return from, to, nil
}
