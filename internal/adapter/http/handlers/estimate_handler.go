package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	request "joalheria_xpto/internal/adapter/http/dto/request"
	response "joalheria_xpto/internal/adapter/http/dto/response"
	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase"
	"joalheria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload    = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)
)

// EstimateHandler handles the calculator and the estimate history endpoints.

type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// Quote computes a full price breakdown from raw inputs without persisting
// anything.
//
// @Summary  Price a set of raw inputs
// @Tags     quotes
// @Accept   json
// @Produce  json
// @Param    payload body request.QuoteRequest true "pricing input"
// @Success  200 {object} response.BreakdownResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /quotes [post]
func (h *EstimateHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Quote(c.Request.Context(), payload.ToPricingInput())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBreakdown(breakdown))
}

// CreateEstimate finalizes a calculation: only the raw physical inputs are
// persisted, and the response carries a breakdown priced at current rates.
//
// @Summary  Save an estimate
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    payload body request.EstimateRequest true "estimate"
// @Success  201 {object} response.EstimateResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.EstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	priced, err := h.usecase.SaveEstimate(c.Request.Context(), payload.ToRecord())
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPricedEstimate(priced))
}

// ListEstimates returns the estimate history with live totals.
//
// @Summary  List estimates
// @Tags     estimates
// @Produce  json
// @Param    q                query string  false "product name substring"
// @Param    purity           query []string false "purity labels" collectionFormat(multi)
// @Param    stone_type_id    query []string false "stone type ids" collectionFormat(multi)
// @Param    min_gold_weight  query number  false "minimum net gold weight"
// @Param    max_gold_weight  query number  false "maximum net gold weight"
// @Param    min_total        query number  false "minimum live total"
// @Param    max_total        query number  false "maximum live total"
// @Param    sort             query string  false "created_at|name|net_gold_weight|total"
// @Param    order            query string  false "asc|desc"
// @Success  200 {object} response.EstimateListResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	filter := parseEstimateFilter(c)

	priced, err := h.usecase.ListEstimates(c.Request.Context(), filter)
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricedEstimates(priced))
}

// GetEstimate returns one stored estimate with a live breakdown.
//
// @Summary  Get an estimate
// @Tags     estimates
// @Produce  json
// @Param    id path string true "estimate id"
// @Success  200 {object} response.EstimateResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	priced, err := h.usecase.GetEstimate(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPricedEstimate(priced))
}

// DeleteEstimate removes a stored estimate.
//
// @Summary  Delete an estimate
// @Tags     estimates
// @Param    id path string true "estimate id"
// @Success  204
// @Failure  404 {object} pkg.HTTPError
// @Router   /estimates/{id} [delete]
func (h *EstimateHandler) DeleteEstimate(c *gin.Context) {
	if err := h.usecase.DeleteEstimate(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapEstimateError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func parseEstimateFilter(c *gin.Context) entities.EstimateFilter {
	f := entities.EstimateFilter{
		NameQuery:    strings.TrimSpace(c.Query("q")),
		Purities:     c.QueryArray("purity"),
		StoneTypeIDs: c.QueryArray("stone_type_id"),
	}
	f.MinGoldWeight = queryFloat(c, "min_gold_weight")
	f.MaxGoldWeight = queryFloat(c, "max_gold_weight")
	f.MinTotal = queryFloat(c, "min_total")
	f.MaxTotal = queryFloat(c, "max_total")

	switch c.Query("sort") {
	case entities.SortByName, entities.SortByGoldWeight, entities.SortByTotal:
		f.SortBy = c.Query("sort")
	default:
		f.SortBy = entities.SortByCreatedAt
	}
	// History defaults to newest-first.
	switch c.Query("order") {
	case "asc":
		f.SortDesc = false
	case "desc":
		f.SortDesc = true
	default:
		f.SortDesc = f.SortBy == entities.SortByCreatedAt
	}
	return f
}

func queryFloat(c *gin.Context, name string) *float64 {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID),
		errors.Is(err, usecase.ErrInvalidGoldWeight),
		errors.Is(err, usecase.ErrInvalidStoneEntry):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
