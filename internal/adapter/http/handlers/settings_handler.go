package handlers

import (
	"errors"
	"net/http"

	request "joalheria_xpto/internal/adapter/http/dto/request"
	response "joalheria_xpto/internal/adapter/http/dto/response"
	"joalheria_xpto/internal/usecase"
	"joalheria_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// SettingsHandler manages the global pricing configuration: direct edits and
// the price-sheet sync trigger.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings returns the current pricing configuration.
//
// @Summary  Get settings
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.SettingsResponse
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, syncedAt, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(settings, syncedAt))
}

// UpdateSettings replaces the pricing configuration wholesale. Derived gold
// rates are recomputed server-side from the submitted 24k rate and purity
// percentages.
//
// @Summary  Update settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    payload body request.SettingsRequest true "settings"
// @Success  200 {object} response.SettingsResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	updated, syncedAt, err := h.usecase.Update(c.Request.Context(), payload.ToSettings())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(updated, syncedAt))
}

// SyncSettings refreshes the configuration from the external price sheet.
// A failed fetch leaves the prior settings untouched and reports the error,
// so the client can offer a retry.
//
// @Summary  Sync settings from the price sheet
// @Tags     settings
// @Produce  json
// @Success  200 {object} response.SettingsResponse
// @Failure  502 {object} pkg.HTTPError
// @Router   /settings/sync [post]
func (h *SettingsHandler) SyncSettings(c *gin.Context) {
	merged, syncedAt, err := h.usecase.Sync(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(merged, syncedAt))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSettings):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS", "Invalid settings", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSyncFailed):
		return pkg.NewDomainError("SYNC_FAILED", "Price sheet sync failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
