package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/trace-service/internal/domain/dto"
	"github.com/guttosm/trace-service/internal/domain/model"
	"github.com/guttosm/trace-service/internal/i18n"
	"github.com/guttosm/trace-service/internal/middleware"
	"github.com/guttosm/trace-service/internal/service"
)

const defaultHistoryLimit = 20

// PackagingProfileHandler serves the packaging profile routes.
type PackagingProfileHandler struct {
	profiles service.PackagingProfileService
	batches  service.BatchService
	logging  service.LoggingService
}

// NewPackagingProfileHandler creates a PackagingProfileHandler. batches is
// used to drop cached previews after an update and may be nil.
func NewPackagingProfileHandler(profiles service.PackagingProfileService, batches service.BatchService, logging service.LoggingService) *PackagingProfileHandler {
	return &PackagingProfileHandler{profiles: profiles, batches: batches, logging: logging}
}

// GetActive handles GET /api/packaging-profile.
//
// @Summary      Get the active packaging profile
// @Description  Returns the stored active profile, or the configured defaults when none is stored.
// @Tags         Packaging Profile
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=model.PackagingProfile}
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/packaging-profile [get]
func (h *PackagingProfileHandler) GetActive(c *gin.Context) {
	NewResponseBuilder(c).SuccessOK(h.profiles.Active(c.Request.Context()))
}

// Update handles PUT /api/packaging-profile.
//
// @Summary      Replace the packaging profile
// @Description  Stores a new active profile version. Later previews and generations use it as their default.
// @Tags         Packaging Profile
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdatePackagingProfileRequest true "New profile"
// @Success      200 {object} dto.SuccessResponse{data=model.PackagingProfile}
// @Failure      400 {object} dto.ErrorResponse "Malformed body or field error"
// @Failure      503 {object} dto.ErrorResponse "Profile store is not configured"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/packaging-profile [put]
func (h *PackagingProfileHandler) Update(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdatePackagingProfileRequest](c)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			builder.ValidationError(verr)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, nil)
		}
		return
	}

	createdBy := middleware.GetActor(c)
	if createdBy == "" {
		createdBy = req.CreatedBy
	}

	profile, err := h.profiles.Update(c.Request.Context(), req.BufferPercent, req.UnitsPerCase, createdBy)
	if err != nil {
		builder.FromError(err)
		return
	}
	if h.batches != nil {
		h.batches.InvalidateCache()
	}

	middleware.AuditLog(h.logging, c, model.ActionUpdateProfile, "", "Packaging profile updated", map[string]interface{}{
		"buffer_percent": profile.BufferPercent.String(),
		"units_per_case": profile.UnitsPerCase,
		"version":        profile.Version,
	})
	builder.SuccessOK(profile)
}

// History handles GET /api/packaging-profile/history.
//
// @Summary      List packaging profile versions
// @Tags         Packaging Profile
// @Produce      json
// @Param        limit query int false "Maximum number of versions" default(20)
// @Success      200 {object} dto.SuccessResponse{data=[]model.PackagingProfile}
// @Failure      503 {object} dto.ErrorResponse "Profile store is not configured"
// @Security     ApiKeyAuth
// @Security     BearerAuth
// @Router       /api/packaging-profile/history [get]
func (h *PackagingProfileHandler) History(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := defaultHistoryLimit
	if s := c.Query("limit"); s != "" {
		if l, err := strconv.Atoi(s); err == nil && l > 0 {
			limit = l
		}
	}

	profiles, err := h.profiles.History(c.Request.Context(), limit)
	if err != nil {
		builder.FromError(err)
		return
	}
	if profiles == nil {
		profiles = []model.PackagingProfile{}
	}
	builder.SuccessOK(profiles)
}
