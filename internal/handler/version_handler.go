package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mishasvintus/product_review_service/internal/service"
)

// VersionHandler handles release version HTTP requests.
type VersionHandler struct {
	versionService VersionServiceInterface
}

// NewVersionHandler creates a new version handler.
func NewVersionHandler(versionService VersionServiceInterface) *VersionHandler {
	return &VersionHandler{versionService: versionService}
}

// CreateVersion handles POST /versions/create.
func (h *VersionHandler) CreateVersion(c *gin.Context) {
	var req CreateVersionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	v, err := h.versionService.CreateVersion(req.Name, req.ReleaseDate)
	if err != nil {
		writeVersionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Version: versionToResponse(v),
	})
}

// GetVersion handles GET /versions/get.
func (h *VersionHandler) GetVersion(c *gin.Context) {
	versionID := c.Query("version_id")
	if versionID == "" {
		BadRequest(c, "version_id parameter is required")
		return
	}

	v, err := h.versionService.GetVersion(versionID)
	if err != nil {
		writeVersionError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Version: versionToResponse(v),
	})
}

// ListVersions handles GET /versions/list.
func (h *VersionHandler) ListVersions(c *gin.Context) {
	versions, err := h.versionService.ListVersions()
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	resp := VersionListResponse{Versions: make([]VersionResponse, len(versions))}
	for i := range versions {
		resp.Versions[i] = *versionToResponse(&versions[i])
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateReleaseDate handles POST /versions/updateReleaseDate.
func (h *VersionHandler) UpdateReleaseDate(c *gin.Context) {
	var req UpdateReleaseDateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	v, err := h.versionService.UpdateReleaseDate(req.VersionID, req.ReleaseDate)
	if err != nil {
		writeVersionError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{
		Version: versionToResponse(v),
	})
}

// PreviewSchedule handles GET /versions/schedule.
func (h *VersionHandler) PreviewSchedule(c *gin.Context) {
	releaseDate := c.Query("release_date")
	if releaseDate == "" {
		BadRequest(c, "release_date parameter is required")
		return
	}

	s, err := h.versionService.PreviewSchedule(releaseDate)
	if err != nil {
		writeVersionError(c, err)
		return
	}

	c.JSON(http.StatusOK, scheduleToResponse(s))
}

func writeVersionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrVersionNotFound):
		NotFound(c, "version not found")
	case errors.Is(err, service.ErrInvalidDate):
		Error(c, ErrorInvalidDate, "release_date must be a valid YYYY-MM-DD date", http.StatusBadRequest)
	default:
		InternalError(c, err.Error())
	}
}
