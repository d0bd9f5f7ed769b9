package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/services"
	"github.com/arda/campusconnect/internal/middleware"
	"github.com/arda/campusconnect/internal/pkg/helpers"
)

// NoticeController handles notice related operations
type NoticeController struct {
	noticeService services.NoticeService
	logger        zerolog.Logger
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService, logger zerolog.Logger) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
		logger:        logger,
	}
}

// List returns notices visible to the caller
// @Summary List notices
// @Description Returns active, unexpired notices visible to the caller's role
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param department query string false "Filter by department"
// @Param search query string false "Search in title and content"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.NoticeListData} "Notices"
// @Router /api/notices [get]
func (c *NoticeController) List(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	filter := dto.NoticeFilter{
		Category:   ctx.Query("category"),
		Department: ctx.Query("department"),
		Search:     ctx.Query("search"),
	}
	filter.Page, filter.Limit = helpers.ParsePaginationParams(ctx)
	if ctx.Query("limit") == "" {
		// Notices default to a larger page than the other lists
		filter.Limit = 50
	}

	data, err := c.noticeService.List(actor, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}

// Get returns a single notice
// @Summary Get a notice
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=dto.NoticeData} "Notice"
// @Failure 403 {object} dto.APIResponse "Not in target audience"
// @Failure 404 {object} dto.APIResponse "Notice not found"
// @Router /api/notices/{id} [get]
func (c *NoticeController) Get(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	notice, err := c.noticeService.GetByID(actor, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NoticeData{Notice: *notice}, ""))
}

// Create stores a new notice
// @Summary Create a notice
// @Description Creates a notice authored by the caller. Faculty and admins only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateNoticeRequest true "Notice fields"
// @Success 201 {object} dto.APIResponse{data=dto.NoticeData} "Notice created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Router /api/notices [post]
func (c *NoticeController) Create(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid notice payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	notice, err := c.noticeService.Create(actor, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.NoticeData{Notice: *notice}, "Notice created successfully"))
}

// Update replaces the mutable fields of a notice
// @Summary Update a notice
// @Description Updates a notice. Author or admin only.
// @Tags notices
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Notice fields"
// @Success 200 {object} dto.APIResponse{data=dto.NoticeData} "Notice updated"
// @Failure 403 {object} dto.APIResponse "Not the author"
// @Failure 404 {object} dto.APIResponse "Notice not found"
// @Router /api/notices/{id} [put]
func (c *NoticeController) Update(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid notice payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	notice, err := c.noticeService.Update(actor, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NoticeData{Notice: *notice}, "Notice updated successfully"))
}

// Delete removes a notice
// @Summary Delete a notice
// @Description Deletes a notice. Author or admin only.
// @Tags notices
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notice ID"
// @Success 200 {object} dto.APIResponse "Notice deleted"
// @Failure 403 {object} dto.APIResponse "Not the author"
// @Failure 404 {object} dto.APIResponse "Notice not found"
// @Router /api/notices/{id} [delete]
func (c *NoticeController) Delete(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	if err := c.noticeService.Delete(actor, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Notice deleted successfully"))
}
