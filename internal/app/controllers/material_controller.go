package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/arda/campusconnect/internal/app/models/dto"
	"github.com/arda/campusconnect/internal/app/services"
	"github.com/arda/campusconnect/internal/middleware"
	"github.com/arda/campusconnect/internal/pkg/helpers"
)

// MaterialController handles study material related operations
type MaterialController struct {
	materialService services.MaterialService
	logger          zerolog.Logger
}

// NewMaterialController creates a new MaterialController
func NewMaterialController(materialService services.MaterialService, logger zerolog.Logger) *MaterialController {
	return &MaterialController{
		materialService: materialService,
		logger:          logger,
	}
}

// List returns materials matching the filter
// @Summary List materials
// @Description Returns study materials newest first
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param subject query string false "Filter by subject (substring)"
// @Param semester query int false "Filter by semester"
// @Param department query string false "Filter by department (substring)"
// @Param materialType query string false "Filter by type"
// @Param search query string false "Search in title, description and subject"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialListData} "Materials"
// @Router /api/materials [get]
func (c *MaterialController) List(ctx *gin.Context) {
	filter := dto.MaterialFilter{
		Subject:      ctx.Query("subject"),
		Department:   ctx.Query("department"),
		MaterialType: ctx.Query("materialType"),
		Search:       ctx.Query("search"),
	}
	if raw := ctx.Query("semester"); raw != "" {
		if semester, err := strconv.Atoi(raw); err == nil {
			filter.Semester = &semester
		}
	}
	filter.Page, filter.Limit = helpers.ParsePaginationParams(ctx)

	data, err := c.materialService.List(&filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}

// Get returns a single material without counting a download
// @Summary Get a material
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialData} "Material"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /api/materials/{id} [get]
func (c *MaterialController) Get(ctx *gin.Context) {
	material, err := c.materialService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MaterialData{Material: *material}, ""))
}

// Create uploads a new material
// @Summary Upload a material
// @Description Stores a study material with its file. Faculty and admins only.
// @Tags materials
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param subject formData string true "Subject"
// @Param semester formData int true "Semester (1-8)"
// @Param department formData string true "Department"
// @Param materialType formData string true "Type"
// @Param file formData file true "Material file"
// @Success 201 {object} dto.APIResponse{data=dto.MaterialData} "Material uploaded"
// @Failure 400 {object} dto.APIResponse "Validation failed or bad file"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Router /api/materials [post]
func (c *MaterialController) Create(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	semester, _ := strconv.Atoi(ctx.PostForm("semester"))
	req := dto.CreateMaterialRequest{
		Title:        ctx.PostForm("title"),
		Description:  ctx.PostForm("description"),
		Subject:      ctx.PostForm("subject"),
		Semester:     semester,
		Department:   ctx.PostForm("department"),
		MaterialType: ctx.PostForm("materialType"),
	}

	file, _ := ctx.FormFile("file")

	material, err := c.materialService.Create(actor, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.MaterialData{Material: *material}, "Material uploaded successfully"))
}

// Update replaces the metadata of a material
// @Summary Update a material
// @Description Updates material metadata. Uploader or admin only. The stored file is kept.
// @Tags materials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Param request body dto.UpdateMaterialRequest true "Material metadata"
// @Success 200 {object} dto.APIResponse{data=dto.MaterialData} "Material updated"
// @Failure 403 {object} dto.APIResponse "Not the uploader"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /api/materials/{id} [put]
func (c *MaterialController) Update(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	var req dto.UpdateMaterialRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid material payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	material, err := c.materialService.Update(actor, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MaterialData{Material: *material}, "Material updated successfully"))
}

// Download streams the stored file and bumps the download counter
// @Summary Download a material file
// @Tags materials
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {file} file "Material file"
// @Failure 404 {object} dto.APIResponse "Material or file not found"
// @Router /api/materials/{id}/download [get]
func (c *MaterialController) Download(ctx *gin.Context) {
	material, absPath, err := c.materialService.Download(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if material.MimeType != "" {
		ctx.Header("Content-Type", material.MimeType)
	}
	ctx.FileAttachment(absPath, material.FileName)
}

// Delete removes a material and its file
// @Summary Delete a material
// @Description Deletes a material. Uploader or admin only.
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Param id path string true "Material ID"
// @Success 200 {object} dto.APIResponse "Material deleted"
// @Failure 403 {object} dto.APIResponse "Not the uploader"
// @Failure 404 {object} dto.APIResponse "Material not found"
// @Router /api/materials/{id} [delete]
func (c *MaterialController) Delete(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	if err := c.materialService.Delete(actor, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Material deleted successfully"))
}

// Stats returns aggregate counters over the whole collection
// @Summary Material statistics
// @Tags materials
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MaterialStatsData} "Statistics"
// @Router /api/materials/stats/overview [get]
func (c *MaterialController) Stats(ctx *gin.Context) {
	stats, err := c.materialService.Stats()
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.MaterialStatsData{Stats: *stats}, ""))
}
