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

// ResumeController handles resume related operations
type ResumeController struct {
	resumeService services.ResumeService
	logger        zerolog.Logger
}

// NewResumeController creates a new ResumeController
func NewResumeController(resumeService services.ResumeService, logger zerolog.Logger) *ResumeController {
	return &ResumeController{
		resumeService: resumeService,
		logger:        logger,
	}
}

// List returns resumes visible to the caller
// @Summary List resumes
// @Description Faculty and admins see all resumes; students see their own plus public ones
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param experience query string false "Filter by experience level"
// @Param skills query string false "Comma separated skills, any match"
// @Param search query string false "Search in title and description"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeListData} "Resumes"
// @Router /api/resumes [get]
func (c *ResumeController) List(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	filter := dto.ResumeFilter{
		Category:   ctx.Query("category"),
		Experience: ctx.Query("experience"),
		Skills:     ctx.Query("skills"),
		Search:     ctx.Query("search"),
	}
	filter.Page, filter.Limit = helpers.ParsePaginationParams(ctx)

	data, err := c.resumeService.List(actor, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}

// ListMine returns every resume owned by the caller
// @Summary List my resumes
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.MyResumesData} "My resumes"
// @Router /api/resumes/my/list [get]
func (c *ResumeController) ListMine(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	data, err := c.resumeService.ListMine(actor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}

// Get returns a single resume and bumps its view counter
// @Summary Get a resume
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeData} "Resume"
// @Failure 403 {object} dto.APIResponse "Resume is private"
// @Failure 404 {object} dto.APIResponse "Resume not found"
// @Router /api/resumes/{id} [get]
func (c *ResumeController) Get(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	resume, err := c.resumeService.GetByID(actor, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ResumeData{Resume: *resume}, ""))
}

// Create uploads a new resume
// @Summary Upload a resume
// @Description Stores a resume with its file. Students only. New resumes start private.
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param category formData string true "Category"
// @Param skills formData string false "Comma separated skills"
// @Param experience formData string true "Experience level"
// @Param file formData file true "Resume file"
// @Success 201 {object} dto.APIResponse{data=dto.ResumeData} "Resume uploaded"
// @Failure 400 {object} dto.APIResponse "Validation failed or bad file"
// @Failure 403 {object} dto.APIResponse "Students only"
// @Router /api/resumes [post]
func (c *ResumeController) Create(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	req := dto.CreateResumeRequest{
		Title:       ctx.PostForm("title"),
		Description: ctx.PostForm("description"),
		Category:    ctx.PostForm("category"),
		Skills:      ctx.PostForm("skills"),
		Experience:  ctx.PostForm("experience"),
	}

	file, _ := ctx.FormFile("file")

	resume, err := c.resumeService.Create(actor, &req, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.ResumeData{Resume: *resume}, "Resume uploaded successfully"))
}

// Update replaces the metadata of a resume
// @Summary Update a resume
// @Description Updates resume metadata. Owner only. The stored file is kept.
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Param request body dto.CreateResumeRequest true "Resume fields"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeData} "Resume updated"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Resume not found"
// @Router /api/resumes/{id} [put]
func (c *ResumeController) Update(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	var req dto.CreateResumeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid resume payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	resume, err := c.resumeService.Update(actor, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ResumeData{Resume: *resume}, "Resume updated successfully"))
}

// SetVisibility toggles whether a resume is public
// @Summary Change resume visibility
// @Tags resumes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Param request body dto.VisibilityRequest true "Visibility flag"
// @Success 200 {object} dto.APIResponse{data=dto.ResumeData} "Visibility changed"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Router /api/resumes/{id}/visibility [put]
func (c *ResumeController) SetVisibility(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	var req dto.VisibilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("isPublic is required"))
		return
	}

	resume, err := c.resumeService.SetVisibility(actor, ctx.Param("id"), *req.IsPublic)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ResumeData{Resume: *resume}, "Resume visibility updated"))
}

// Download streams the stored file and bumps the download counter
// @Summary Download a resume file
// @Description Owner, faculty and admins only
// @Tags resumes
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Success 200 {file} file "Resume file"
// @Failure 403 {object} dto.APIResponse "Not allowed to download"
// @Failure 404 {object} dto.APIResponse "Resume or file not found"
// @Router /api/resumes/{id}/download [get]
func (c *ResumeController) Download(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	resume, absPath, err := c.resumeService.Download(actor, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if resume.MimeType != "" {
		ctx.Header("Content-Type", resume.MimeType)
	}
	ctx.FileAttachment(absPath, resume.FileName)
}

// Delete removes a resume and its file
// @Summary Delete a resume
// @Description Deletes a resume. Owner only.
// @Tags resumes
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resume ID"
// @Success 200 {object} dto.APIResponse "Resume deleted"
// @Failure 403 {object} dto.APIResponse "Not the owner"
// @Failure 404 {object} dto.APIResponse "Resume not found"
// @Router /api/resumes/{id} [delete]
func (c *ResumeController) Delete(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	if err := c.resumeService.Delete(actor, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Resume deleted successfully"))
}
