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

// EventController handles event related operations
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// List returns events matching the filter
// @Summary List events
// @Description Returns events soonest first, each with derived timing fields
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param category query string false "Filter by category"
// @Param upcoming query bool false "Only events that have not started"
// @Param search query string false "Search in title, description and venue"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.EventListData} "Events"
// @Router /api/events [get]
func (c *EventController) List(ctx *gin.Context) {
	filter := dto.EventFilter{
		Category: ctx.Query("category"),
		Upcoming: ctx.Query("upcoming") == "true",
		Search:   ctx.Query("search"),
	}
	filter.Page, filter.Limit = helpers.ParsePaginationParams(ctx)

	data, err := c.eventService.List(&filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(data, ""))
}

// Get returns a single event
// @Summary Get an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventData} "Event"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /api/events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	event, err := c.eventService.GetByID(ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EventData{Event: *event}, ""))
}

// Create stores a new event with an optional banner image
// @Summary Create an event
// @Description Creates an event authored by the caller. Faculty and admins only.
// @Tags events
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param date formData string true "Date (YYYY-MM-DD)"
// @Param time formData string true "Time (HH:MM)"
// @Param venue formData string true "Venue"
// @Param category formData string true "Category"
// @Param organizer formData string true "Organizer"
// @Param maxParticipants formData int false "Participant cap"
// @Param registrationRequired formData bool false "Whether registration is required"
// @Param image formData file false "Banner image"
// @Success 201 {object} dto.APIResponse{data=dto.EventData} "Event created"
// @Failure 400 {object} dto.APIResponse "Validation failed"
// @Failure 403 {object} dto.APIResponse "Insufficient role"
// @Router /api/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	req, err := bindEventRequest(ctx)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	// Image is optional; FormFile errors just mean no file was sent.
	image, _ := ctx.FormFile("image")

	event, err := c.eventService.Create(actor, req, image)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.EventData{Event: *event}, "Event created successfully"))
}

// Update replaces the mutable fields of an event
// @Summary Update an event
// @Description Updates an event. Author or admin only. Participants are preserved.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Event fields"
// @Success 200 {object} dto.APIResponse{data=dto.EventData} "Event updated"
// @Failure 403 {object} dto.APIResponse "Not the author"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /api/events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid event payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	event, err := c.eventService.Update(actor, ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EventData{Event: *event}, "Event updated successfully"))
}

// Delete removes an event
// @Summary Delete an event
// @Description Deletes an event. Author or admin only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse "Event deleted"
// @Failure 403 {object} dto.APIResponse "Not the author"
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /api/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	if err := c.eventService.Delete(actor, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil, "Event deleted successfully"))
}

// Register adds the caller to the participant list
// @Summary Register for an event
// @Description Registers the calling student for an event. Students only.
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventData} "Registered"
// @Failure 400 {object} dto.APIResponse "Registration not open, event started or full"
// @Failure 409 {object} dto.APIResponse "Already registered"
// @Router /api/events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	event, err := c.eventService.Register(actor, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EventData{Event: *event}, "Registered for event successfully"))
}

// Unregister removes the caller from the participant list
// @Summary Cancel an event registration
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} dto.APIResponse{data=dto.EventData} "Registration cancelled"
// @Failure 400 {object} dto.APIResponse "Not registered"
// @Router /api/events/{id}/register [delete]
func (c *EventController) Unregister(ctx *gin.Context) {
	actor := middleware.CurrentUser(ctx)

	event, err := c.eventService.Unregister(actor, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EventData{Event: *event}, "Registration cancelled successfully"))
}

// bindEventRequest reads event fields from a multipart form, falling back
// to JSON when the request has no form content.
func bindEventRequest(ctx *gin.Context) (*dto.CreateEventRequest, error) {
	var req dto.CreateEventRequest

	contentType := ctx.ContentType()
	if contentType == "application/json" {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			return nil, err
		}
		return &req, nil
	}

	req.Title = ctx.PostForm("title")
	req.Description = ctx.PostForm("description")
	req.Date = ctx.PostForm("date")
	req.Time = ctx.PostForm("time")
	req.Venue = ctx.PostForm("venue")
	req.Category = ctx.PostForm("category")
	req.Organizer = ctx.PostForm("organizer")
	req.RegistrationRequired = ctx.PostForm("registrationRequired") == "true"
	if raw := ctx.PostForm("maxParticipants"); raw != "" {
		max, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.MaxParticipants = &max
	}
	return &req, nil
}
