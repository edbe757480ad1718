package handlers

import (
	"net/http"

	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingHandler handles HTTP requests for meeting operations
type MeetingHandler struct {
	meetingService service.MeetingServiceInterface
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(meetingService service.MeetingServiceInterface) *MeetingHandler {
	return &MeetingHandler{
		meetingService: meetingService,
	}
}

// CreateMeeting handles POST /meetings
// @Summary Schedule a 1:1 meeting
// @Description Schedule a single 1:1 meeting with one of the caller's ICs
// @Tags meetings
// @Accept json
// @Produce json
// @Param meeting body service.CreateMeetingRequest true "Meeting data"
// @Success 201 {object} service.MeetingResponse "Successfully scheduled meeting"
// @Failure 400 {object} ErrorResponse "Invalid request body, lead time or conflict violation"
// @Failure 404 {object} ErrorResponse "Relationship not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings [post]
func (h *MeetingHandler) CreateMeeting(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	meeting, err := h.meetingService.Create(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meeting)
}

// GenerateSeries handles POST /meetings/series
// @Summary Generate a recurring meeting series
// @Description Create a weekly or biweekly series of 1:1 meetings; the whole series is rejected if any occurrence conflicts
// @Tags meetings
// @Accept json
// @Produce json
// @Param series body service.GenerateSeriesRequest true "Series parameters"
// @Success 201 {array} service.MeetingResponse "Successfully created series"
// @Failure 400 {object} ErrorResponse "Invalid parameters or conflicting occurrences"
// @Failure 404 {object} ErrorResponse "Relationship not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/series [post]
func (h *MeetingHandler) GenerateSeries(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.GenerateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	meetings, err := h.meetingService.GenerateSeries(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, meetings)
}

// GetMeeting handles GET /meetings/:id
// @Summary Get meeting by ID
// @Description Get a specific meeting; only the two relationship members can see it
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.MeetingResponse "Successfully retrieved meeting"
// @Failure 400 {object} ErrorResponse "Invalid meeting ID"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [get]
func (h *MeetingHandler) GetMeeting(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	meeting, err := h.meetingService.GetByID(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// ListMeetings handles GET /meetings
// @Summary List my meetings
// @Description List every meeting the caller participates in, soonest first
// @Tags meetings
// @Accept json
// @Produce json
// @Success 200 {array} service.MeetingResponse "Successfully retrieved meetings"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings [get]
func (h *MeetingHandler) ListMeetings(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetings, err := h.meetingService.List(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meetings)
}

// UpdateMeeting handles PATCH /meetings/:id
// @Summary Update a meeting
// @Description Retitle or reschedule a meeting; only the creator may update and completed meetings are frozen
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param meeting body service.UpdateMeetingRequest true "Fields to update"
// @Success 200 {object} service.MeetingResponse "Successfully updated meeting"
// @Failure 400 {object} ErrorResponse "Invalid request or scheduling violation"
// @Failure 403 {object} ErrorResponse "Caller is not the meeting creator"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [patch]
func (h *MeetingHandler) UpdateMeeting(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	var req service.UpdateMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	meeting, err := h.meetingService.Update(identity, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, meeting)
}

// CompleteMeeting handles POST /meetings/:id/complete
// @Summary Complete a meeting
// @Description Mark a meeting as completed; discussed topics cascade and the unresolved count is reported
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.CompleteMeetingResponse "Successfully completed meeting"
// @Failure 400 {object} ErrorResponse "Meeting already completed"
// @Failure 403 {object} ErrorResponse "Caller is not the meeting creator"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/complete [post]
func (h *MeetingHandler) CompleteMeeting(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	result, err := h.meetingService.Complete(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// DeleteMeeting handles DELETE /meetings/:id
// @Summary Delete a meeting
// @Description Delete a scheduled meeting that has no topics attached
// @Tags meetings
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 204 "Successfully deleted meeting"
// @Failure 400 {object} ErrorResponse "Meeting is not deletable"
// @Failure 403 {object} ErrorResponse "Caller is not the meeting creator"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) DeleteMeeting(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	if err := h.meetingService.Delete(identity, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
