package handlers

import (
	"net/http"

	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingTopicHandler handles HTTP requests for meeting agenda operations
type MeetingTopicHandler struct {
	meetingTopicService service.MeetingTopicServiceInterface
}

// NewMeetingTopicHandler creates a new meeting topic handler
func NewMeetingTopicHandler(meetingTopicService service.MeetingTopicServiceInterface) *MeetingTopicHandler {
	return &MeetingTopicHandler{
		meetingTopicService: meetingTopicService,
	}
}

// AttachTopic handles POST /meetings/:id/topics
// @Summary Attach a topic to a meeting agenda
// @Description Add one of the caller's topics to a meeting agenda; the topic moves to SCHEDULED
// @Tags agenda
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param topic body service.AttachTopicRequest true "Topic to attach"
// @Success 201 {object} service.MeetingTopicResponse "Successfully attached topic"
// @Failure 400 {object} ErrorResponse "Meeting completed or topic already scheduled"
// @Failure 403 {object} ErrorResponse "Caller does not own the topic"
// @Failure 404 {object} ErrorResponse "Meeting or topic not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/topics [post]
func (h *MeetingTopicHandler) AttachTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	var req service.AttachTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.meetingTopicService.Attach(identity, meetingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// ListAgenda handles GET /meetings/:id/topics
// @Summary List a meeting agenda
// @Description List the topics attached to a meeting in agenda order
// @Tags agenda
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {array} service.MeetingTopicResponse "Successfully retrieved agenda"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/topics [get]
func (h *MeetingTopicHandler) ListAgenda(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	agenda, err := h.meetingTopicService.ListAgenda(identity, meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, agenda)
}

// UpdateMeetingTopic handles PATCH /meetings/:id/topics/:topicId
// @Summary Update an agenda entry
// @Description Reorder an agenda entry or record the resolution of a discussed topic
// @Tags agenda
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param topicId path string true "Agenda entry ID (UUID)"
// @Param entry body service.UpdateMeetingTopicRequest true "Fields to update"
// @Success 200 {object} service.MeetingTopicResponse "Successfully updated entry"
// @Failure 400 {object} ErrorResponse "Unknown resolution"
// @Failure 404 {object} ErrorResponse "Meeting or agenda entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/topics/{topicId} [patch]
func (h *MeetingTopicHandler) UpdateMeetingTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	entryID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid agenda entry ID"})
		return
	}

	var req service.UpdateMeetingTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	entry, err := h.meetingTopicService.Update(identity, meetingID, entryID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DetachTopic handles DELETE /meetings/:id/topics/:topicId
// @Summary Detach a topic from a meeting agenda
// @Description Remove an agenda entry; only the user who added it or the meeting creator may remove it
// @Tags agenda
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param topicId path string true "Agenda entry ID (UUID)"
// @Success 204 "Successfully detached topic"
// @Failure 403 {object} ErrorResponse "Caller may not remove this entry"
// @Failure 404 {object} ErrorResponse "Meeting or agenda entry not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/topics/{topicId} [delete]
func (h *MeetingTopicHandler) DetachTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	entryID, err := uuid.Parse(c.Param("topicId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid agenda entry ID"})
		return
	}

	if err := h.meetingTopicService.Detach(identity, meetingID, entryID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
