package handlers

import (
	"net/http"

	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeetingNoteHandler handles HTTP requests for shared meeting notes
type MeetingNoteHandler struct {
	noteService service.MeetingNoteServiceInterface
}

// NewMeetingNoteHandler creates a new meeting note handler
func NewMeetingNoteHandler(noteService service.MeetingNoteServiceInterface) *MeetingNoteHandler {
	return &MeetingNoteHandler{
		noteService: noteService,
	}
}

// GetNote handles GET /meetings/:id/note
// @Summary Get the shared note of a meeting
// @Description Get the single shared note attached to a meeting
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Success 200 {object} service.MeetingNoteResponse "Successfully retrieved note"
// @Failure 404 {object} ErrorResponse "Meeting or note not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/note [get]
func (h *MeetingNoteHandler) GetNote(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	note, err := h.noteService.Get(identity, meetingID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}

// UpsertNote handles PUT /meetings/:id/note
// @Summary Write the shared note of a meeting
// @Description Create or overwrite the shared note; either relationship member may write, last writer wins
// @Tags notes
// @Accept json
// @Produce json
// @Param id path string true "Meeting ID (UUID)"
// @Param note body service.UpsertNoteRequest true "Note content"
// @Success 200 {object} service.MeetingNoteResponse "Successfully saved note"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Meeting not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /meetings/{id}/note [put]
func (h *MeetingNoteHandler) UpsertNote(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid meeting ID"})
		return
	}

	var req service.UpsertNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	note, err := h.noteService.Upsert(identity, meetingID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, note)
}
