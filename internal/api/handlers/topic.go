package handlers

import (
	"net/http"

	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TopicHandler handles HTTP requests for topic operations
type TopicHandler struct {
	topicService service.TopicServiceInterface
}

// NewTopicHandler creates a new topic handler
func NewTopicHandler(topicService service.TopicServiceInterface) *TopicHandler {
	return &TopicHandler{
		topicService: topicService,
	}
}

// CreateTopic handles POST /topics
// @Summary Create a topic
// @Description Create a backlog topic for a future 1:1 discussion
// @Tags topics
// @Accept json
// @Produce json
// @Param topic body service.CreateTopicRequest true "Topic data"
// @Success 201 {object} service.TopicResponse "Successfully created topic"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /topics [post]
func (h *TopicHandler) CreateTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	topic, err := h.topicService.Create(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}

// GetTopic handles GET /topics/:id
// @Summary Get topic by ID
// @Description Get one of the caller's topics by its UUID
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 200 {object} service.TopicResponse "Successfully retrieved topic"
// @Failure 400 {object} ErrorResponse "Invalid topic ID"
// @Failure 404 {object} ErrorResponse "Topic not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /topics/{id} [get]
func (h *TopicHandler) GetTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic ID"})
		return
	}

	topic, err := h.topicService.GetByID(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// ListTopics handles GET /topics
// @Summary List my topics
// @Description List the caller's topics with an optional status filter
// @Tags topics
// @Accept json
// @Produce json
// @Param status query string false "Topic status filter (BACKLOG, SCHEDULED, DISCUSSED, ARCHIVED)"
// @Success 200 {array} service.TopicResponse "Successfully retrieved topics"
// @Failure 400 {object} ErrorResponse "Unknown status filter"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /topics [get]
func (h *TopicHandler) ListTopics(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	topics, err := h.topicService.List(identity, c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topics)
}

// UpdateTopic handles PATCH /topics/:id
// @Summary Update a topic
// @Description Update a topic's title, content or status; SCHEDULED and DISCUSSED are meeting-driven and cannot be set directly
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Param topic body service.UpdateTopicRequest true "Fields to update"
// @Success 200 {object} service.TopicResponse "Successfully updated topic"
// @Failure 400 {object} ErrorResponse "Invalid request or disallowed status"
// @Failure 404 {object} ErrorResponse "Topic not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /topics/{id} [patch]
func (h *TopicHandler) UpdateTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic ID"})
		return
	}

	var req service.UpdateTopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	topic, err := h.topicService.Update(identity, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// ArchiveTopic handles POST /topics/:id/archive
// @Summary Archive a topic
// @Description Move a topic to ARCHIVED regardless of its current status
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 200 {object} service.TopicResponse "Successfully archived topic"
// @Failure 400 {object} ErrorResponse "Invalid topic ID"
// @Failure 404 {object} ErrorResponse "Topic not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /topics/{id}/archive [post]
func (h *TopicHandler) ArchiveTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic ID"})
		return
	}

	topic, err := h.topicService.Archive(identity, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, topic)
}

// DeleteTopic handles DELETE /topics/:id
// @Summary Delete a topic
// @Description Permanently delete a backlog topic that was never attached to a meeting
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID (UUID)"
// @Success 204 "Successfully deleted topic"
// @Failure 400 {object} ErrorResponse "Topic is not deletable"
// @Failure 404 {object} ErrorResponse "Topic not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /topics/{id} [delete]
func (h *TopicHandler) DeleteTopic(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid topic ID"})
		return
	}

	if err := h.topicService.Delete(identity, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
