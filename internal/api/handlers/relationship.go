package handlers

import (
	"net/http"

	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RelationshipHandler handles HTTP requests for leader/IC relationship operations
type RelationshipHandler struct {
	relationshipService service.RelationshipServiceInterface
}

// NewRelationshipHandler creates a new relationship handler
func NewRelationshipHandler(relationshipService service.RelationshipServiceInterface) *RelationshipHandler {
	return &RelationshipHandler{
		relationshipService: relationshipService,
	}
}

// CreateRelationship handles POST /relationships
// @Summary Pair a leader with an IC
// @Description Create a leader/IC relationship; administrators only, an IC can have at most one leader
// @Tags relationships
// @Accept json
// @Produce json
// @Param relationship body service.CreateRelationshipRequest true "Relationship data"
// @Success 201 {object} service.RelationshipResponse "Successfully created relationship"
// @Failure 400 {object} ErrorResponse "Role mismatch or IC already assigned"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 404 {object} ErrorResponse "User not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relationships [post]
func (h *RelationshipHandler) CreateRelationship(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	relationship, err := h.relationshipService.Create(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, relationship)
}

// ListRelationships handles GET /relationships
// @Summary List my relationships
// @Description List the caller's relationships: all ICs for a leader, the single leader pairing for an IC
// @Tags relationships
// @Accept json
// @Produce json
// @Success 200 {array} service.RelationshipResponse "Successfully retrieved relationships"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relationships [get]
func (h *RelationshipHandler) ListRelationships(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	relationships, err := h.relationshipService.ListMine(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, relationships)
}

// DeleteRelationship handles DELETE /relationships/:id
// @Summary Delete a relationship
// @Description Remove a leader/IC pairing; administrators only
// @Tags relationships
// @Accept json
// @Produce json
// @Param id path string true "Relationship ID (UUID)"
// @Success 204 "Successfully deleted relationship"
// @Failure 403 {object} ErrorResponse "Administrator role required"
// @Failure 404 {object} ErrorResponse "Relationship not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /relationships/{id} [delete]
func (h *RelationshipHandler) DeleteRelationship(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid relationship ID"})
		return
	}

	if err := h.relationshipService.Delete(identity, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
