package handlers

import (
	"net/http"

	"oneonone-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BoardHandler handles HTTP requests for team board operations
type BoardHandler struct {
	boardService service.BoardServiceInterface
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService service.BoardServiceInterface) *BoardHandler {
	return &BoardHandler{
		boardService: boardService,
	}
}

// GetBoard handles GET /board
// @Summary Get my team board
// @Description Get the caller's board columns and ICs in display order
// @Tags board
// @Accept json
// @Produce json
// @Success 200 {object} service.BoardResponse "Successfully retrieved board"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /board [get]
func (h *BoardHandler) GetBoard(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	board, err := h.boardService.Get(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, board)
}

// CreateColumn handles POST /board/columns
// @Summary Create a board column
// @Description Create a grouping column on the caller's board; codes are unique per leader
// @Tags board
// @Accept json
// @Produce json
// @Param column body service.CreateColumnRequest true "Column data"
// @Success 201 {object} service.ColumnResponse "Successfully created column"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Column code already in use"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /board/columns [post]
func (h *BoardHandler) CreateColumn(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.CreateColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	column, err := h.boardService.CreateColumn(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, column)
}

// ReorderColumns handles PUT /board/columns/order
// @Summary Reorder board columns
// @Description Apply a full permutation of the caller's column codes as the new display order
// @Tags board
// @Accept json
// @Produce json
// @Param order body service.ReorderColumnsRequest true "Complete ordered list of column codes"
// @Success 200 {array} service.ColumnResponse "Successfully reordered columns"
// @Failure 400 {object} ErrorResponse "List is not a permutation of the caller's columns"
// @Failure 404 {object} ErrorResponse "Unknown column code"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /board/columns/order [put]
func (h *BoardHandler) ReorderColumns(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req service.ReorderColumnsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	columns, err := h.boardService.ReorderColumns(identity, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, columns)
}

// DeleteColumn handles DELETE /board/columns/:id
// @Summary Delete a board column
// @Description Delete a column; its ICs fall back to the unassigned pool
// @Tags board
// @Accept json
// @Produce json
// @Param id path string true "Column ID (UUID)"
// @Success 204 "Successfully deleted column"
// @Failure 404 {object} ErrorResponse "Column not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /board/columns/{id} [delete]
func (h *BoardHandler) DeleteColumn(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid column ID"})
		return
	}

	if err := h.boardService.DeleteColumn(identity, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ReorderIC handles PUT /board/ics/:id/order
// @Summary Move an IC on the board
// @Description Place one of the caller's ICs into a column (or the unassigned pool) at a given position
// @Tags board
// @Accept json
// @Produce json
// @Param id path string true "IC user ID (UUID)"
// @Param placement body service.ReorderICRequest true "Target column and position"
// @Success 204 "Successfully moved IC"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "IC or column not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /board/ics/{id}/order [put]
func (h *BoardHandler) ReorderIC(c *gin.Context) {
	identity, ok := callerIdentity(c)
	if !ok {
		return
	}

	icID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid IC ID"})
		return
	}

	var req service.ReorderICRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.boardService.ReorderIC(identity, icID, &req); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
