package handlers_test

import (
	"net/http"
	"testing"

	"oneonone-backend/internal/api/handlers"
	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/mocks"
	"oneonone-backend/internal/service"
	"oneonone-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BoardHandlerTestSuite defines the test suite for BoardHandler
type BoardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBoardServiceInterface
	handler     *handlers.BoardHandler
	httpSuite   *testutils.HTTPTestSuite
	identity    auth.Identity
}

// SetupTest sets up the test suite
func (suite *BoardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBoardServiceInterface(suite.ctrl)
	suite.handler = handlers.NewBoardHandler(suite.mockService)
	suite.identity = auth.Identity{UserID: uuid.New(), Role: models.UserRoleLeader}

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("identity", suite.identity)
		c.Next()
	})

	board := suite.httpSuite.Router.Group("/api/v1/board")
	{
		board.GET("", suite.handler.GetBoard)
		board.POST("/columns", suite.handler.CreateColumn)
		board.PUT("/columns/order", suite.handler.ReorderColumns)
		board.DELETE("/columns/:id", suite.handler.DeleteColumn)
		board.PUT("/ics/:id/order", suite.handler.ReorderIC)
	}
}

// TearDownTest cleans up after each test
func (suite *BoardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BoardHandlerTestSuite) TestGetBoard() {
	suite.mockService.EXPECT().
		Get(suite.identity).
		Return(&service.BoardResponse{
			Columns: []service.ColumnResponse{{ID: uuid.New(), Code: "core", DisplayOrder: 0}},
			Members: []service.BoardMemberResponse{},
		}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/board", nil)

	var board service.BoardResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &board)
	suite.Len(board.Columns, 1)
	suite.Equal("core", board.Columns[0].Code)
}

func (suite *BoardHandlerTestSuite) TestCreateColumnDuplicate() {
	suite.mockService.EXPECT().
		CreateColumn(suite.identity, gomock.Any()).
		Return(nil, apperrors.ErrColumnExists)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/board/columns", map[string]interface{}{
		"code": "core",
		"name": "Core Team",
	})

	suite.Equal(http.StatusConflict, recorder.Code)
}

func (suite *BoardHandlerTestSuite) TestReorderColumns() {
	codes := []string{"platform", "core"}

	suite.mockService.EXPECT().
		ReorderColumns(suite.identity, gomock.Any()).
		DoAndReturn(func(_ auth.Identity, req *service.ReorderColumnsRequest) ([]service.ColumnResponse, error) {
			suite.Equal(codes, req.ColumnCodes)
			return []service.ColumnResponse{
				{ID: uuid.New(), Code: "platform", DisplayOrder: 0},
				{ID: uuid.New(), Code: "core", DisplayOrder: 1},
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/board/columns/order", map[string]interface{}{
		"column_codes": codes,
	})

	var columns []service.ColumnResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &columns)
	suite.Len(columns, 2)
}

func (suite *BoardHandlerTestSuite) TestReorderColumnsIncomplete() {
	suite.mockService.EXPECT().
		ReorderColumns(suite.identity, gomock.Any()).
		Return(nil, apperrors.NewValidationError("column_codes", "must list every column exactly once"))

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/board/columns/order", map[string]interface{}{
		"column_codes": []string{"platform"},
	})

	suite.Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *BoardHandlerTestSuite) TestDeleteColumn() {
	id := uuid.New()
	suite.mockService.EXPECT().
		DeleteColumn(suite.identity, id).
		Return(nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/board/columns/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *BoardHandlerTestSuite) TestReorderIC() {
	icID := uuid.New()
	columnID := uuid.New()

	suite.mockService.EXPECT().
		ReorderIC(suite.identity, icID, gomock.Any()).
		DoAndReturn(func(_ auth.Identity, _ uuid.UUID, req *service.ReorderICRequest) error {
			suite.NotNil(req.ColumnID)
			suite.Equal(columnID, *req.ColumnID)
			suite.Equal(1, req.DisplayOrder)
			return nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/board/ics/"+icID.String()+"/order", map[string]interface{}{
		"column_id":     columnID.String(),
		"display_order": 1,
	})

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *BoardHandlerTestSuite) TestReorderICNotMine() {
	icID := uuid.New()
	suite.mockService.EXPECT().
		ReorderIC(suite.identity, icID, gomock.Any()).
		Return(apperrors.ErrRelationshipNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/board/ics/"+icID.String()+"/order", map[string]interface{}{
		"display_order": 0,
	})

	suite.Equal(http.StatusNotFound, recorder.Code)
}

func TestBoardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BoardHandlerTestSuite))
}
