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

// TopicHandlerTestSuite defines the test suite for TopicHandler
type TopicHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTopicServiceInterface
	handler     *handlers.TopicHandler
	httpSuite   *testutils.HTTPTestSuite
	identity    auth.Identity
}

// SetupTest sets up the test suite
func (suite *TopicHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTopicServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTopicHandler(suite.mockService)
	suite.identity = auth.Identity{UserID: uuid.New(), Role: models.UserRoleIC}

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(func(c *gin.Context) {
		c.Set("identity", suite.identity)
		c.Next()
	})

	topics := suite.httpSuite.Router.Group("/api/v1/topics")
	{
		topics.GET("", suite.handler.ListTopics)
		topics.POST("", suite.handler.CreateTopic)
		topics.GET("/:id", suite.handler.GetTopic)
		topics.PATCH("/:id", suite.handler.UpdateTopic)
		topics.DELETE("/:id", suite.handler.DeleteTopic)
		topics.POST("/:id/archive", suite.handler.ArchiveTopic)
	}
}

// TearDownTest cleans up after each test
func (suite *TopicHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TopicHandlerTestSuite) TestCreateTopic() {
	expected := &service.TopicResponse{
		ID:     uuid.New(),
		Title:  "Career growth",
		Status: models.TopicStatusBacklog,
	}

	suite.mockService.EXPECT().
		Create(suite.identity, gomock.Any()).
		DoAndReturn(func(_ auth.Identity, req *service.CreateTopicRequest) (*service.TopicResponse, error) {
			suite.Equal("Career growth", req.Title)
			return expected, nil
		})

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/topics", map[string]interface{}{
		"title": "Career growth",
	})

	var response service.TopicResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	suite.Equal(expected.ID, response.ID)
	suite.Equal(models.TopicStatusBacklog, response.Status)
}

func (suite *TopicHandlerTestSuite) TestListTopicsWithStatusFilter() {
	suite.mockService.EXPECT().
		List(suite.identity, "BACKLOG").
		Return([]service.TopicResponse{{ID: uuid.New(), Status: models.TopicStatusBacklog}}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/topics?status=BACKLOG", nil)

	var topics []service.TopicResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &topics)
	suite.Len(topics, 1)
}

func (suite *TopicHandlerTestSuite) TestUpdateTopicStatusGuard() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Update(suite.identity, id, gomock.Any()).
		Return(nil, apperrors.ErrTopicScheduled)

	recorder := suite.httpSuite.MakeRequest(http.MethodPatch, "/api/v1/topics/"+id.String(), map[string]interface{}{
		"status": "SCHEDULED",
	})

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	suite.Equal("TOPIC_SCHEDULED", body["code"])
}

func (suite *TopicHandlerTestSuite) TestArchiveTopic() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Archive(suite.identity, id).
		Return(&service.TopicResponse{ID: id, Status: models.TopicStatusArchived}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/topics/"+id.String()+"/archive", nil)

	var response service.TopicResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(models.TopicStatusArchived, response.Status)
}

func (suite *TopicHandlerTestSuite) TestDeleteTopicNotDeletable() {
	id := uuid.New()
	suite.mockService.EXPECT().
		Delete(suite.identity, id).
		Return(apperrors.ErrTopicNotDeletable)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/topics/"+id.String(), nil)

	var body map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusBadRequest, &body)
	suite.Equal("TOPIC_NOT_DELETABLE", body["code"])
}

func (suite *TopicHandlerTestSuite) TestGetTopicHidden() {
	id := uuid.New()
	suite.mockService.EXPECT().
		GetByID(suite.identity, id).
		Return(nil, apperrors.ErrTopicNotFound)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/topics/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "topic not found")
}

func TestTopicHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TopicHandlerTestSuite))
}
