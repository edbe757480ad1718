package service_test

import (
	"encoding/json"
	"testing"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/mocks"
	"oneonone-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TopicServiceTestSuite defines the test suite for TopicService
type TopicServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockTopicRepo *mocks.MockTopicRepositoryInterface
	topicService  *service.TopicService

	owner auth.Identity
}

// SetupTest sets up the test suite
func (suite *TopicServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockTopicRepo = mocks.NewMockTopicRepositoryInterface(suite.ctrl)
	suite.topicService = service.NewTopicService(suite.mockTopicRepo, validator.New())
	suite.owner = auth.Identity{UserID: uuid.New(), Role: models.UserRoleIC}
}

// TearDownTest cleans up after each test
func (suite *TopicServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *TopicServiceTestSuite) ownedTopic(status models.TopicStatus) *models.Topic {
	return &models.Topic{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OwnerID:   suite.owner.UserID,
		Title:     "quarterly goals",
		Status:    status,
	}
}

// TestCreateTopic tests creating a backlog topic
func (suite *TopicServiceTestSuite) TestCreateTopic() {
	req := &service.CreateTopicRequest{
		Title:   "quarterly goals",
		Content: json.RawMessage(`{"blocks":[]}`),
	}

	suite.mockTopicRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)

	response, err := suite.topicService.Create(suite.owner, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TopicStatusBacklog, response.Status)
	assert.Equal(suite.T(), suite.owner.UserID, response.OwnerID)
}

// TestCreateTopicValidationError tests rejecting a topic without a title
func (suite *TopicServiceTestSuite) TestCreateTopicValidationError() {
	response, err := suite.topicService.Create(suite.owner, &service.CreateTopicRequest{})

	assert.Nil(suite.T(), response)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestGetTopicHiddenFromOthers tests owner scoping of reads
func (suite *TopicServiceTestSuite) TestGetTopicHiddenFromOthers() {
	topic := suite.ownedTopic(models.TopicStatusBacklog)
	stranger := auth.Identity{UserID: uuid.New(), Role: models.UserRoleIC}

	suite.mockTopicRepo.EXPECT().GetByID(topic.ID).Return(topic, nil).Times(1)

	response, err := suite.topicService.GetByID(stranger, topic.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotFound)
}

// TestListTopicsInvalidStatus tests rejecting an unknown status filter
func (suite *TopicServiceTestSuite) TestListTopicsInvalidStatus() {
	responses, err := suite.topicService.List(suite.owner, "PENDING")

	assert.Nil(suite.T(), responses)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateTopicStatusGuard tests that meeting-driven statuses cannot be
// set by hand
func (suite *TopicServiceTestSuite) TestUpdateTopicStatusGuard() {
	for _, blocked := range []models.TopicStatus{models.TopicStatusScheduled, models.TopicStatusDiscussed} {
		topic := suite.ownedTopic(models.TopicStatusBacklog)
		suite.mockTopicRepo.EXPECT().GetByID(topic.ID).Return(topic, nil).Times(1)

		status := blocked
		response, err := suite.topicService.Update(suite.owner, topic.ID, &service.UpdateTopicRequest{Status: &status})

		assert.Nil(suite.T(), response, string(blocked))
		assert.ErrorIs(suite.T(), err, apperrors.ErrTopicScheduled)
	}
}

// TestArchiveTopic tests archiving
func (suite *TopicServiceTestSuite) TestArchiveTopic() {
	topic := suite.ownedTopic(models.TopicStatusBacklog)

	suite.mockTopicRepo.EXPECT().GetByID(topic.ID).Return(topic, nil).Times(1)
	suite.mockTopicRepo.EXPECT().Update(topic).Return(nil).Times(1)

	response, err := suite.topicService.Archive(suite.owner, topic.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.TopicStatusArchived, response.Status)
}

// TestDeleteTopicWithHistory tests that a topic with meeting links cannot be
// deleted
func (suite *TopicServiceTestSuite) TestDeleteTopicWithHistory() {
	topic := suite.ownedTopic(models.TopicStatusBacklog)

	suite.mockTopicRepo.EXPECT().GetByID(topic.ID).Return(topic, nil).Times(1)
	suite.mockTopicRepo.EXPECT().CountMeetingLinks(topic.ID).Return(int64(2), nil).Times(1)

	err := suite.topicService.Delete(suite.owner, topic.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotDeletable)
}

// TestDeleteTopicNotBacklog tests that only backlog topics can be deleted
func (suite *TopicServiceTestSuite) TestDeleteTopicNotBacklog() {
	topic := suite.ownedTopic(models.TopicStatusScheduled)

	suite.mockTopicRepo.EXPECT().GetByID(topic.ID).Return(topic, nil).Times(1)

	err := suite.topicService.Delete(suite.owner, topic.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicNotDeletable)
}

// TestDeleteTopic tests deleting a fresh backlog topic
func (suite *TopicServiceTestSuite) TestDeleteTopic() {
	topic := suite.ownedTopic(models.TopicStatusBacklog)

	suite.mockTopicRepo.EXPECT().GetByID(topic.ID).Return(topic, nil).Times(1)
	suite.mockTopicRepo.EXPECT().CountMeetingLinks(topic.ID).Return(int64(0), nil).Times(1)
	suite.mockTopicRepo.EXPECT().Delete(topic.ID).Return(nil).Times(1)

	err := suite.topicService.Delete(suite.owner, topic.ID)

	assert.NoError(suite.T(), err)
}

func TestTopicServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TopicServiceTestSuite))
}
