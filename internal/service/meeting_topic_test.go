package service_test

import (
	"testing"
	"time"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/mocks"
	"oneonone-backend/internal/notify"
	"oneonone-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// MeetingTopicServiceTestSuite defines the test suite for MeetingTopicService
type MeetingTopicServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockMeetingTopicRepo *mocks.MockMeetingTopicRepositoryInterface
	mockMeetingRepo      *mocks.MockMeetingRepositoryInterface
	mockTopicRepo        *mocks.MockTopicRepositoryInterface
	meetingTopicService  *service.MeetingTopicService

	leader   auth.Identity
	icUser   auth.Identity
	leaderID uuid.UUID
	icID     uuid.UUID
	meeting  *models.Meeting
}

// SetupTest sets up the test suite
func (suite *MeetingTopicServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMeetingTopicRepo = mocks.NewMockMeetingTopicRepositoryInterface(suite.ctrl)
	suite.mockMeetingRepo = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.mockTopicRepo = mocks.NewMockTopicRepositoryInterface(suite.ctrl)

	suite.meetingTopicService = service.NewMeetingTopicService(
		suite.mockMeetingTopicRepo,
		suite.mockMeetingRepo,
		suite.mockTopicRepo,
		notify.Noop{},
		validator.New(),
	)

	suite.leaderID = uuid.New()
	suite.icID = uuid.New()
	suite.leader = auth.Identity{UserID: suite.leaderID, Role: models.UserRoleLeader}
	suite.icUser = auth.Identity{UserID: suite.icID, Role: models.UserRoleIC}
	suite.meeting = &models.Meeting{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CreatedByID: suite.leaderID,
		Title:       "1:1 with Dana Levi",
		ScheduledAt: time.Now().Add(48 * time.Hour),
		Status:      models.MeetingStatusScheduled,
		Relationship: &models.Relationship{
			LeaderID: suite.leaderID,
			ICID:     suite.icID,
		},
	}
}

// TearDownTest cleans up after each test
func (suite *MeetingTopicServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MeetingTopicServiceTestSuite) backlogTopic(ownerID uuid.UUID) *models.Topic {
	return &models.Topic{
		BaseModel: models.BaseModel{ID: uuid.New()},
		OwnerID:   ownerID,
		Title:     "career growth",
		Status:    models.TopicStatusBacklog,
	}
}

// TestAttachTopic tests putting a topic on the agenda
func (suite *MeetingTopicServiceTestSuite) TestAttachTopic() {
	topic := suite.backlogTopic(suite.icID)

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockTopicRepo.EXPECT().
		GetByID(topic.ID).
		Return(topic, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByMeetingAndTopic(suite.meeting.ID, topic.ID).
		Return(nil, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		Attach(gomock.Any()).
		DoAndReturn(func(mt *models.MeetingTopic) error {
			mt.Order = 0
			return nil
		}).
		Times(1)

	response, err := suite.meetingTopicService.Attach(suite.icUser, suite.meeting.ID, &service.AttachTopicRequest{TopicID: topic.ID})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), topic.ID, response.TopicID)
	assert.Equal(suite.T(), suite.icID, response.AddedByID)
	assert.Equal(suite.T(), "career growth", response.TopicTitle)
}

// TestAttachTopicDuplicate tests rejecting a second attachment of the same topic
func (suite *MeetingTopicServiceTestSuite) TestAttachTopicDuplicate() {
	topic := suite.backlogTopic(suite.icID)

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockTopicRepo.EXPECT().
		GetByID(topic.ID).
		Return(topic, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByMeetingAndTopic(suite.meeting.ID, topic.ID).
		Return(&models.MeetingTopic{MeetingID: suite.meeting.ID, TopicID: topic.ID}, nil).
		Times(1)

	response, err := suite.meetingTopicService.Attach(suite.icUser, suite.meeting.ID, &service.AttachTopicRequest{TopicID: topic.ID})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrTopicAlreadyScheduled)
}

// TestAttachTopicNotOwner tests that members can only attach their own topics
func (suite *MeetingTopicServiceTestSuite) TestAttachTopicNotOwner() {
	topic := suite.backlogTopic(suite.icID)

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockTopicRepo.EXPECT().
		GetByID(topic.ID).
		Return(topic, nil).
		Times(1)

	response, err := suite.meetingTopicService.Attach(suite.leader, suite.meeting.ID, &service.AttachTopicRequest{TopicID: topic.ID})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTopicOwner)
}

// TestAttachTopicCompletedMeeting tests that completed meetings reject attachments
func (suite *MeetingTopicServiceTestSuite) TestAttachTopicCompletedMeeting() {
	suite.meeting.Status = models.MeetingStatusCompleted
	topic := suite.backlogTopic(suite.icID)

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)

	response, err := suite.meetingTopicService.Attach(suite.icUser, suite.meeting.ID, &service.AttachTopicRequest{TopicID: topic.ID})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingCompleted)
}

// TestUpdateResolutionAliases tests the alias mapping on resolutions
func (suite *MeetingTopicServiceTestSuite) TestUpdateResolutionAliases() {
	testCases := []struct {
		input string
		want  models.Resolution
	}{
		{"DONE", models.ResolutionDone},
		{"DEFERRED", models.ResolutionNext},
		{"DROPPED", models.ResolutionBacklog},
		{"NEXT", models.ResolutionNext},
		{"BACKLOG", models.ResolutionBacklog},
	}

	for _, tc := range testCases {
		mt := &models.MeetingTopic{
			BaseModel: models.BaseModel{ID: uuid.New()},
			MeetingID: suite.meeting.ID,
			TopicID:   uuid.New(),
			AddedByID: suite.icID,
			Topic:     suite.backlogTopic(suite.icID),
		}

		suite.mockMeetingRepo.EXPECT().
			GetWithRelationship(suite.meeting.ID).
			Return(suite.meeting, nil).
			Times(1)
		suite.mockMeetingTopicRepo.EXPECT().
			GetByID(mt.ID).
			Return(mt, nil).
			Times(1)
		suite.mockMeetingTopicRepo.EXPECT().
			Update(mt).
			Return(nil).
			Times(1)

		input := tc.input
		response, err := suite.meetingTopicService.Update(suite.leader, suite.meeting.ID, mt.ID, &service.UpdateMeetingTopicRequest{Resolution: &input})

		assert.NoError(suite.T(), err, tc.input)
		assert.NotNil(suite.T(), response.Resolution)
		assert.Equal(suite.T(), tc.want, *response.Resolution, tc.input)
	}
}

// TestUpdateResolutionInvalid tests rejecting an unknown resolution
func (suite *MeetingTopicServiceTestSuite) TestUpdateResolutionInvalid() {
	mt := &models.MeetingTopic{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MeetingID: suite.meeting.ID,
		AddedByID: suite.icID,
	}

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByID(mt.ID).
		Return(mt, nil).
		Times(1)

	bad := "MAYBE"
	response, err := suite.meetingTopicService.Update(suite.leader, suite.meeting.ID, mt.ID, &service.UpdateMeetingTopicRequest{Resolution: &bad})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidResolution)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateResolutionCleared tests clearing a resolution back to unresolved
func (suite *MeetingTopicServiceTestSuite) TestUpdateResolutionCleared() {
	done := models.ResolutionDone
	mt := &models.MeetingTopic{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		MeetingID:  suite.meeting.ID,
		AddedByID:  suite.icID,
		Resolution: &done,
	}

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByID(mt.ID).
		Return(mt, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		Update(mt).
		Return(nil).
		Times(1)

	empty := ""
	response, err := suite.meetingTopicService.Update(suite.leader, suite.meeting.ID, mt.ID, &service.UpdateMeetingTopicRequest{Resolution: &empty})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), response.Resolution)
}

// TestDetachByAdder tests that the member who added a topic can remove it
func (suite *MeetingTopicServiceTestSuite) TestDetachByAdder() {
	mt := &models.MeetingTopic{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MeetingID: suite.meeting.ID,
		TopicID:   uuid.New(),
		AddedByID: suite.icID,
	}

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByID(mt.ID).
		Return(mt, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		Detach(mt).
		Return(nil).
		Times(1)

	err := suite.meetingTopicService.Detach(suite.icUser, suite.meeting.ID, mt.ID)

	assert.NoError(suite.T(), err)
}

// TestDetachByOtherMember tests that a member who neither added the topic
// nor created the meeting cannot remove it
func (suite *MeetingTopicServiceTestSuite) TestDetachByOtherMember() {
	// Meeting created by someone else, topic added by the leader.
	suite.meeting.CreatedByID = uuid.New()
	mt := &models.MeetingTopic{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MeetingID: suite.meeting.ID,
		AddedByID: suite.leaderID,
	}

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByID(mt.ID).
		Return(mt, nil).
		Times(1)

	err := suite.meetingTopicService.Detach(suite.icUser, suite.meeting.ID, mt.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotMeetingTopicRemover)
}

// TestListAgendaWrongMeeting tests that agenda entries are scoped to their meeting
func (suite *MeetingTopicServiceTestSuite) TestUpdateEntryWrongMeeting() {
	mt := &models.MeetingTopic{
		BaseModel: models.BaseModel{ID: uuid.New()},
		MeetingID: uuid.New(), // belongs to a different meeting
		AddedByID: suite.icID,
	}
	order := 1

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(suite.meeting.ID).
		Return(suite.meeting, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		GetByID(mt.ID).
		Return(mt, nil).
		Times(1)

	response, err := suite.meetingTopicService.Update(suite.leader, suite.meeting.ID, mt.ID, &service.UpdateMeetingTopicRequest{Order: &order})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingTopicNotFound)
}

func TestMeetingTopicServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingTopicServiceTestSuite))
}
