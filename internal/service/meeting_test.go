package service_test

import (
	"testing"
	"time"

	"oneonone-backend/internal/auth"
	"oneonone-backend/internal/database/models"
	apperrors "oneonone-backend/internal/errors"
	"oneonone-backend/internal/mocks"
	"oneonone-backend/internal/notify"
	"oneonone-backend/internal/repository"
	"oneonone-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// MeetingServiceTestSuite defines the test suite for MeetingService
type MeetingServiceTestSuite struct {
	suite.Suite
	ctrl                 *gomock.Controller
	mockMeetingRepo      *mocks.MockMeetingRepositoryInterface
	mockRelationshipRepo *mocks.MockRelationshipRepositoryInterface
	mockMeetingTopicRepo *mocks.MockMeetingTopicRepositoryInterface
	meetingService       *service.MeetingService

	leader   auth.Identity
	ic       *models.User
	rel      *models.Relationship
	icID     uuid.UUID
	leaderID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *MeetingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMeetingRepo = mocks.NewMockMeetingRepositoryInterface(suite.ctrl)
	suite.mockRelationshipRepo = mocks.NewMockRelationshipRepositoryInterface(suite.ctrl)
	suite.mockMeetingTopicRepo = mocks.NewMockMeetingTopicRepositoryInterface(suite.ctrl)

	suite.meetingService = service.NewMeetingService(
		suite.mockMeetingRepo,
		suite.mockRelationshipRepo,
		suite.mockMeetingTopicRepo,
		notify.Noop{},
		validator.New(),
	)

	suite.leaderID = uuid.New()
	suite.icID = uuid.New()
	suite.leader = auth.Identity{UserID: suite.leaderID, Role: models.UserRoleLeader}
	suite.ic = &models.User{
		BaseModel: models.BaseModel{ID: suite.icID},
		FirstName: "Dana",
		LastName:  "Levi",
		Email:     "dana@example.com",
		Role:      models.UserRoleIC,
	}
	suite.rel = &models.Relationship{
		BaseModel: models.BaseModel{ID: uuid.New()},
		LeaderID:  suite.leaderID,
		ICID:      suite.icID,
		IC:        suite.ic,
	}
}

// TearDownTest cleans up after each test
func (suite *MeetingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateMeeting tests scheduling a single meeting
func (suite *MeetingServiceTestSuite) TestCreateMeeting() {
	scheduledAt := time.Now().Add(48 * time.Hour)
	req := &service.CreateMeetingRequest{ICID: suite.icID, ScheduledAt: scheduledAt}

	suite.mockRelationshipRepo.EXPECT().
		FindByLeaderAndIC(suite.leaderID, suite.icID).
		Return(suite.rel, nil).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		CreateChecked(gomock.Any()).
		DoAndReturn(func(meeting *models.Meeting) (*models.Meeting, error) {
			assert.True(suite.T(), meeting.ScheduledAt.Equal(scheduledAt))
			return nil, nil
		}).
		Times(1)

	response, err := suite.meetingService.Create(suite.leader, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), response)
	assert.Equal(suite.T(), "1:1 with Dana Levi", response.Title)
	assert.Equal(suite.T(), models.MeetingStatusScheduled, response.Status)
	assert.Equal(suite.T(), suite.rel.ID, response.RelationshipID)
}

// TestCreateMeetingTooSoon tests the lead-time floor
func (suite *MeetingServiceTestSuite) TestCreateMeetingTooSoon() {
	req := &service.CreateMeetingRequest{
		ICID:        suite.icID,
		ScheduledAt: time.Now().Add(time.Minute),
	}

	suite.mockRelationshipRepo.EXPECT().
		FindByLeaderAndIC(suite.leaderID, suite.icID).
		Return(suite.rel, nil).
		Times(1)

	response, err := suite.meetingService.Create(suite.leader, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingInPast)
}

// TestCreateMeetingConflict tests overlap rejection with the conflicting IC named
func (suite *MeetingServiceTestSuite) TestCreateMeetingConflict() {
	scheduledAt := time.Now().Add(48 * time.Hour)
	req := &service.CreateMeetingRequest{ICID: suite.icID, ScheduledAt: scheduledAt}

	other := &models.User{FirstName: "Omri", LastName: "Katz", Role: models.UserRoleIC}
	conflicting := &models.Meeting{
		ScheduledAt:  scheduledAt.Add(-30 * time.Minute),
		Status:       models.MeetingStatusScheduled,
		Relationship: &models.Relationship{IC: other},
	}

	suite.mockRelationshipRepo.EXPECT().
		FindByLeaderAndIC(suite.leaderID, suite.icID).
		Return(suite.rel, nil).
		Times(1)
	// The checked insert reports the occupant and persists nothing; no
	// separate Create call may follow.
	suite.mockMeetingRepo.EXPECT().
		CreateChecked(gomock.Any()).
		Return(conflicting, nil).
		Times(1)

	response, err := suite.meetingService.Create(suite.leader, req)

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), "MEETING_CONFLICT", apperrors.BadRequestCode(err))
	assert.Contains(suite.T(), err.Error(), "Omri Katz")
}

// TestCreateMeetingNoRelationship tests scheduling with an IC the caller does not lead
func (suite *MeetingServiceTestSuite) TestCreateMeetingNoRelationship() {
	req := &service.CreateMeetingRequest{
		ICID:        suite.icID,
		ScheduledAt: time.Now().Add(48 * time.Hour),
	}

	suite.mockRelationshipRepo.EXPECT().
		FindByLeaderAndIC(suite.leaderID, suite.icID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	response, err := suite.meetingService.Create(suite.leader, req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRelationshipNotFound)
}

// TestGenerateSeries tests creating a weekly series
func (suite *MeetingServiceTestSuite) TestGenerateSeries() {
	req := &service.GenerateSeriesRequest{
		ICID:      suite.icID,
		Frequency: models.FrequencyWeekly,
		DayOfWeek: int(time.Now().AddDate(0, 0, 2).Weekday()),
		Time:      "10:00",
		Count:     4,
	}

	suite.mockRelationshipRepo.EXPECT().
		FindByLeaderAndIC(suite.leaderID, suite.icID).
		Return(suite.rel, nil).
		Times(1)
	var created []models.Meeting
	suite.mockMeetingRepo.EXPECT().
		CreateBatchChecked(gomock.Any()).
		DoAndReturn(func(meetings []models.Meeting) ([]repository.SlotConflict, error) {
			created = meetings
			return nil, nil
		}).
		Times(1)

	responses, err := suite.meetingService.GenerateSeries(suite.leader, req)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 4)
	assert.Len(suite.T(), created, 4)
	for i := 1; i < len(created); i++ {
		assert.Equal(suite.T(), created[i-1].ScheduledAt.AddDate(0, 0, 7), created[i].ScheduledAt)
	}
	for _, m := range created {
		assert.Equal(suite.T(), "1:1 with Dana Levi", m.Title)
		assert.Equal(suite.T(), models.MeetingStatusScheduled, m.Status)
	}
}

// TestGenerateSeriesConflicts tests that any conflict aborts the whole series
func (suite *MeetingServiceTestSuite) TestGenerateSeriesConflicts() {
	req := &service.GenerateSeriesRequest{
		ICID:      suite.icID,
		Frequency: models.FrequencyBiweekly,
		DayOfWeek: 2,
		Time:      "10:00",
		Count:     3,
	}

	other := &models.User{FirstName: "Omri", LastName: "Katz"}

	suite.mockRelationshipRepo.EXPECT().
		FindByLeaderAndIC(suite.leaderID, suite.icID).
		Return(suite.rel, nil).
		Times(1)
	// The second candidate collides; the batch insert reports the taken
	// slot and persists nothing.
	suite.mockMeetingRepo.EXPECT().
		CreateBatchChecked(gomock.Any()).
		DoAndReturn(func(meetings []models.Meeting) ([]repository.SlotConflict, error) {
			return []repository.SlotConflict{{
				SlotAt: meetings[1].ScheduledAt,
				Meeting: models.Meeting{
					Status:       models.MeetingStatusScheduled,
					Relationship: &models.Relationship{IC: other},
				},
			}}, nil
		}).
		Times(1)

	responses, err := suite.meetingService.GenerateSeries(suite.leader, req)

	assert.Nil(suite.T(), responses)
	assert.Equal(suite.T(), "MEETING_CONFLICTS", apperrors.BadRequestCode(err))
	assert.Contains(suite.T(), err.Error(), "Omri Katz")
}

// TestGenerateSeriesInvalidTime tests rejecting a malformed time of day
func (suite *MeetingServiceTestSuite) TestGenerateSeriesInvalidTime() {
	req := &service.GenerateSeriesRequest{
		ICID:      suite.icID,
		Frequency: models.FrequencyWeekly,
		DayOfWeek: 2,
		Time:      "10am",
		Count:     3,
	}

	responses, err := suite.meetingService.GenerateSeries(suite.leader, req)

	assert.Nil(suite.T(), responses)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateMeetingNotCreator tests that the IC side cannot reschedule
func (suite *MeetingServiceTestSuite) TestUpdateMeetingNotCreator() {
	meeting := suite.scheduledMeeting()
	icIdentity := auth.Identity{UserID: suite.icID, Role: models.UserRoleIC}
	newTitle := "renamed"

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)

	response, err := suite.meetingService.Update(icIdentity, meeting.ID, &service.UpdateMeetingRequest{Title: &newTitle})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotMeetingCreator)
}

// TestUpdateMeetingCompleted tests that completed meetings reject changes
func (suite *MeetingServiceTestSuite) TestUpdateMeetingCompleted() {
	meeting := suite.scheduledMeeting()
	meeting.Status = models.MeetingStatusCompleted
	newTitle := "renamed"

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)

	response, err := suite.meetingService.Update(suite.leader, meeting.ID, &service.UpdateMeetingRequest{Title: &newTitle})

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingCompleted)
}

// TestRescheduleExcludesSelf tests that a reschedule does not conflict with
// the meeting's own current slot
func (suite *MeetingServiceTestSuite) TestRescheduleExcludesSelf() {
	meeting := suite.scheduledMeeting()
	newTime := time.Now().Add(72 * time.Hour)

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		UpdateChecked(gomock.Any()).
		DoAndReturn(func(m *models.Meeting) (*models.Meeting, error) {
			assert.Equal(suite.T(), meeting.ID, m.ID)
			assert.True(suite.T(), m.ScheduledAt.Equal(newTime))
			return nil, nil
		}).
		Times(1)

	response, err := suite.meetingService.Update(suite.leader, meeting.ID, &service.UpdateMeetingRequest{ScheduledAt: &newTime})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newTime, response.ScheduledAt)
}

// TestRescheduleConflict tests that a taken slot blocks the reschedule
func (suite *MeetingServiceTestSuite) TestRescheduleConflict() {
	meeting := suite.scheduledMeeting()
	newTime := time.Now().Add(72 * time.Hour)
	other := &models.User{FirstName: "Omri", LastName: "Katz"}

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		UpdateChecked(gomock.Any()).
		Return(&models.Meeting{
			ScheduledAt:  newTime.Add(30 * time.Minute),
			Status:       models.MeetingStatusScheduled,
			Relationship: &models.Relationship{IC: other},
		}, nil).
		Times(1)

	response, err := suite.meetingService.Update(suite.leader, meeting.ID, &service.UpdateMeetingRequest{ScheduledAt: &newTime})

	assert.Nil(suite.T(), response)
	assert.Equal(suite.T(), "MEETING_CONFLICT", apperrors.BadRequestCode(err))
}

// TestCompleteMeeting tests completion with unresolved topics reported
func (suite *MeetingServiceTestSuite) TestCompleteMeeting() {
	meeting := suite.scheduledMeeting()

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)
	suite.mockMeetingRepo.EXPECT().
		Complete(meeting).
		Return(int64(2), nil).
		Times(1)

	response, err := suite.meetingService.Complete(suite.leader, meeting.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), response.UnresolvedCount)
}

// TestCompleteMeetingTwice tests that completion is terminal
func (suite *MeetingServiceTestSuite) TestCompleteMeetingTwice() {
	meeting := suite.scheduledMeeting()
	meeting.Status = models.MeetingStatusCompleted

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)

	response, err := suite.meetingService.Complete(suite.leader, meeting.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingCompleted)
}

// TestDeleteMeetingWithTopics tests that a non-empty agenda blocks deletion
func (suite *MeetingServiceTestSuite) TestDeleteMeetingWithTopics() {
	meeting := suite.scheduledMeeting()

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)
	suite.mockMeetingTopicRepo.EXPECT().
		CountByMeeting(meeting.ID).
		Return(int64(1), nil).
		Times(1)

	err := suite.meetingService.Delete(suite.leader, meeting.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingHasTopics)
}

// TestDeleteMeetingNotScheduled tests that only scheduled meetings can be deleted
func (suite *MeetingServiceTestSuite) TestDeleteMeetingNotScheduled() {
	meeting := suite.scheduledMeeting()
	meeting.Status = models.MeetingStatusInProgress

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)

	err := suite.meetingService.Delete(suite.leader, meeting.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotScheduled)
}

// TestGetMeetingHiddenFromOutsiders tests relationship scoping of reads
func (suite *MeetingServiceTestSuite) TestGetMeetingHiddenFromOutsiders() {
	meeting := suite.scheduledMeeting()
	outsider := auth.Identity{UserID: uuid.New(), Role: models.UserRoleLeader}

	suite.mockMeetingRepo.EXPECT().
		GetWithRelationship(meeting.ID).
		Return(meeting, nil).
		Times(1)

	response, err := suite.meetingService.GetByID(outsider, meeting.ID)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMeetingNotFound)
}

func (suite *MeetingServiceTestSuite) scheduledMeeting() *models.Meeting {
	return &models.Meeting{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		RelationshipID: suite.rel.ID,
		CreatedByID:    suite.leaderID,
		Title:          "1:1 with Dana Levi",
		ScheduledAt:    time.Now().Add(48 * time.Hour),
		Status:         models.MeetingStatusScheduled,
		Relationship:   suite.rel,
	}
}

func TestMeetingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MeetingServiceTestSuite))
}
