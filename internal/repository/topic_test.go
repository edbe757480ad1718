//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"oneonone-backend/internal/database/models"
	"oneonone-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TopicRepositoryTestSuite tests the TopicRepository against Postgres
type TopicRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TopicRepository

	owner *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *TopicRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTopicRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *TopicRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds one owner before each test
func (suite *TopicRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.owner = testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.owner).Error)
}

// TearDownTest runs after each test
func (suite *TopicRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *TopicRepositoryTestSuite) TestListByOwnerStatusFilter() {
	topics := testutils.NewTopicFactory()
	backlog := topics.Create(suite.owner.ID)
	archived := topics.WithStatus(suite.owner.ID, models.TopicStatusArchived)
	suite.NoError(suite.baseTestSuite.DB.Create(backlog).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(archived).Error)

	all, err := suite.repo.ListByOwner(suite.owner.ID, nil)
	suite.NoError(err)
	suite.Len(all, 2)

	status := models.TopicStatusBacklog
	filtered, err := suite.repo.ListByOwner(suite.owner.ID, &status)
	suite.NoError(err)
	suite.Len(filtered, 1)
	suite.Equal(backlog.ID, filtered[0].ID)
}

func (suite *TopicRepositoryTestSuite) TestCountMeetingLinks() {
	topic := testutils.NewTopicFactory().Create(suite.owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(topic).Error)

	count, err := suite.repo.CountMeetingLinks(topic.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	leader := testutils.NewUserFactory().Leader()
	suite.NoError(suite.baseTestSuite.DB.Create(leader).Error)
	rel := testutils.NewRelationshipFactory().Create(leader.ID, suite.owner.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(rel).Error)
	meeting := testutils.NewMeetingFactory().Create(rel.ID, leader.ID, time.Now().Add(24*time.Hour))
	suite.NoError(suite.baseTestSuite.DB.Create(meeting).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(&models.MeetingTopic{
		MeetingID: meeting.ID,
		TopicID:   topic.ID,
		AddedByID: suite.owner.ID,
	}).Error)

	count, err = suite.repo.CountMeetingLinks(topic.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

func TestTopicRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TopicRepositoryTestSuite))
}
