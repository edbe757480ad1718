//go:build integration
// +build integration

package repository

import (
	"testing"

	"oneonone-backend/internal/database/models"
	"oneonone-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RelationshipRepositoryTestSuite tests pairings against Postgres
type RelationshipRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *RelationshipRepository

	leader *models.User
	ic     *models.User
}

// SetupSuite runs before all tests in the suite
func (suite *RelationshipRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewRelationshipRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *RelationshipRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a leader and an IC before each test
func (suite *RelationshipRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	users := testutils.NewUserFactory()
	suite.leader = users.Leader()
	suite.ic = users.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.leader).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.ic).Error)
}

// TearDownTest runs after each test
func (suite *RelationshipRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *RelationshipRepositoryTestSuite) TestFindByIC() {
	rel := testutils.NewRelationshipFactory().Create(suite.leader.ID, suite.ic.ID)
	suite.NoError(suite.repo.Create(rel))

	found, err := suite.repo.FindByIC(suite.ic.ID)
	suite.NoError(err)
	suite.Equal(rel.ID, found.ID)
	suite.NotNil(found.Leader)
	suite.Equal(suite.leader.ID, found.Leader.ID)

	_, err = suite.repo.FindByIC(suite.leader.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

func (suite *RelationshipRepositoryTestSuite) TestICUniquePairing() {
	rel := testutils.NewRelationshipFactory().Create(suite.leader.ID, suite.ic.ID)
	suite.NoError(suite.repo.Create(rel))

	other := testutils.NewUserFactory().Leader()
	suite.NoError(suite.baseTestSuite.DB.Create(other).Error)

	// One leader per IC: a second pairing for the same IC is rejected.
	dup := testutils.NewRelationshipFactory().Create(other.ID, suite.ic.ID)
	suite.Error(suite.repo.Create(dup))
}

func (suite *RelationshipRepositoryTestSuite) TestListByLeader() {
	rels, err := suite.repo.ListByLeader(suite.leader.ID)
	suite.NoError(err)
	suite.Empty(rels)

	suite.NoError(suite.repo.Create(testutils.NewRelationshipFactory().Create(suite.leader.ID, suite.ic.ID)))

	second := testutils.NewUserFactory().Create()
	suite.NoError(suite.baseTestSuite.DB.Create(second).Error)
	suite.NoError(suite.repo.Create(testutils.NewRelationshipFactory().Create(suite.leader.ID, second.ID)))

	rels, err = suite.repo.ListByLeader(suite.leader.ID)
	suite.NoError(err)
	suite.Len(rels, 2)
}

func TestRelationshipRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RelationshipRepositoryTestSuite))
}
