package mongodb_test

import (
	"context"
	"testing"

	"campushub/internal/auth/adapter/persistence/mongodb"
	"campushub/internal/auth/domain/model"
	"campushub/internal/auth/domain/repository"
	"campushub/internal/auth/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepoTestSuite struct {
	suite.Suite
	client     *mongo.Client
	database   *mongo.Database
	repository repository.UserRepository
}

func (suite *UserRepoTestSuite) SetupSuite() {
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}
	if err := client.Ping(ctx, nil); err != nil {
		suite.T().Skip("MongoDB not available for testing")
		return
	}

	suite.client = client
	suite.database = client.Database("campushub_test_db")

	repo, err := mongodb.NewMongoUserRepository(suite.database)
	if err != nil {
		suite.T().Skip("Failed to create repository for testing")
		return
	}
	suite.repository = repo
}

func (suite *UserRepoTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.database.Drop(context.Background())
		suite.client.Disconnect(context.Background())
	}
}

func (suite *UserRepoTestSuite) SetupTest() {
	if suite.repository == nil {
		suite.T().Skip("repository not initialized")
	}
	suite.database.Collection("users").Drop(context.Background())
}

func (suite *UserRepoTestSuite) TestEnsureUser_Idempotent() {
	ctx := context.Background()
	user := &model.User{Name: "Student One", Email: "student@campus.edu"}

	insertedID, existed, err := suite.repository.EnsureUser(ctx, user)
	suite.Require().NoError(err)
	assert.False(suite.T(), existed)
	assert.NotEmpty(suite.T(), insertedID)

	// Second call with the same email never produces a second record
	secondID, existed, err := suite.repository.EnsureUser(ctx, &model.User{Name: "Student One", Email: "student@campus.edu"})
	suite.Require().NoError(err)
	assert.True(suite.T(), existed)
	assert.Empty(suite.T(), secondID)

	users, err := suite.repository.ListUsers(ctx, "")
	suite.Require().NoError(err)
	assert.Len(suite.T(), users, 1)
}

func (suite *UserRepoTestSuite) TestGetUserByEmail_NotFound() {
	_, err := suite.repository.GetUserByEmail(context.Background(), "missing@campus.edu")
	assert.ErrorIs(suite.T(), err, usecase.ErrUserNotFound)
}

func (suite *UserRepoTestSuite) TestPromoteToAdmin() {
	ctx := context.Background()
	insertedID, _, err := suite.repository.EnsureUser(ctx, &model.User{Name: "Student Two", Email: "two@campus.edu", Role: model.RoleUser})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.PromoteToAdmin(ctx, insertedID))

	user, err := suite.repository.GetUserByEmail(ctx, "two@campus.edu")
	suite.Require().NoError(err)
	assert.True(suite.T(), user.IsAdmin())
}

func (suite *UserRepoTestSuite) TestPromoteToAdmin_InvalidID() {
	err := suite.repository.PromoteToAdmin(context.Background(), "not-an-object-id")
	assert.ErrorIs(suite.T(), err, usecase.ErrInvalidID)
}

func (suite *UserRepoTestSuite) TestListUsers_Search() {
	ctx := context.Background()
	_, _, err := suite.repository.EnsureUser(ctx, &model.User{Name: "Alice", Email: "alice@campus.edu"})
	suite.Require().NoError(err)
	_, _, err = suite.repository.EnsureUser(ctx, &model.User{Name: "Bob", Email: "bob@campus.edu"})
	suite.Require().NoError(err)

	users, err := suite.repository.ListUsers(ctx, "ali")
	suite.Require().NoError(err)
	suite.Require().Len(users, 1)
	assert.Equal(suite.T(), "Alice", users[0].Name)
}

func (suite *UserRepoTestSuite) TestDeleteUser() {
	ctx := context.Background()
	insertedID, _, err := suite.repository.EnsureUser(ctx, &model.User{Name: "Temp", Email: "temp@campus.edu"})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.DeleteUser(ctx, insertedID))

	err = suite.repository.DeleteUser(ctx, insertedID)
	assert.ErrorIs(suite.T(), err, usecase.ErrUserNotFound)
}

func TestUserRepoTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepoTestSuite))
}
