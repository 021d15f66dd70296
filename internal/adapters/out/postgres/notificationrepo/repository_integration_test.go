package notificationrepo_test

import (
	"context"
	"testing"
	"time"

	"fooddispatch/internal/adapters/out/postgres/notificationrepo"
	"fooddispatch/internal/core/domain/model/kernel"
	"fooddispatch/internal/core/domain/model/notification"
	"fooddispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NotificationRepositoryIntegrationTestSuite verifies outbox persistence
// against a real PostgreSQL database.
type NotificationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *notificationrepo.GormNotificationRepository
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&notificationrepo.NotificationDTO{}))
	suite.repository = notificationrepo.NewGormNotificationRepository(db)
}

func (suite *NotificationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE notifications").Error)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *NotificationRepositoryIntegrationTestSuite) addNotification(event notification.Event) *notification.Notification {
	note, err := notification.NewNotification(kernel.NewUUID(), kernel.NewUUID(), event)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(context.Background(), note))
	return note
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestAddAndGetUnsent() {
	first := suite.addNotification(notification.EventJobClaimed)
	second := suite.addNotification(notification.EventOrderDelivered)

	unsent, err := suite.repository.GetUnsent(context.Background(), 10)

	suite.Require().NoError(err)
	suite.Require().Len(unsent, 2)
	suite.True(unsent[0].ID().IsEqual(first.ID()), "oldest row should come first")
	suite.True(unsent[1].ID().IsEqual(second.ID()))
	suite.False(unsent[0].IsSent())
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetUnsent_RespectsLimit() {
	for range 5 {
		suite.addNotification(notification.EventOrderCancelled)
	}

	unsent, err := suite.repository.GetUnsent(context.Background(), 3)

	suite.Require().NoError(err)
	suite.Len(unsent, 3)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkSent_RemovesFromUnsent() {
	ctx := context.Background()
	note := suite.addNotification(notification.EventJobClaimed)

	err := suite.repository.MarkSent(ctx, note.ID())
	suite.Require().NoError(err)

	unsent, err := suite.repository.GetUnsent(ctx, 10)
	suite.Require().NoError(err)
	suite.Empty(unsent)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestMarkSent_Twice_ReturnsNotFound() {
	ctx := context.Background()
	note := suite.addNotification(notification.EventJobClaimed)
	suite.Require().NoError(suite.repository.MarkSent(ctx, note.ID()))

	err := suite.repository.MarkSent(ctx, note.ID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *NotificationRepositoryIntegrationTestSuite) TestGetUnsent_PreservesSentAtStamp() {
	ctx := context.Background()
	note := suite.addNotification(notification.EventOrderDelivered)
	before := time.Now().UTC().Add(-time.Second)
	suite.Require().NoError(suite.repository.MarkSent(ctx, note.ID()))

	var dto notificationrepo.NotificationDTO
	suite.Require().NoError(suite.db.First(&dto, "id = ?", note.ID().Bytes()).Error)
	suite.Require().NotNil(dto.SentAt)
	suite.True(dto.SentAt.After(before))
}

func TestNotificationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryIntegrationTestSuite))
}
