package shipmentrepo_test

import (
	"context"
	"testing"
	"time"

	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id any, aggregate any) {
	m.Called(id, aggregate)
}

// ShipmentRepositoryIntegrationTestSuite provides integration tests for
// ShipmentRepository using PostgreSQL containers to verify persistence,
// tracking number reservation and optimistic concurrency behavior.
type ShipmentRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *shipmentrepo.GormShipmentRepository
	tracker    *MockAggregateTracker
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.EventDTO{},
		&shipmentrepo.TrackingReservationDTO{},
	))
}

func (suite *ShipmentRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE shipments, shipment_events, issued_tracking_numbers").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = shipmentrepo.NewGormShipmentRepository(suite.db, suite.tracker)
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ValidShipment_Success() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("SH10000001")
	suite.tracker.On("TrackAggregate", "SH10000001", testShipment).Once()

	err := suite.repository.Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Verify shipment, its first event and the reservation were persisted
	suite.assertShipmentCount(1)
	suite.assertEventCount("SH10000001", 1)
	suite.assertReservationExists("SH10000001")

	// Uncommitted events are flushed by a successful Add
	suite.Empty(testShipment.UncommittedEvents())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestAdd_ReservedTrackingNumber_ReturnsDuplicateValueError() {
	ctx := context.Background()

	first := suite.createTestShipment("SH10000002")
	suite.tracker.On("TrackAggregate", "SH10000002", first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	// A second shipment with the same number must not get past the reservation
	second := suite.createTestShipment("SH10000002")
	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)

	var dupErr *errs.DuplicateValueError
	suite.Require().ErrorAs(err, &dupErr)
	suite.Equal("trackingNumber", dupErr.ParamName)

	suite.assertShipmentCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_ExistingShipment_RoundTripsAllFields() {
	ctx := context.Background()

	original := suite.createTestShipment("SH10000003")
	suite.Require().NoError(original.SchedulePickup(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)))
	suite.Require().NoError(original.AssignHub("hub-north"))
	suite.Require().NoError(original.AssignRoute("route-7"))

	suite.tracker.On("TrackAggregate", "SH10000003", original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	trackingNumber, err := kernel.NewTrackingNumber("SH10000003")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)

	suite.Equal(original.TrackingNumber().String(), retrieved.TrackingNumber().String())
	suite.Equal(original.Sender().Name(), retrieved.Sender().Name())
	suite.Equal(original.Receiver().Address(), retrieved.Receiver().Address())
	suite.Equal(original.PackageDetails(), retrieved.PackageDetails())
	suite.InDelta(original.Weight().Kg(), retrieved.Weight().Kg(), 0.0001)
	suite.Equal(original.ServiceType(), retrieved.ServiceType())
	suite.Equal(original.Cost().Cents(), retrieved.Cost().Cents())
	suite.Equal("hub-north", retrieved.HubKey())
	suite.Equal("route-7", retrieved.RouteKey())
	suite.Require().NotNil(retrieved.PickupDate())
	suite.Equal(original.PickupDate().UTC(), retrieved.PickupDate().UTC())
	suite.Equal(shipment.Created, retrieved.Status())
	suite.Len(retrieved.Events(), 1)
	suite.Equal(1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestGet_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	trackingNumber, err := kernel.NewTrackingNumber("SH99999999")
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, trackingNumber)
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_Transition_PersistsStatusAndEvents() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("SH10000004")
	suite.tracker.On("TrackAggregate", "SH10000004", mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	trackingNumber, err := kernel.NewTrackingNumber("SH10000004")
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.TransitionTo(shipment.InTransit, "Springfield depot", "picked up"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, reloaded.Status())
	suite.Equal(2, reloaded.Version())
	suite.Require().Len(reloaded.Events(), 2)
	suite.Equal("Springfield depot", reloaded.Events()[1].Location())
	suite.Equal(shipment.InTransit, reloaded.Events()[1].Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflictError() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("SH10000005")
	suite.tracker.On("TrackAggregate", "SH10000005", mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	trackingNumber, err := kernel.NewTrackingNumber("SH10000005")
	suite.Require().NoError(err)

	// Two readers load the same version, both transition, only one may win
	winner, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	loser, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)

	suite.Require().NoError(winner.TransitionTo(shipment.InTransit, "", ""))
	suite.Require().NoError(suite.repository.Update(ctx, winner))

	suite.Require().NoError(loser.TransitionTo(shipment.Cancelled, "", "customer request"))
	err = suite.repository.Update(ctx, loser)
	suite.Require().Error(err)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The winner's write is the one that stuck
	reloaded, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Equal(shipment.InTransit, reloaded.Status())
	suite.Equal(2, reloaded.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("SH10000006")

	err := suite.repository.Update(ctx, testShipment)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_ExistingShipment_KeepsReservation() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("SH10000007")
	suite.tracker.On("TrackAggregate", "SH10000007", testShipment).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	trackingNumber, err := kernel.NewTrackingNumber("SH10000007")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repository.Delete(ctx, trackingNumber))

	// Shipment and events are gone
	suite.assertShipmentCount(0)
	suite.assertEventCount("SH10000007", 0)

	// The reservation must survive, so a later Add with the same number fails
	suite.assertReservationExists("SH10000007")

	recreated := suite.createTestShipment("SH10000007")
	err = suite.repository.Add(ctx, recreated)
	suite.Require().Error(err)

	var dupErr *errs.DuplicateValueError
	suite.Require().ErrorAs(err, &dupErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestDelete_NonExistentShipment_ReturnsNotFoundError() {
	ctx := context.Background()

	trackingNumber, err := kernel.NewTrackingNumber("SH88888888")
	suite.Require().NoError(err)

	err = suite.repository.Delete(ctx, trackingNumber)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ShipmentRepositoryIntegrationTestSuite) TestUpdate_AppendsOnlyUncommittedEvents() {
	ctx := context.Background()

	testShipment := suite.createTestShipment("SH10000008")
	suite.tracker.On("TrackAggregate", "SH10000008", mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testShipment))

	trackingNumber, err := kernel.NewTrackingNumber("SH10000008")
	suite.Require().NoError(err)

	loaded, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.AddEvent("warehouse dock 3", "label printed"))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	// Second update over the reloaded aggregate must not duplicate history
	reloaded, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Require().NoError(reloaded.AddEvent("warehouse dock 3", "loaded on truck"))
	suite.Require().NoError(suite.repository.Update(ctx, reloaded))

	final, err := suite.repository.Get(ctx, trackingNumber)
	suite.Require().NoError(err)
	suite.Require().Len(final.Events(), 3)
	suite.Equal("label printed", final.Events()[1].Description())
	suite.Equal("loaded on truck", final.Events()[2].Description())

	suite.tracker.AssertExpectations(suite.T())
}

// createTestShipment creates a shipment with default values and the given
// tracking number.
func (suite *ShipmentRepositoryIntegrationTestSuite) createTestShipment(trackingNumber string) *shipment.Shipment {
	tn, err := kernel.NewTrackingNumber(trackingNumber)
	suite.Require().NoError(err)

	sender, err := shipment.NewParty("Ann Sender", "+1-555-0101", "1 First St, Springfield")
	suite.Require().NoError(err)
	receiver, err := shipment.NewParty("Bob Receiver", "+1-555-0202", "9 Ninth Ave, Shelbyville")
	suite.Require().NoError(err)

	weight, err := shipment.NewWeight(2.5)
	suite.Require().NoError(err)
	dimensions, err := shipment.NewDimensions(30, 20, 10)
	suite.Require().NoError(err)

	cost, err := kernel.NewMoneyFromFloat(25.99)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		tn, sender, receiver, "books", weight, dimensions, shipment.ServiceStandard, cost)
	suite.Require().NoError(err)
	return testShipment
}

// assertShipmentCount verifies the number of shipments in the database.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertShipmentCount(expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertEventCount verifies the number of persisted events for a shipment.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertEventCount(trackingNumber string, expected int) {
	var count int64
	err := suite.db.Model(&shipmentrepo.EventDTO{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertReservationExists verifies the tracking number reservation row is present.
func (suite *ShipmentRepositoryIntegrationTestSuite) assertReservationExists(trackingNumber string) {
	var count int64
	err := suite.db.Model(&shipmentrepo.TrackingReservationDTO{}).
		Where("tracking_number = ?", trackingNumber).
		Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func TestShipmentRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ShipmentRepositoryIntegrationTestSuite))
}
