package postgres_test

import (
	"context"
	"fmt"
	"testing"

	postgres_adapter "logistics/internal/adapters/out/postgres"
	"logistics/internal/adapters/out/postgres/hubrepo"
	"logistics/internal/adapters/out/postgres/routerepo"
	"logistics/internal/adapters/out/postgres/shipmentrepo"
	"logistics/internal/adapters/out/postgres/userrepo"
	"logistics/internal/core/domain/model/account"
	"logistics/internal/core/domain/model/directory"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/shipment"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory

	trackingSeq int
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.EventDTO{},
		&shipmentrepo.TrackingReservationDTO{},
		&userrepo.UserDTO{},
		&hubrepo.HubDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteHubDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, shipment_events, issued_tracking_numbers, users, hubs, routes, route_hubs").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.UserRepository())
	suite.NotNil(uow1.HubRepository())
	suite.NotNil(uow1.RouteRepository())
	suite.NotNil(uow2.ShipmentRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_SingleRepositoryTransaction verifies repository operations
// within a single transaction boundary work correctly.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	// Visible within the transaction
	retrieved, err := uow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(testShipment.TrackingNumber().String(), retrieved.TrackingNumber().String())

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Visible after commit through a fresh unit of work
	newUow := suite.factory.Create()
	retrieved, err = newUow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(testShipment.TrackingNumber().String(), retrieved.TrackingNumber().String())
}

// TestUnitOfWork_MultiRepositoryTransaction verifies multiple repository operations
// within a single transaction work atomically.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_MultiRepositoryTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testHub := suite.createTestHub("hub-central")
	testRoute := suite.createTestRoute("route-1", []string{"hub-central"})
	testShipment := suite.createTestShipment()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.HubRepository().Add(ctx, testHub)
	suite.Require().NoError(err)

	err = uow.RouteRepository().Add(ctx, testRoute)
	suite.Require().NoError(err)

	suite.Require().NoError(testShipment.AssignHub("hub-central"))
	suite.Require().NoError(testShipment.AssignRoute("route-1"))
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Verify everything persisted with the references intact
	newUow := suite.factory.Create()

	retrievedHub, err := newUow.HubRepository().GetByKey(ctx, "hub-central")
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedHub)

	retrievedRoute, err := newUow.RouteRepository().GetByKey(ctx, "route-1")
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedRoute)
	suite.Equal([]string{"hub-central"}, retrievedRoute.HubKeys())

	retrievedShipment, err := newUow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal("hub-central", retrievedShipment.HubKey())
	suite.Equal("route-1", retrievedShipment.RouteKey())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards all changes
// made within the transaction across multiple repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testShipment := suite.createTestShipment()
	testUser := suite.createTestUser("rollback@example.com")

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.UserRepository().Add(ctx, testUser)
	suite.Require().NoError(err)

	// Visible within the transaction
	_, err = uow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	// Gone after rollback, including the tracking number reservation
	newUow := suite.factory.Create()

	_, err = newUow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
	suite.Require().Error(err, "Shipment should not exist after rollback")

	foundUser, err := newUow.UserRepository().GetByEmail(ctx, "rollback@example.com")
	suite.Require().NoError(err)
	suite.Nil(foundUser, "User should not exist after rollback")

	var reservations int64
	err = suite.db.Model(&shipmentrepo.TrackingReservationDTO{}).Count(&reservations).Error
	suite.Require().NoError(err)
	suite.Zero(reservations, "Reservation should be rolled back with the transaction")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	shipment1 := suite.createTestShipment()
	shipment2 := suite.createTestShipment()

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ShipmentRepository().Add(ctx, shipment1)
	suite.Require().NoError(err)

	err = uow2.ShipmentRepository().Add(ctx, shipment2)
	suite.Require().NoError(err)

	// Each transaction only sees its own changes
	_, err = uow1.ShipmentRepository().Get(ctx, shipment1.TrackingNumber())
	suite.Require().NoError(err, "UOW1 should see shipment1")

	_, err = uow1.ShipmentRepository().Get(ctx, shipment2.TrackingNumber())
	suite.Require().Error(err, "UOW1 should not see shipment2")

	_, err = uow2.ShipmentRepository().Get(ctx, shipment2.TrackingNumber())
	suite.Require().NoError(err, "UOW2 should see shipment2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ShipmentRepository().Get(ctx, shipment1.TrackingNumber())
	suite.Require().NoError(err, "Shipment1 should persist after commit")

	_, err = newUow.ShipmentRepository().Get(ctx, shipment2.TrackingNumber())
	suite.Require().Error(err, "Shipment2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testUser := suite.createTestUser("autocommit@example.com")

	// Add without beginning a transaction (auto-commit)
	err := uow.UserRepository().Add(ctx, testUser)
	suite.Require().NoError(err)

	// Verify with a new unit of work instance
	newUow := suite.factory.Create()
	retrieved, err := newUow.UserRepository().GetByEmail(ctx, "autocommit@example.com")
	suite.Require().NoError(err)
	suite.Require().NotNil(retrieved)
	suite.Equal(testUser.ID().String(), retrieved.ID().String())
}

// TestUnitOfWork_ShipmentLifecycleWorkflow tests a full lifecycle involving
// directory setup, shipment creation and transitions within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentLifecycleWorkflow() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	testHub := suite.createTestHub("hub-east")
	err = uow.HubRepository().Add(ctx, testHub)
	suite.Require().NoError(err)

	testShipment := suite.createTestShipment()
	suite.Require().NoError(testShipment.AssignHub("hub-east"))
	err = uow.ShipmentRepository().Add(ctx, testShipment)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Advance the shipment through its lifecycle, one transaction per step
	steps := []struct {
		target   shipment.Status
		location string
	}{
		{shipment.InTransit, "departed hub-east"},
		{shipment.AtHub, "hub-east"},
		{shipment.OutForDelivery, "local depot"},
		{shipment.Delivered, "front door"},
	}

	for _, step := range steps {
		stepUow := suite.factory.Create()
		err = stepUow.Begin(ctx)
		suite.Require().NoError(err)

		current, err := stepUow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
		suite.Require().NoError(err)

		suite.Require().NoError(current.TransitionTo(step.target, step.location, ""))
		err = stepUow.ShipmentRepository().Update(ctx, current)
		suite.Require().NoError(err)

		err = stepUow.Commit(ctx)
		suite.Require().NoError(err)
	}

	// Final state: delivered, complete event trail, bumped version
	finalUow := suite.factory.Create()
	final, err := finalUow.ShipmentRepository().Get(ctx, testShipment.TrackingNumber())
	suite.Require().NoError(err)
	suite.Equal(shipment.Delivered, final.Status())
	suite.NotNil(final.ActualDelivery())
	suite.Len(final.Events(), 5)
	suite.Equal(5, final.Version())
}

// createTestShipment creates a valid shipment with a unique tracking number.
func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment() *shipment.Shipment {
	suite.trackingSeq++
	tn, err := kernel.NewTrackingNumber(fmt.Sprintf("SH%08d", 20000000+suite.trackingSeq))
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

// createTestUser creates a valid user with the given email.
func (suite *UnitOfWorkIntegrationTestSuite) createTestUser(email string) *account.User {
	credential, err := account.CredentialFromHash(testPasswordHash)
	suite.Require().NoError(err)

	testUser, err := account.NewUser(
		kernel.NewUUID(), email, "Test Operator", account.RoleOperations, "+1-555-0303", credential)
	suite.Require().NoError(err)
	return testUser
}

// createTestHub creates a valid hub with the given key.
func (suite *UnitOfWorkIntegrationTestSuite) createTestHub(key string) *directory.Hub {
	testHub, err := directory.NewHub(
		kernel.NewUUID(), key, "Central Hub", "10 Depot Rd, Springfield", "+1-555-0404", 500)
	suite.Require().NoError(err)
	return testHub
}

// createTestRoute creates a valid route with the given key and hub sequence.
func (suite *UnitOfWorkIntegrationTestSuite) createTestRoute(key string, hubKeys []string) *directory.Route {
	testRoute, err := directory.NewRoute(kernel.NewUUID(), key, "Main Line", hubKeys)
	suite.Require().NoError(err)
	return testRoute
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
