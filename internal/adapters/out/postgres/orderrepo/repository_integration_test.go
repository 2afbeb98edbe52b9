package orderrepo_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"ghostkitchen/internal/adapters/out/postgres/orderrepo"
	"ghostkitchen/internal/core/domain/model/kernel"
	"ghostkitchen/internal/core/domain/model/order"
	"ghostkitchen/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.placeTestOrder()

	// Set expectations on mock
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Verify order and its line items were persisted
	suite.assertOrderCount(1)
	suite.assertItemCount(2)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	originalOrder := suite.placeTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrievedOrder, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrievedOrder.ID())
	suite.Equal(originalOrder.OrderNumber().String(), retrievedOrder.OrderNumber().String())
	suite.Equal(originalOrder.KitchenID(), retrievedOrder.KitchenID())
	suite.Equal(originalOrder.RestaurantID(), retrievedOrder.RestaurantID())
	suite.Equal(order.Received, retrievedOrder.Status())
	suite.InDelta(originalOrder.Total(), retrievedOrder.Total(), 0.001)

	suite.Require().NotNil(retrievedOrder.Guest())
	suite.Equal("Alice", retrievedOrder.Guest().Name())
	suite.Equal("+15551234567", retrievedOrder.Guest().Phone().String())

	suite.Require().NotNil(retrievedOrder.ETA())
	suite.WithinDuration(*originalOrder.ETA(), *retrievedOrder.ETA(), time.Second)
	suite.Nil(retrievedOrder.ETANotes())
	suite.Nil(retrievedOrder.CancelReason())
	suite.Nil(retrievedOrder.DeliveredAt())

	suite.Require().Len(retrievedOrder.Items(), 2)
	suite.Equal("Margherita", retrievedOrder.Items()[0].Name())
	suite.Equal(2, retrievedOrder.Items()[0].Quantity())
	suite.InDelta(9.50, retrievedOrder.Items()[0].PriceSnapshot(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	nonExistentID := kernel.NewUUID()
	retrievedOrder, err := suite.repository.Get(ctx, nonExistentID)

	suite.Nil(retrievedOrder)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StatusProgression_PersistsLifecycleFields() {
	ctx := context.Background()
	now := time.Now().UTC()

	testOrder := suite.placeTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(4)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// Walk the full happy path and persist each step
	suite.Require().NoError(testOrder.AdvanceTo(order.Preparing, now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceTo(order.OutForDelivery, now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	deliveredAt := now.Add(40 * time.Minute)
	suite.Require().NoError(testOrder.AdvanceTo(order.Delivered, deliveredAt))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Delivered, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.DeliveredAt())
	suite.WithinDuration(deliveredAt, *retrievedOrder.DeliveredAt(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Cancellation_PersistsReasonAndActor() {
	ctx := context.Background()

	testOrder := suite.placeTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.Cancel("customer changed their mind", order.RoleCustomer))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrievedOrder.Status())
	suite.Require().NotNil(retrievedOrder.CancelReason())
	suite.Equal("customer changed their mind", *retrievedOrder.CancelReason())
	suite.Equal(order.RoleCustomer, retrievedOrder.CancelledBy())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ETAAndNote_ClearsNoteWhenNil() {
	ctx := context.Background()

	testOrder := suite.placeTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	newETA := time.Now().UTC().Add(time.Hour).Truncate(time.Second)
	note := "driver stuck in traffic"
	testOrder.SetETA(newETA, &note)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(retrievedOrder.ETANotes())
	suite.Equal(note, *retrievedOrder.ETANotes())

	// A later update without a note must clear the stored one
	testOrder.SetETA(newETA.Add(10*time.Minute), nil)
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrievedOrder, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Nil(retrievedOrder.ETANotes())
	suite.Require().NotNil(retrievedOrder.ETA())
	suite.WithinDuration(newETA.Add(10*time.Minute), *retrievedOrder.ETA(), time.Second)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchLineItems() {
	ctx := context.Background()

	testOrder := suite.placeTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.AdvanceTo(order.Preparing, time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// The item snapshots taken at placement must survive unchanged
	suite.assertItemCount(2)

	retrievedOrder, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Len(retrievedOrder.Items(), 2)
	suite.InDelta(testOrder.Total(), retrievedOrder.Total(), 0.001)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	nonExistentOrder := suite.placeTestOrder()

	// No expectations on tracker since operation should fail
	err := suite.repository.Update(ctx, nonExistentOrder)
	suite.Require().Error(err)

	suite.tracker.AssertExpectations(suite.T())
}

// TestOrderRepository_ErrorScenarios verifies error handling for various failure cases.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_ErrorScenarios() {
	testCases := []struct {
		name      string
		operation func() error
		expected  string
	}{
		{
			name: "get with invalid UUID",
			operation: func() error {
				invalidID := kernel.UUID{}
				_, err := suite.repository.Get(context.Background(), invalidID)
				return err
			},
			expected: "required",
		},
		{
			name: "get non-existent order",
			operation: func() error {
				nonExistentID := kernel.NewUUID()
				_, err := suite.repository.Get(context.Background(), nonExistentID)
				return err
			},
			expected: "not found",
		},
		{
			name: "update non-existent order",
			operation: func() error {
				return suite.repository.Update(context.Background(), suite.placeTestOrder())
			},
			expected: "record not found",
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			err := tc.operation()
			suite.Require().Error(err)
			suite.Contains(strings.ToLower(err.Error()), strings.ToLower(tc.expected))
			suite.tracker.AssertExpectations(suite.T())
		})
	}
}

// TestOrderRepository_Concurrency verifies repository behavior under concurrent access.
func (suite *OrderRepositoryIntegrationTestSuite) TestOrderRepository_Concurrency() {
	ctx := context.Background()

	initialOrder := suite.placeTestOrder()
	suite.tracker.On("TrackAggregate", initialOrder.ID(), initialOrder).Once()
	err := suite.repository.Add(ctx, initialOrder)
	suite.Require().NoError(err)

	// Simulate concurrent reads
	results := make(chan *order.Order, 3)
	errors := make(chan error, 3)

	for range 3 {
		go func() {
			retrievedOrder, readErr := suite.repository.Get(ctx, initialOrder.ID())
			if readErr != nil {
				errors <- readErr
			} else {
				results <- retrievedOrder
			}
		}()
	}

	// Collect results
	for range 3 {
		select {
		case result := <-results:
			suite.Equal(initialOrder.ID(), result.ID())
		case readErr := <-errors:
			suite.Failf("Unexpected error in concurrent read", "%v", readErr)
		}
	}

	suite.tracker.AssertExpectations(suite.T())
}

// placeTestOrder creates a just-placed two-item guest order.
func (suite *OrderRepositoryIntegrationTestSuite) placeTestOrder() *order.Order {
	itemA, err := order.NewItem(kernel.NewUUID(), "Margherita", 2, 9.50)
	suite.Require().NoError(err)
	itemB, err := order.NewItem(kernel.NewUUID(), "Tiramisu", 1, 6.00)
	suite.Require().NoError(err)

	phone, err := kernel.NewPhone("+15551234567")
	suite.Require().NoError(err)
	guest, err := order.NewGuest("Alice", phone)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{itemA, itemB},
		&guest,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertItemCount verifies the number of order line items in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
