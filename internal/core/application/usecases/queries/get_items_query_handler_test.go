package queries_test

import (
	"context"
	"testing"
	"time"

	"withus/internal/adapters/out/postgres/itemrepo"
	"withus/internal/adapters/out/postgres/reviewrepo"
	"withus/internal/adapters/out/postgres/userrepo"
	"withus/internal/core/application/usecases/queries"
	"withus/internal/core/domain/model/kernel"

	"withus/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogQueriesIntegrationTestSuite exercises the catalog read side (item
// pages, item detail with rating summary and the category list) against a
// real PostgreSQL instance. The three handlers share the container because
// they share the schema.
type CatalogQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	items      queries.GetItemsQueryHandler
	item       queries.GetItemQueryHandler
	categories queries.GetItemCategoriesQueryHandler
}

func (suite *CatalogQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&itemrepo.ItemDTO{}, &reviewrepo.ReviewDTO{}, &userrepo.UserDTO{}))

	suite.items = queries.NewGetItemsQueryHandler(db)
	suite.item = queries.NewGetItemQueryHandler(db)
	suite.categories = queries.NewGetItemCategoriesQueryHandler(db)
}

func (suite *CatalogQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE items, reviews, users").Error)
}

func (suite *CatalogQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogQueriesIntegrationTestSuite) seedItem(
	name, category string, createdAt time.Time,
) kernel.UUID {
	id := kernel.NewUUID()
	dto := itemrepo.ItemDTO{
		ID:            id.Bytes(),
		Name:          name,
		Description:   "desc",
		ImageURL:      "",
		Price:         10,
		Category:      category,
		StockQuantity: 5,
		CreatedAt:     createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *CatalogQueriesIntegrationTestSuite) seedUser(name string) kernel.UUID {
	id := kernel.NewUUID()
	dto := userrepo.UserDTO{
		ID:           id.Bytes(),
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "digest",
		Role:         "customer",
		CreatedAt:    time.Now().UTC(),
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return id
}

func (suite *CatalogQueriesIntegrationTestSuite) seedReview(
	userID, itemID kernel.UUID, rating int, createdAt time.Time,
) {
	dto := reviewrepo.ReviewDTO{
		ID:        uuid.New(),
		UserID:    userID.Bytes(),
		ItemID:    itemID.Bytes(),
		Rating:    rating,
		Comment:   "fine",
		CreatedAt: createdAt,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItems_EmptyCatalog_ReturnsEmptySlice() {
	query, err := queries.NewGetItemsQuery("", 0, 10)
	suite.Require().NoError(err)

	result, err := suite.items.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItems_NewestFirstAndPaged() {
	base := time.Now().UTC().Add(-time.Hour)
	suite.seedItem("oldest", "kitchen", base)
	suite.seedItem("middle", "kitchen", base.Add(10*time.Minute))
	suite.seedItem("newest", "kitchen", base.Add(20*time.Minute))

	query, err := queries.NewGetItemsQuery("", 0, 2)
	suite.Require().NoError(err)

	page, err := suite.items.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(page, 2)
	suite.Equal("newest", page[0].Name)
	suite.Equal("middle", page[1].Name)

	query, err = queries.NewGetItemsQuery("", 2, 2)
	suite.Require().NoError(err)

	rest, err := suite.items.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.Equal("oldest", rest[0].Name)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItems_CategoryFilter() {
	now := time.Now().UTC()
	suite.seedItem("mug", "kitchen", now)
	suite.seedItem("lamp", "lighting", now)

	query, err := queries.NewGetItemsQuery("lighting", 0, 10)
	suite.Require().NoError(err)

	result, err := suite.items.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("lamp", result[0].Name)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItem_WithReviews_AggregatesRating() {
	now := time.Now().UTC()
	itemID := suite.seedItem("mug", "kitchen", now)
	alice := suite.seedUser("alice")
	bob := suite.seedUser("bob")
	suite.seedReview(alice, itemID, 5, now.Add(-time.Minute))
	suite.seedReview(bob, itemID, 2, now)

	query, err := queries.NewGetItemQuery(itemID)
	suite.Require().NoError(err)

	detail, err := suite.item.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(itemID, detail.ID)
	suite.Equal(2, detail.ReviewCount)
	suite.InDelta(3.5, detail.AverageRating, 0.001)
	suite.Require().Len(detail.Reviews, 2)
	suite.Equal("bob", detail.Reviews[0].UserName)
	suite.Equal("alice", detail.Reviews[1].UserName)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItem_NoReviews_ZeroSummary() {
	itemID := suite.seedItem("mug", "kitchen", time.Now().UTC())

	query, err := queries.NewGetItemQuery(itemID)
	suite.Require().NoError(err)

	detail, err := suite.item.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(0, detail.ReviewCount)
	suite.InDelta(0, detail.AverageRating, 0.001)
	suite.Empty(detail.Reviews)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItem_Unknown_ReturnsNotFoundError() {
	query, err := queries.NewGetItemQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.item.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CatalogQueriesIntegrationTestSuite) TestGetItemCategories_DistinctAndSorted() {
	now := time.Now().UTC()
	suite.seedItem("mug", "kitchen", now)
	suite.seedItem("plate", "kitchen", now)
	suite.seedItem("lamp", "lighting", now)

	result, err := suite.categories.Handle(
		context.Background(), queries.NewGetItemCategoriesQuery())
	suite.Require().NoError(err)
	suite.Equal([]string{"kitchen", "lighting"}, result)
}

func TestCatalogQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogQueriesIntegrationTestSuite))
}
