package integration

import (
	"context"
	"testing"
	"time"

	"stylekart/internal/database"
	"stylekart/internal/model"

	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TestDB represents a test document store instance.
type TestDB struct {
	Container *mongodb.MongoDBContainer
	Client    *mongo.Client
	DB        *mongo.Database
}

// SetupTestDB creates a MongoDB test container and client.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	// Create MongoDB container
	mongoContainer, err := mongodb.Run(ctx,
		"mongo:7",
		testcontainers.WithWaitStrategy(
			wait.ForLog("Waiting for connections").
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start mongodb container: %v", err)
	}

	// Get connection string
	connStr, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(connStr))
	if err != nil {
		t.Fatalf("failed to connect to mongodb: %v", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		t.Fatalf("failed to ping mongodb: %v", err)
	}

	db := client.Database("stylekart_test")

	logger := zerolog.Nop()
	if err := database.EnsureIndexes(ctx, db, logger); err != nil {
		t.Fatalf("failed to ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			t.Logf("failed to disconnect client: %v", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: mongoContainer,
		Client:    client,
		DB:        db,
	}
}

// SeedProducts inserts test product data and returns the seeded
// products in insertion order.
func SeedProducts(t *testing.T, db *mongo.Database) []model.Product {
	t.Helper()

	ctx := context.Background()

	rating := func(v float64) *float64 { return &v }

	products := []model.Product{
		{ID: primitive.NewObjectID(), Name: "Linen Shirt", Price: 45.00, Category: model.CategoryMen, Brand: "Acme", Color: "White", Size: "M", Image: "/images/shirt.png", Rating: rating(4), CreatedAt: time.Now().Add(-4 * time.Minute)},
		{ID: primitive.NewObjectID(), Name: "Summer Dress", Price: 60.00, Category: model.CategoryWomen, Brand: "Acme", Color: "Red", Size: "S", Image: "/images/dress.png", Rating: rating(5), CreatedAt: time.Now().Add(-3 * time.Minute)},
		{ID: primitive.NewObjectID(), Name: "Denim Jacket", Price: 80.00, Category: model.CategoryMen, Brand: "Rugged", Color: "Blue", Size: "L", Image: "/images/jacket.png", Rating: rating(3), CreatedAt: time.Now().Add(-2 * time.Minute)},
		{ID: primitive.NewObjectID(), Name: "Kids Hoodie", Price: 25.00, Category: model.CategoryKids, Brand: "Tiny", Color: "Green", Size: "XS", Image: "/images/hoodie.png", CreatedAt: time.Now().Add(-time.Minute)},
	}

	docs := make([]interface{}, len(products))
	for i, p := range products {
		docs[i] = p
	}

	if _, err := db.Collection(database.CollectionProducts).InsertMany(ctx, docs); err != nil {
		t.Fatalf("failed to seed products: %v", err)
	}

	return products
}

// CleanupDB removes all data from the test collections.
func CleanupDB(t *testing.T, db *mongo.Database) {
	t.Helper()

	ctx := context.Background()

	collections := []string{
		database.CollectionProducts,
		database.CollectionUsers,
		database.CollectionOrders,
		database.CollectionProfiles,
	}
	for _, name := range collections {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			t.Logf("failed to clean collection %s: %v", name, err)
		}
	}
}
