// internal/output/mongodb.go
package output

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dverbeek/PairScraper/internal/config"
)

// MongoWriter appends rows as documents to a MongoDB collection.
type MongoWriter struct {
	client     *mongo.Client
	collection *mongo.Collection
	timeout    time.Duration
}

// NewMongoWriter creates a MongoDB writer from the output DSN.
func NewMongoWriter(cfg config.OutputConfig) (*MongoWriter, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("MongoDB DSN is required")
	}

	database := cfg.Database
	if database == "" {
		database = "pairscraper"
	}
	collection := cfg.Collection
	if collection == "" {
		collection = "rows"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &MongoWriter{
		client:     client,
		collection: client.Database(database).Collection(collection),
		timeout:    10 * time.Second,
	}, nil
}

// Write implements Writer.
func (w *MongoWriter) Write(columns []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	documents := make([]interface{}, 0, len(rows))
	for _, row := range rows {
		doc := bson.M{"scraped_at": time.Now()}
		for i, col := range columns {
			if i < len(row) {
				doc[sanitizeColumn(col)] = row[i]
			}
		}
		documents = append(documents, doc)
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	if _, err := w.collection.InsertMany(ctx, documents); err != nil {
		return fmt.Errorf("failed to insert MongoDB documents: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB.
func (w *MongoWriter) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()
	return w.client.Disconnect(ctx)
}
