package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"cake-shop/models"
)

// InitMongoDB initializes the MongoDB connection
func InitMongoDB(ctx context.Context, uri string) (*mongo.Client, error) {
	clientOptions := options.Client().ApplyURI(uri)

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, err
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	slog.Info("Connected to MongoDB")
	return client, nil
}

// MongoStore persists the catalog in a single products collection keyed by
// the numeric product id. A store-level mutex serializes mutations so the
// max-id read and the insert behave as one step, same discipline as the
// in-memory backend.
type MongoStore struct {
	mu       sync.Mutex
	products *mongo.Collection
}

func NewMongoStore(client *mongo.Client, databaseName string) *MongoStore {
	return &MongoStore{
		products: client.Database(databaseName).Collection("products"),
	}
}

func (s *MongoStore) List(ctx context.Context) ([]models.Product, error) {
	findOptions := options.Find().SetSort(bson.M{"_id": 1})

	cursor, err := s.products.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *MongoStore) Get(ctx context.Context, id int64) (models.Product, error) {
	var product models.Product
	err := s.products.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Product{}, ErrProductNotFound
		}
		return models.Product{}, err
	}
	return product, nil
}

func (s *MongoStore) Create(ctx context.Context, fields models.ProductFields) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var last models.Product
	findOptions := options.FindOne().SetSort(bson.M{"_id": -1})
	err := s.products.FindOne(ctx, bson.M{}, findOptions).Decode(&last)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, err
	}

	product := models.Product{
		ID:          last.ID + 1,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Stock:       fields.Stock,
	}
	if _, err := s.products.InsertOne(ctx, product); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *MongoStore) Update(ctx context.Context, id int64, fields models.ProductFields) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := models.Product{
		ID:          id,
		Name:        fields.Name,
		Description: fields.Description,
		Price:       fields.Price,
		Stock:       fields.Stock,
	}

	result, err := s.products.ReplaceOne(ctx, bson.M{"_id": id}, product)
	if err != nil {
		return models.Product{}, err
	}
	if result.MatchedCount == 0 {
		return models.Product{}, ErrProductNotFound
	}
	return product, nil
}

func (s *MongoStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.products.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrProductNotFound
	}
	return nil
}
