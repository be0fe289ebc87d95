package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nadeemahmad9/real-estate/models"
)

// PropertyFilter carries the optional list filters. All set fields
// combine conjunctively.
type PropertyFilter struct {
	City            string
	PropertyType    string
	TransactionType string
	Featured        *bool
	MinPrice        *float64
	MaxPrice        *float64
}

// Query builds the mongo filter document. City is a case-insensitive
// substring match; the price bounds are inclusive and independently
// optional.
func (f PropertyFilter) Query() bson.M {
	query := bson.M{}

	if f.City != "" {
		query["city"] = bson.M{"$regex": f.City, "$options": "i"}
	}
	if f.PropertyType != "" {
		query["propertyType"] = f.PropertyType
	}
	if f.TransactionType != "" {
		query["transactionType"] = f.TransactionType
	}
	if f.Featured != nil {
		query["featured"] = *f.Featured
	}
	if f.MinPrice != nil || f.MaxPrice != nil {
		price := bson.M{}
		if f.MinPrice != nil {
			price["$gte"] = *f.MinPrice
		}
		if f.MaxPrice != nil {
			price["$lte"] = *f.MaxPrice
		}
		query["price"] = price
	}

	return query
}

// CacheParams flattens the filter into a deterministic string map for
// cache key generation.
func (f PropertyFilter) CacheParams() map[string]string {
	params := map[string]string{}
	if f.City != "" {
		params["city"] = f.City
	}
	if f.PropertyType != "" {
		params["propertyType"] = f.PropertyType
	}
	if f.TransactionType != "" {
		params["transactionType"] = f.TransactionType
	}
	if f.Featured != nil {
		params["featured"] = strconv.FormatBool(*f.Featured)
	}
	if f.MinPrice != nil {
		params["minPrice"] = strconv.FormatFloat(*f.MinPrice, 'f', -1, 64)
	}
	if f.MaxPrice != nil {
		params["maxPrice"] = strconv.FormatFloat(*f.MaxPrice, 'f', -1, 64)
	}
	return params
}

type PropertyStore interface {
	Create(ctx context.Context, p *models.Property) (*models.Property, error)
	List(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	GetByID(ctx context.Context, id string) (*models.Property, error)
	Update(ctx context.Context, id string, p *models.Property) (*models.Property, error)
	Delete(ctx context.Context, id string) error
}

type MongoPropertyStore struct {
	col *mongo.Collection
}

func NewMongoPropertyStore(col *mongo.Collection) *MongoPropertyStore {
	return &MongoPropertyStore{col: col}
}

func (s *MongoPropertyStore) Create(ctx context.Context, p *models.Property) (*models.Property, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now

	if _, err := s.col.InsertOne(ctx, p); err != nil {
		return nil, fmt.Errorf("store: insert property: %w", err)
	}
	return p, nil
}

func (s *MongoPropertyStore) List(ctx context.Context, filter PropertyFilter) ([]models.Property, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.col.Find(ctx, filter.Query(), opts)
	if err != nil {
		return nil, fmt.Errorf("store: find properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("store: decode properties: %w", err)
	}
	return properties, nil
}

func (s *MongoPropertyStore) GetByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var p models.Property
	err = s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find property: %w", err)
	}
	return &p, nil
}

// Update replaces the mutable fields from p. Only known fields are
// written; request bodies cannot inject arbitrary keys into the document.
func (s *MongoPropertyStore) Update(ctx context.Context, id string, p *models.Property) (*models.Property, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	update := bson.M{
		"title":           p.Title,
		"city":            p.City,
		"location":        p.Location,
		"price":           p.Price,
		"currency":        p.Currency,
		"image":           p.Image,
		"propertyType":    p.PropertyType,
		"transactionType": p.TransactionType,
		"status":          p.Status,
		"featured":        p.Featured,
		"mapUrl":          p.MapURL,
		"amenities":       p.Amenities,
		"about":           p.About,
		"developer":       p.Developer,
		"configurations":  p.Configurations,
		"compare":         p.Compare,
		"updatedAt":       time.Now().UTC(),
	}

	res := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated models.Property
	err = res.Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: update property: %w", err)
	}
	return &updated, nil
}

func (s *MongoPropertyStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("store: delete property: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
