package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nadeemahmad9/real-estate/models"
)

type UserStore interface {
	Create(ctx context.Context, u *models.User) (*models.User, error)
	// GetAdminByEmail looks up an admin record by (lowercased) email,
	// including the password hash for verification.
	GetAdminByEmail(ctx context.Context, email string) (*models.User, error)
}

type MongoUserStore struct {
	col *mongo.Collection
}

func NewMongoUserStore(col *mongo.Collection) *MongoUserStore {
	return &MongoUserStore{col: col}
}

func (s *MongoUserStore) Create(ctx context.Context, u *models.User) (*models.User, error) {
	count, err := s.col.CountDocuments(ctx, bson.M{"email": u.Email})
	if err != nil {
		return nil, fmt.Errorf("store: check existing email: %w", err)
	}
	if count > 0 {
		return nil, ErrDuplicateEmail
	}

	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()

	if _, err := s.col.InsertOne(ctx, u); err != nil {
		// The unique index catches the race the pre-check misses.
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("store: insert user: %w", err)
	}
	return u, nil
}

func (s *MongoUserStore) GetAdminByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.col.FindOne(ctx, bson.M{"email": email, "role": models.RoleAdmin}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("store: find user: %w", err)
	}
	return &u, nil
}
