package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles account lookup against the users collection; accounts are
// created out of band, so there is no insert path.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// collection and logger.
func NewUserRepository(collection *mongo.Collection, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		collection: collection,
		logger:     logger,
	}
}

// FindByEmail retrieves the account whose email matches exactly.
//
// Error handling:
//   - No matching document → [ErrDocumentNotFound].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByEmail").Msg("error finding user by email")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}

// FindByID retrieves the account with the given internal identifier.
//
// Error handling mirrors [userRepository.FindByEmail].
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrDocumentNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindByID").Msg("error finding user by id")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return user, nil
}
