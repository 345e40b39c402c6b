package store

import (
	"context"
	"fmt"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// logRepository is the MongoDB-backed implementation of [LogRepository] over
// the append-only audit log collection.
type logRepository struct {
	logger     *logger.Logger
	collection *mongo.Collection
}

// NewLogRepository constructs a [LogRepository] backed by the provided
// collection and logger.
func NewLogRepository(collection *mongo.Collection, logger *logger.Logger) LogRepository {
	logger.Debug().Msg("creating log repository")
	return &logRepository{
		collection: collection,
		logger:     logger,
	}
}

// Insert appends one audit record and returns the server-assigned id.
func (r *logRepository) Insert(ctx context.Context, entry models.LogEntry) (primitive.ObjectID, error) {
	result, err := r.collection.InsertOne(ctx, entry)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected inserted id type", ErrExecutingQuery)
	}

	return id, nil
}

// Count returns the total number of audit records.
func (r *logRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// FindPage returns one page of audit records sorted by timestamp descending
// (most recent first).
func (r *logRepository) FindPage(ctx context.Context, skip, limit int64) ([]models.LogEntry, error) {
	log := logger.FromContext(ctx)

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		log.Err(err).Str("func", "*logRepository.FindPage").Msg("error finding logs")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	var entries []models.LogEntry
	if err := cursor.All(ctx, &entries); err != nil {
		log.Err(err).Str("func", "*logRepository.FindPage").Msg("error decoding logs")
		return nil, fmt.Errorf("%w: %w", ErrDecodingDocument, err)
	}

	return entries, nil
}
