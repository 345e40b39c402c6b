package store

import (
	"context"

	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository is the credential store adapter over the users collection.
// It only reads: accounts are created out of band.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

// QuestaoFilter is the conjunction of optional equality predicates applied
// to question queries. Zero values mean "not applied".
type QuestaoFilter struct {
	Disciplina string
	Ano        int
}

// QuestaoRepository persists and queries question documents.
type QuestaoRepository interface {
	Insert(ctx context.Context, questao models.Questao) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Questao, error)
	Count(ctx context.Context, filter QuestaoFilter) (int64, error)
	// FindPage returns one page sorted by codigo ascending.
	FindPage(ctx context.Context, filter QuestaoFilter, skip, limit int64) ([]models.Questao, error)
}

// ResultadoFilter is the conjunction of optional equality predicates applied
// to result queries. Zero values mean "not applied".
type ResultadoFilter struct {
	Disciplina string
	Ano        int
	Email      string
}

// ResultadoRepository persists and queries quiz result documents.
type ResultadoRepository interface {
	Insert(ctx context.Context, resultado models.Resultado) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Resultado, error)
	Count(ctx context.Context, filter ResultadoFilter) (int64, error)
	// FindPage returns one page sorted by created_at descending.
	FindPage(ctx context.Context, filter ResultadoFilter, skip, limit int64) ([]models.Resultado, error)
}

// LogRepository appends audit records and reads them back most-recent-first.
// Entries are append-only: there are no update or delete operations.
type LogRepository interface {
	Insert(ctx context.Context, entry models.LogEntry) (primitive.ObjectID, error)
	Count(ctx context.Context) (int64, error)
	// FindPage returns one page sorted by timestamp descending.
	FindPage(ctx context.Context, skip, limit int64) ([]models.LogEntry, error)
}
