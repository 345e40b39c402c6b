package service

import (
	"context"

	"github.com/skti-dev/bncc-backend/internal/store"
	"github.com/skti-dev/bncc-backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository fakes with pluggable function fields. A nil field panics when
// called, which makes unexpected interactions fail loudly.

type mockUserRepository struct {
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.findByEmailFn(ctx, email)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return m.findByIDFn(ctx, id)
}

type mockQuestaoRepository struct {
	insertFn   func(ctx context.Context, questao models.Questao) (primitive.ObjectID, error)
	findByIDFn func(ctx context.Context, id primitive.ObjectID) (models.Questao, error)
	countFn    func(ctx context.Context, filter store.QuestaoFilter) (int64, error)
	findPageFn func(ctx context.Context, filter store.QuestaoFilter, skip, limit int64) ([]models.Questao, error)

	insertCalls int
}

func (m *mockQuestaoRepository) Insert(ctx context.Context, questao models.Questao) (primitive.ObjectID, error) {
	m.insertCalls++
	return m.insertFn(ctx, questao)
}

func (m *mockQuestaoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Questao, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockQuestaoRepository) Count(ctx context.Context, filter store.QuestaoFilter) (int64, error) {
	return m.countFn(ctx, filter)
}

func (m *mockQuestaoRepository) FindPage(ctx context.Context, filter store.QuestaoFilter, skip, limit int64) ([]models.Questao, error) {
	return m.findPageFn(ctx, filter, skip, limit)
}

type mockResultadoRepository struct {
	insertFn   func(ctx context.Context, resultado models.Resultado) (primitive.ObjectID, error)
	findByIDFn func(ctx context.Context, id primitive.ObjectID) (models.Resultado, error)
	countFn    func(ctx context.Context, filter store.ResultadoFilter) (int64, error)
	findPageFn func(ctx context.Context, filter store.ResultadoFilter, skip, limit int64) ([]models.Resultado, error)

	insertCalls int
}

func (m *mockResultadoRepository) Insert(ctx context.Context, resultado models.Resultado) (primitive.ObjectID, error) {
	m.insertCalls++
	return m.insertFn(ctx, resultado)
}

func (m *mockResultadoRepository) FindByID(ctx context.Context, id primitive.ObjectID) (models.Resultado, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockResultadoRepository) Count(ctx context.Context, filter store.ResultadoFilter) (int64, error) {
	return m.countFn(ctx, filter)
}

func (m *mockResultadoRepository) FindPage(ctx context.Context, filter store.ResultadoFilter, skip, limit int64) ([]models.Resultado, error) {
	return m.findPageFn(ctx, filter, skip, limit)
}

type mockLogRepository struct {
	insertFn   func(ctx context.Context, entry models.LogEntry) (primitive.ObjectID, error)
	countFn    func(ctx context.Context) (int64, error)
	findPageFn func(ctx context.Context, skip, limit int64) ([]models.LogEntry, error)
}

func (m *mockLogRepository) Insert(ctx context.Context, entry models.LogEntry) (primitive.ObjectID, error) {
	return m.insertFn(ctx, entry)
}

func (m *mockLogRepository) Count(ctx context.Context) (int64, error) {
	return m.countFn(ctx)
}

func (m *mockLogRepository) FindPage(ctx context.Context, skip, limit int64) ([]models.LogEntry, error) {
	return m.findPageFn(ctx, skip, limit)
}
