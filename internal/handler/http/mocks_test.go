package http

import (
	"context"

	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/models"
)

// Service fakes with pluggable function fields, one per interface method.

type mockAuthService struct {
	loginFn        func(ctx context.Context, email, senha string) (models.UserResponse, string, error)
	authenticateFn func(ctx context.Context, tokenString string) (models.UserResponse, error)
}

func (m *mockAuthService) Login(ctx context.Context, email, senha string) (models.UserResponse, string, error) {
	return m.loginFn(ctx, email, senha)
}

func (m *mockAuthService) Authenticate(ctx context.Context, tokenString string) (models.UserResponse, error) {
	return m.authenticateFn(ctx, tokenString)
}

type mockQuestaoService struct {
	addFn           func(ctx context.Context, create models.QuestaoCreate) (models.QuestaoResponse, error)
	getByIDFn       func(ctx context.Context, id string) (models.QuestaoResponse, error)
	listPaginatedFn func(ctx context.Context, query service.QuestaoListQuery) (models.Page[models.QuestaoResponse], error)
}

func (m *mockQuestaoService) Add(ctx context.Context, create models.QuestaoCreate) (models.QuestaoResponse, error) {
	return m.addFn(ctx, create)
}

func (m *mockQuestaoService) GetByID(ctx context.Context, id string) (models.QuestaoResponse, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockQuestaoService) ListPaginated(ctx context.Context, query service.QuestaoListQuery) (models.Page[models.QuestaoResponse], error) {
	return m.listPaginatedFn(ctx, query)
}

type mockResultadoService struct {
	saveFn          func(ctx context.Context, create models.ResultadoCreate) (models.ResultadoResponse, error)
	getByIDFn       func(ctx context.Context, id string) (models.ResultadoResponse, error)
	listPaginatedFn func(ctx context.Context, query service.ResultadoListQuery) (models.Page[models.ResultadoResponse], error)
}

func (m *mockResultadoService) Save(ctx context.Context, create models.ResultadoCreate) (models.ResultadoResponse, error) {
	return m.saveFn(ctx, create)
}

func (m *mockResultadoService) GetByID(ctx context.Context, id string) (models.ResultadoResponse, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockResultadoService) ListPaginated(ctx context.Context, query service.ResultadoListQuery) (models.Page[models.ResultadoResponse], error) {
	return m.listPaginatedFn(ctx, query)
}

// mockLogService tolerates nil function fields: the audit middleware records
// on every request, and most tests do not care.
type mockLogService struct {
	recordFn func(ctx context.Context, origem, resultado, endpoint string, detalhes map[string]any) (string, bool)
	listFn   func(ctx context.Context, query service.LogListQuery) (models.Page[models.LogEntryResponse], error)
}

func (m *mockLogService) Record(ctx context.Context, origem, resultado, endpoint string, detalhes map[string]any) (string, bool) {
	if m.recordFn == nil {
		return "", true
	}
	return m.recordFn(ctx, origem, resultado, endpoint, detalhes)
}

func (m *mockLogService) List(ctx context.Context, query service.LogListQuery) (models.Page[models.LogEntryResponse], error) {
	return m.listFn(ctx, query)
}

type mockPinger struct {
	pingFn func(ctx context.Context) error
}

func (m *mockPinger) Ping(ctx context.Context) error {
	if m.pingFn == nil {
		return nil
	}
	return m.pingFn(ctx)
}
