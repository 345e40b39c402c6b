package service

import (
	"context"

	"github.com/skti-dev/bncc-backend/models"
)

// AuthService handles credential verification and session token lifecycle.
type AuthService interface {
	// Login verifies the email/password pair and, on success, returns the
	// normalized user together with a freshly issued session token.
	Login(ctx context.Context, email, senha string) (models.UserResponse, string, error)

	// Authenticate verifies a raw session token and resolves its subject to
	// a user. Failure modes, each a distinct sentinel: expired token,
	// malformed token, missing subject, unknown user.
	Authenticate(ctx context.Context, tokenString string) (models.UserResponse, error)
}

// QuestaoListQuery carries the pagination and filter parameters of a
// question list request. Zero-valued filters are not applied.
type QuestaoListQuery struct {
	Page       int
	Limit      int
	Disciplina string
	Ano        int
	// Shuffle randomly permutes the returned page before response. It
	// affects presentation order only, never the pagination counts.
	Shuffle bool
}

// QuestaoService exposes CRUD and paginated listing over questions.
type QuestaoService interface {
	Add(ctx context.Context, create models.QuestaoCreate) (models.QuestaoResponse, error)
	GetByID(ctx context.Context, id string) (models.QuestaoResponse, error)
	ListPaginated(ctx context.Context, query QuestaoListQuery) (models.Page[models.QuestaoResponse], error)
}

// ResultadoListQuery carries the pagination and filter parameters of a
// result list request. Zero-valued filters are not applied.
type ResultadoListQuery struct {
	Page       int
	Limit      int
	Disciplina string
	Ano        int
	Email      string
}

// ResultadoService exposes creation and paginated listing over quiz results.
// Results are immutable after creation.
type ResultadoService interface {
	Save(ctx context.Context, create models.ResultadoCreate) (models.ResultadoResponse, error)
	GetByID(ctx context.Context, id string) (models.ResultadoResponse, error)
	ListPaginated(ctx context.Context, query ResultadoListQuery) (models.Page[models.ResultadoResponse], error)
}

// LogListQuery carries the pagination parameters of an audit log read plus
// optional equality filters applied after retrieval.
type LogListQuery struct {
	Page      int
	Limit     int
	Origem    string
	Resultado string
}

// LogService is the audit log writer and its companion read path.
type LogService interface {
	// Record appends one audit entry. It is best-effort: a backend failure
	// is logged locally and reported as ok == false, never as an error the
	// caller must handle. No batching, no retry.
	Record(ctx context.Context, origem, resultado, endpoint string, detalhes map[string]any) (string, bool)

	List(ctx context.Context, query LogListQuery) (models.Page[models.LogEntryResponse], error)
}
