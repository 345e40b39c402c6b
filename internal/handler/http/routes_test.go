package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/skti-dev/bncc-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires a full router around fake services: login accepts one
// fixed credential pair and Authenticate accepts the token login issued.
func newTestRouter(t *testing.T, questoes []models.QuestaoResponse) http.Handler {
	t.Helper()

	user := models.UserResponse{ID: "68a1f0c2e4b0aa0001234567", Email: "aluno@escola.br", Nome: "Aluno"}
	const issuedToken = "issued-session-token"

	services := &service.Services{
		Auth: &mockAuthService{
			loginFn: func(_ context.Context, email, senha string) (models.UserResponse, string, error) {
				if email != "aluno@escola.br" || senha != "12345678909" {
					return models.UserResponse{}, "", service.ErrWrongPassword
				}
				return user, issuedToken, nil
			},
			authenticateFn: func(_ context.Context, tokenString string) (models.UserResponse, error) {
				if tokenString != issuedToken {
					return models.UserResponse{}, service.ErrTokenSubjectMissing
				}
				return user, nil
			},
		},
		Questao: &mockQuestaoService{
			listPaginatedFn: func(_ context.Context, query service.QuestaoListQuery) (models.Page[models.QuestaoResponse], error) {
				end := query.Page * query.Limit
				start := end - query.Limit
				total := int64(len(questoes))

				var data []models.QuestaoResponse
				if start < len(questoes) {
					if end > len(questoes) {
						end = len(questoes)
					}
					data = questoes[start:end]
				}

				pages := int((total + int64(query.Limit) - 1) / int64(query.Limit))
				return models.Page[models.QuestaoResponse]{
					Total:      total,
					TotalPages: pages,
					Page:       query.Page,
					Limit:      query.Limit,
					HasNext:    query.Page < pages,
					HasPrev:    query.Page > 1,
					Data:       data,
				}, nil
			},
		},
		Log: &mockLogService{},
	}

	h := NewHandler(services, &mockPinger{}, testAppConfig(), logger.Nop())
	return h.Init()
}

func TestRouter_LoginThenListQuestoes(t *testing.T) {
	questoes := make([]models.QuestaoResponse, 23)
	for i := range questoes {
		questoes[i] = models.QuestaoResponse{ID: "q", Codigo: "EF05MA01", Disciplina: models.DisciplinaMA, Ano: 5}
	}
	router := newTestRouter(t, questoes)

	// login
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"aluno@escola.br","senha":"12345678909"}`))
	loginRR := httptest.NewRecorder()
	router.ServeHTTP(loginRR, loginReq)

	require.Equal(t, http.StatusOK, loginRR.Code)
	cookies := loginRR.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "access_token", cookies[0].Name)

	// authenticated list
	listReq := httptest.NewRequest(http.MethodGet, "/questoes?page=1&limit=10", nil)
	listReq.AddCookie(cookies[0])
	listRR := httptest.NewRecorder()
	router.ServeHTTP(listRR, listReq)

	require.Equal(t, http.StatusOK, listRR.Code)

	var page models.Page[models.QuestaoResponse]
	require.NoError(t, json.Unmarshal(listRR.Body.Bytes(), &page))

	assert.Equal(t, int64(23), page.Total)
	assert.Equal(t, 3, page.TotalPages)
	assert.LessOrEqual(t, len(page.Data), 10)
	assert.True(t, page.HasNext)
	assert.False(t, page.HasPrev)
}

func TestRouter_ProtectedRoutesRejectWithoutCookie(t *testing.T) {
	router := newTestRouter(t, nil)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/auth/logout"},
		{http.MethodGet, "/auth/me"},
		{http.MethodGet, "/questoes"},
		{http.MethodGet, "/questoes/abc"},
		{http.MethodPost, "/questoes/adicionar"},
		{http.MethodPut, "/resultados"},
		{http.MethodGet, "/resultados"},
		{http.MethodGet, "/resultados/abc"},
		{http.MethodGet, "/logs"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			require.Equal(t, http.StatusUnauthorized, rr.Code)

			var envelope apiErrorEnvelope
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
			assert.Equal(t, "Not authenticated", envelope.Error.Message)
		})
	}
}

func TestRouter_ExemptRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, path := range []string{"/", "/health"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		})
	}
}

func TestRouter_InvalidPaginationRejected(t *testing.T) {
	router := newTestRouter(t, nil)

	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"aluno@escola.br","senha":"12345678909"}`))
	loginRR := httptest.NewRecorder()
	router.ServeHTTP(loginRR, loginReq)
	require.Len(t, loginRR.Result().Cookies(), 1)
	cookie := loginRR.Result().Cookies()[0]

	tests := []string{
		"/questoes?page=0",
		"/questoes?page=abc",
		"/questoes?limit=0",
		"/questoes?limit=21",
		"/questoes?ano=13",
	}

	for _, target := range tests {
		t.Run(target, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			req.AddCookie(cookie)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
			assert.Contains(t, rr.Body.String(), "detail")
		})
	}
}
