package service

import (
	"context"
	"testing"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func validResultadoCreate() models.ResultadoCreate {
	return models.ResultadoCreate{
		Email:      "aluno@escola.br",
		Disciplina: models.DisciplinaMA,
		Ano:        5,
		Respostas: []models.RespostaItem{
			{QuestaoID: "q1", Codigo: "EF05MA01", RespostaDada: "A", Gabarito: "A", Acertou: true},
		},
		Pontuacao:     1,
		TotalQuestoes: 1,
	}
}

func TestPercentual_TableTest(t *testing.T) {
	tests := []struct {
		name          string
		pontuacao     int
		totalQuestoes int
		want          float64
	}{
		{name: "8 of 10", pontuacao: 8, totalQuestoes: 10, want: 80},
		{name: "1 of 3 rounds down", pontuacao: 1, totalQuestoes: 3, want: 33.33},
		{name: "2 of 3 rounds up", pontuacao: 2, totalQuestoes: 3, want: 66.67},
		{name: "all correct", pontuacao: 10, totalQuestoes: 10, want: 100},
		{name: "none correct", pontuacao: 0, totalQuestoes: 10, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, percentual(tt.pontuacao, tt.totalQuestoes), 1e-9)
		})
	}
}

func TestResultadoService_Save_ComputesPercentual(t *testing.T) {
	insertedID := primitive.NewObjectID()
	var captured models.Resultado

	repo := &mockResultadoRepository{
		insertFn: func(_ context.Context, resultado models.Resultado) (primitive.ObjectID, error) {
			captured = resultado
			captured.ID = insertedID
			return insertedID, nil
		},
		findByIDFn: func(_ context.Context, id primitive.ObjectID) (models.Resultado, error) {
			require.Equal(t, insertedID, id)
			return captured, nil
		},
	}
	svc := NewResultadoService(repo, logger.Nop())

	create := validResultadoCreate()
	create.Pontuacao = 8
	create.TotalQuestoes = 10

	saved, err := svc.Save(context.Background(), create)
	require.NoError(t, err)

	assert.Equal(t, insertedID.Hex(), saved.ID)
	assert.InDelta(t, 80.0, saved.PercentualAcerto, 1e-9)
	assert.False(t, captured.CreatedAt.IsZero())
	assert.Equal(t, captured.CreatedAt, captured.UpdatedAt)
}

func TestResultadoService_Save_Validation_TableTest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.ResultadoCreate)
	}{
		{name: "missing email", mutate: func(c *models.ResultadoCreate) { c.Email = "" }},
		{name: "malformed email", mutate: func(c *models.ResultadoCreate) { c.Email = "not-an-email" }},
		{name: "total_questoes zero", mutate: func(c *models.ResultadoCreate) { c.TotalQuestoes = 0 }},
		{name: "total_questoes negative", mutate: func(c *models.ResultadoCreate) { c.TotalQuestoes = -3 }},
		{name: "ano out of range", mutate: func(c *models.ResultadoCreate) { c.Ano = 13 }},
		{name: "no respostas", mutate: func(c *models.ResultadoCreate) { c.Respostas = nil }},
		{name: "resposta without gabarito", mutate: func(c *models.ResultadoCreate) { c.Respostas[0].Gabarito = "" }},
		{name: "negative pontuacao", mutate: func(c *models.ResultadoCreate) { c.Pontuacao = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockResultadoRepository{
				insertFn: func(_ context.Context, _ models.Resultado) (primitive.ObjectID, error) {
					t.Fatal("Insert should not be called for invalid input")
					return primitive.NilObjectID, nil
				},
			}
			svc := NewResultadoService(repo, logger.Nop())

			create := validResultadoCreate()
			tt.mutate(&create)

			_, err := svc.Save(context.Background(), create)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Zero(t, repo.insertCalls)
		})
	}
}

func TestResultadoService_GetByID_MalformedID(t *testing.T) {
	svc := NewResultadoService(&mockResultadoRepository{}, logger.Nop())

	_, err := svc.GetByID(context.Background(), "definitely-not-hex")
	assert.ErrorIs(t, err, ErrValidation)
}
