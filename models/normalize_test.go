package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestISOTime_RendersUTC(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	stamp := time.Date(2025, 3, 14, 9, 26, 53, 0, loc)

	assert.Equal(t, "2025-03-14T12:26:53Z", ISOTime(stamp))
}

func TestQuestao_Normalize(t *testing.T) {
	id := primitive.NewObjectID()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	questao := Questao{
		ID:         id,
		Disciplina: DisciplinaLP,
		Ano:        4,
		Codigo:     "EF04LP01",
		Questao: QuestaoConteudo{
			Enunciado:    "Enunciado",
			Alternativas: map[string]string{"A": "um", "B": "dois"},
			Gabarito:     "B",
		},
		CreatedAt: created,
		UpdatedAt: created,
	}

	got := questao.Normalize()

	assert.Equal(t, id.Hex(), got.ID)
	assert.Equal(t, "2025-01-02T03:04:05Z", got.CreatedAt)
	assert.Equal(t, "2025-01-02T03:04:05Z", got.UpdatedAt)
	assert.Equal(t, questao.Questao, got.Questao)
}

func TestUser_StoredHash_PrefersSenha(t *testing.T) {
	assert.Equal(t, "nova", User{Senha: "nova", PasswordHash: "antiga"}.StoredHash())
	assert.Equal(t, "antiga", User{PasswordHash: "antiga"}.StoredHash())
	assert.Empty(t, User{}.StoredHash())
}

func TestUser_Normalize_DropsHash(t *testing.T) {
	user := User{
		ID:    primitive.NewObjectID(),
		Email: "aluno@escola.br",
		Senha: "$2a$10$hash",
		Nome:  "Aluno",
	}

	got := user.Normalize()

	assert.Equal(t, user.ID.Hex(), got.ID)
	assert.Equal(t, user.Email, got.Email)
	assert.Equal(t, user.Nome, got.Nome)
}
