package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RespostaItem is one answered question inside a submitted result.
// QuestaoID references a question by value (string id), never by ownership.
type RespostaItem struct {
	QuestaoID    string `bson:"questao_id" json:"questao_id" validate:"required"`
	Codigo       string `bson:"codigo" json:"codigo" validate:"required"`
	RespostaDada string `bson:"resposta_dada" json:"resposta_dada" validate:"required"`
	Gabarito     string `bson:"gabarito" json:"gabarito" validate:"required"`
	Acertou      bool   `bson:"acertou" json:"acertou"`
}

// ResultadoCreate is the request payload for saving a quiz result.
// percentual_acerto is deliberately absent: it is computed server-side and
// never trusted from the caller.
type ResultadoCreate struct {
	Email         string         `json:"email" validate:"required,email"`
	Disciplina    string         `json:"disciplina" validate:"required"`
	Ano           int            `json:"ano" validate:"required,gte=1,lte=12"`
	Respostas     []RespostaItem `json:"respostas" validate:"required,min=1,dive"`
	Pontuacao     int            `json:"pontuacao" validate:"gte=0"`
	TotalQuestoes int            `json:"total_questoes" validate:"required,gte=1"`
}

// Resultado is the stored document from the RESULTADOS collection.
// Immutable after creation; there are no update or delete endpoints.
type Resultado struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Email            string             `bson:"email"`
	Disciplina       string             `bson:"disciplina"`
	Ano              int                `bson:"ano"`
	Respostas        []RespostaItem     `bson:"respostas"`
	Pontuacao        int                `bson:"pontuacao"`
	TotalQuestoes    int                `bson:"total_questoes"`
	PercentualAcerto float64            `bson:"percentual_acerto"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

// ResultadoResponse is the public shape of a stored result.
type ResultadoResponse struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Disciplina       string         `json:"disciplina"`
	Ano              int            `json:"ano"`
	Respostas        []RespostaItem `json:"respostas"`
	Pontuacao        int            `json:"pontuacao"`
	TotalQuestoes    int            `json:"total_questoes"`
	PercentualAcerto float64        `json:"percentual_acerto"`
	CreatedAt        string         `json:"created_at"`
	UpdatedAt        string         `json:"updated_at"`
}

// Normalize converts the stored document into its response shape.
func (r Resultado) Normalize() ResultadoResponse {
	return ResultadoResponse{
		ID:               r.ID.Hex(),
		Email:            r.Email,
		Disciplina:       r.Disciplina,
		Ano:              r.Ano,
		Respostas:        r.Respostas,
		Pontuacao:        r.Pontuacao,
		TotalQuestoes:    r.TotalQuestoes,
		PercentualAcerto: r.PercentualAcerto,
		CreatedAt:        ISOTime(r.CreatedAt),
		UpdatedAt:        ISOTime(r.UpdatedAt),
	}
}
