package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Disciplina codes accepted on questions.
const (
	DisciplinaLP = "LP" // Língua Portuguesa
	DisciplinaMA = "MA" // Matemática
	DisciplinaCI = "CI" // Ciências
)

// QuestaoConteudo is the question body itself: statement, lettered
// alternatives and the correct-answer key.
type QuestaoConteudo struct {
	Enunciado    string            `bson:"enunciado" json:"enunciado" validate:"required"`
	Alternativas map[string]string `bson:"alternativas" json:"alternativas" validate:"required,min=2"`
	Gabarito     string            `bson:"gabarito" json:"gabarito" validate:"required"`
	URL          string            `bson:"url,omitempty" json:"url,omitempty"`
}

// QuestaoCreate is the request payload for adding a question.
// The gabarito-is-an-alternative invariant is checked by the service on top
// of these struct-level rules.
type QuestaoCreate struct {
	Disciplina string          `json:"disciplina" validate:"required,oneof=LP MA CI"`
	Ano        int             `json:"ano" validate:"required,gte=1,lte=12"`
	Codigo     string          `json:"codigo" validate:"required"`
	Questao    QuestaoConteudo `json:"questao" validate:"required"`
}

// Questao is the stored document from the QUESTOES collection.
// created_at and updated_at are stamped at insert and never change; there is
// no update endpoint.
type Questao struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Disciplina string             `bson:"disciplina"`
	Ano        int                `bson:"ano"`
	Codigo     string             `bson:"codigo"`
	Questao    QuestaoConteudo    `bson:"questao"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// QuestaoResponse is the public shape of a question: string id, ISO-8601
// timestamps. Stored documents that predate the creation-time invariants are
// returned as-is.
type QuestaoResponse struct {
	ID         string          `json:"id"`
	Disciplina string          `json:"disciplina"`
	Ano        int             `json:"ano"`
	Codigo     string          `json:"codigo"`
	Questao    QuestaoConteudo `json:"questao"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

// Normalize converts the stored document into its response shape.
func (q Questao) Normalize() QuestaoResponse {
	return QuestaoResponse{
		ID:         q.ID.Hex(),
		Disciplina: q.Disciplina,
		Ano:        q.Ano,
		Codigo:     q.Codigo,
		Questao:    q.Questao,
		CreatedAt:  ISOTime(q.CreatedAt),
		UpdatedAt:  ISOTime(q.UpdatedAt),
	}
}

// ISOTime renders a stored timestamp as an ISO-8601 (RFC 3339) UTC string,
// the representation every response uses regardless of how the document was
// persisted.
func ISOTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
