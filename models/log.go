package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Audit outcomes recorded in resultado_consumo.
const (
	OutcomeSucesso         = "sucesso"
	OutcomeErro            = "erro"
	OutcomePreflight       = "preflight"
	OutcomeUnauthenticated = "unauthenticated"
	OutcomeInvalidToken    = "invalid_token"
	OutcomeValidationError = "validation_error"
)

// LogEntry is one append-only audit record from the LOGS collection.
// Entries are never mutated or deleted by the service.
//
// Detalhes is an open string-keyed map. Conventional keys per event type:
// request outcomes carry method, path, query, status, duration_ms and the
// resolved user's id/email; login attempts carry email and reason; logouts
// carry user_id.
type LogEntry struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	OrigemConsumo    string             `bson:"origem_consumo"`
	ResultadoConsumo string             `bson:"resultado_consumo"`
	Endpoint         string             `bson:"endpoint"`
	Detalhes         map[string]any     `bson:"detalhes"`
	Timestamp        time.Time          `bson:"timestamp"`
}

// LogEntryResponse is the public shape of an audit record.
type LogEntryResponse struct {
	ID               string         `json:"id"`
	OrigemConsumo    string         `json:"origem_consumo"`
	ResultadoConsumo string         `json:"resultado_consumo"`
	Endpoint         string         `json:"endpoint"`
	Detalhes         map[string]any `json:"detalhes"`
	Timestamp        string         `json:"timestamp"`
}

// Normalize converts the stored document into its response shape.
func (l LogEntry) Normalize() LogEntryResponse {
	return LogEntryResponse{
		ID:               l.ID.Hex(),
		OrigemConsumo:    l.OrigemConsumo,
		ResultadoConsumo: l.ResultadoConsumo,
		Endpoint:         l.Endpoint,
		Detalhes:         l.Detalhes,
		Timestamp:        ISOTime(l.Timestamp),
	}
}
