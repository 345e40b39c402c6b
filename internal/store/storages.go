package store

import (
	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
)

// Storages aggregates every repository of the application, one per
// collection.
type Storages struct {
	UserRepository      UserRepository
	QuestaoRepository   QuestaoRepository
	ResultadoRepository ResultadoRepository
	LogRepository       LogRepository
}

// NewStorages wires all repositories to the shared database handle using the
// configured collection names.
func NewStorages(db *DB, cfg config.Mongo, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db.Collection(cfg.UsersCollection), logger),
		QuestaoRepository:   NewQuestaoRepository(db.Collection(cfg.QuestoesCollection), logger),
		ResultadoRepository: NewResultadoRepository(db.Collection(cfg.ResultadosCollection), logger),
		LogRepository:       NewLogRepository(db.Collection(cfg.LogsCollection), logger),
	}
}
