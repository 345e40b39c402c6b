// SPDX-License-Identifier: Apache-2.0

package service

import (
	"github.com/skti-dev/bncc-backend/internal/config"
	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/store"
)

// Services bundles every domain service behind one injection point for the
// HTTP layer.
type Services struct {
	Auth      AuthService
	Questao   QuestaoService
	Resultado ResultadoService
	Log       LogService
}

// NewServices wires all services to their repositories.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		Auth:      NewAuthService(storages.UserRepository, cfg, logger),
		Questao:   NewQuestaoService(storages.QuestaoRepository, logger),
		Resultado: NewResultadoService(storages.ResultadoRepository, logger),
		Log:       NewLogService(storages.LogRepository, logger),
	}
}
