package service

import (
	"context"
	"fmt"
	"time"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/store"
	"github.com/skti-dev/bncc-backend/models"
)

// logService implements LogService on top of a LogRepository.
//
// Recording is strictly best-effort: a broken audit trail must never break
// the request that produced it, so Record reports failure instead of
// returning an error.
type logService struct {
	logRepository store.LogRepository
	logger        *logger.Logger
}

// NewLogService constructs a LogService backed by the given repository.
func NewLogService(logRepository store.LogRepository, logger *logger.Logger) LogService {
	return &logService{
		logRepository: logRepository,
		logger:        logger,
	}
}

// Record persists one access-log entry stamped with the current UTC time.
// On storage failure it logs a warning locally and returns ok=false; the
// caller is expected to carry on regardless.
func (l *logService) Record(ctx context.Context, origem, resultado, endpoint string, detalhes map[string]any) (string, bool) {
	entry := models.LogEntry{
		OrigemConsumo:    origem,
		ResultadoConsumo: resultado,
		Endpoint:         endpoint,
		Detalhes:         detalhes,
		Timestamp:        time.Now().UTC(),
	}

	insertedID, err := l.logRepository.Insert(ctx, entry)
	if err != nil {
		l.logger.Warn().Err(err).
			Str("endpoint", endpoint).
			Str("resultado_consumo", resultado).
			Msg("access log write failed")
		return "", false
	}

	return insertedID.Hex(), true
}

// List returns one page of access-log entries, newest first.
//
// The origem/resultado filters are applied to the retrieved page after
// pagination, so Total and TotalPages describe the whole collection while
// Data holds only the matching entries of the requested page.
func (l *logService) List(ctx context.Context, query LogListQuery) (models.Page[models.LogEntryResponse], error) {
	log := logger.FromContext(ctx)

	total, err := l.logRepository.Count(ctx)
	if err != nil {
		log.Err(err).Msg("access log count failed")
		return models.Page[models.LogEntryResponse]{}, fmt.Errorf("%w: access log count failed: %w", ErrService, err)
	}

	pages := totalPages(total, query.Limit)
	if total == 0 || query.Page > pages {
		return newPage[models.LogEntryResponse](nil, total, query.Page, query.Limit), nil
	}

	skip := int64(query.Page-1) * int64(query.Limit)
	entries, err := l.logRepository.FindPage(ctx, skip, int64(query.Limit))
	if err != nil {
		log.Err(err).Msg("access log page retrieval failed")
		return models.Page[models.LogEntryResponse]{}, fmt.Errorf("%w: access log page retrieval failed: %w", ErrService, err)
	}

	data := make([]models.LogEntryResponse, 0, len(entries))
	for _, entry := range entries {
		if query.Origem != "" && entry.OrigemConsumo != query.Origem {
			continue
		}
		if query.Resultado != "" && entry.ResultadoConsumo != query.Resultado {
			continue
		}
		data = append(data, entry.Normalize())
	}

	return newPage(data, total, query.Page, query.Limit), nil
}
