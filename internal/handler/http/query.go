package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/skti-dev/bncc-backend/internal/service"
)

// Per-resource limit caps and defaults for the common list contract.
const (
	questoesDefaultLimit = 10
	questoesMaxLimit     = 20

	resultadosDefaultLimit = 10
	resultadosMaxLimit     = 50

	logsDefaultLimit = 50
	logsMaxLimit     = 200
)

// parsePagination reads the page/limit query parameters of a list request.
// page defaults to 1 and must be >= 1; limit defaults to defaultLimit and
// must fall within [1, maxLimit].
func parsePagination(r *http.Request, defaultLimit, maxLimit int) (page, limit int, err error) {
	page, err = intQueryParam(r, "page", 1)
	if err != nil || page < 1 {
		return 0, 0, fmt.Errorf("%w: parâmetro page inválido", service.ErrValidation)
	}

	limit, err = intQueryParam(r, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		return 0, 0, fmt.Errorf("%w: parâmetro limit inválido (máximo %d)", service.ErrValidation, maxLimit)
	}

	return page, limit, nil
}

// parseAno reads the optional ano filter. An absent parameter yields zero,
// meaning no filter; a supplied value must be an integer school year between
// 1 and 12 — an explicit 0 is rejected, not treated as absent.
func parseAno(r *http.Request) (int, error) {
	if r.URL.Query().Get("ano") == "" {
		return 0, nil
	}
	ano, err := intQueryParam(r, "ano", 0)
	if err != nil || ano < 1 || ano > 12 {
		return 0, fmt.Errorf("%w: parâmetro ano inválido (esperado 1-12)", service.ErrValidation)
	}
	return ano, nil
}

// intQueryParam parses one integer query parameter, falling back to def when
// the parameter is absent.
func intQueryParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
