package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skti-dev/bncc-backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePagination_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantPage  int
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults", target: "/x", wantPage: 1, wantLimit: 10},
		{name: "explicit values", target: "/x?page=3&limit=15", wantPage: 3, wantLimit: 15},
		{name: "limit at cap", target: "/x?limit=20", wantPage: 1, wantLimit: 20},
		{name: "page zero", target: "/x?page=0", wantErr: true},
		{name: "negative page", target: "/x?page=-2", wantErr: true},
		{name: "non-numeric page", target: "/x?page=abc", wantErr: true},
		{name: "limit zero", target: "/x?limit=0", wantErr: true},
		{name: "limit above cap", target: "/x?limit=21", wantErr: true},
		{name: "non-numeric limit", target: "/x?limit=dez", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			page, limit, err := parsePagination(r, 10, 20)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestParseAno_TableTest(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		want    int
		wantErr bool
	}{
		{name: "absent means unfiltered", target: "/x", want: 0},
		{name: "valid school year", target: "/x?ano=5", want: 5},
		{name: "upper bound", target: "/x?ano=12", want: 12},
		{name: "explicit zero rejected", target: "/x?ano=0", wantErr: true},
		{name: "above range", target: "/x?ano=13", wantErr: true},
		{name: "negative", target: "/x?ano=-1", wantErr: true},
		{name: "non-numeric", target: "/x?ano=quinto", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.target, nil)

			ano, err := parseAno(r)
			if tt.wantErr {
				assert.ErrorIs(t, err, service.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, ano)
		})
	}
}
