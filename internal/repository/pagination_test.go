package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		perPage    int
		total      int64
		wantPage   int
		wantPer    int
		wantPages  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, 25, 1, 10, 3, 0},
		{"exact multiple", 1, 10, 30, 1, 10, 3, 0},
		{"partial last page", 2, 10, 21, 2, 10, 3, 10},
		{"empty result set", 1, 10, 0, 1, 10, 0, 0},
		{"single item", 1, 10, 1, 1, 10, 1, 0},
		{"negative page falls back", -3, 10, 50, 1, 10, 5, 0},
		{"per_page capped", 1, 1000, 500, 1, MaxPerPage, 5, 0},
		{"third page offset", 3, 7, 100, 3, 7, 15, 14},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.perPage, tt.total)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantPer, p.PerPage)
			assert.Equal(t, tt.total, p.Total)
			assert.Equal(t, tt.wantPages, p.Pages)
			assert.Equal(t, tt.wantOffset, p.Offset())
		})
	}
}
