package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name  string
		sum   int64
		count int64
		want  string
	}{
		{"no reviews", 0, 0, "0.0"},
		{"single review", 4, 1, "4.0"},
		{"exact mean", 12, 3, "4.0"},
		{"rounds down", 13, 3, "4.3"},
		{"rounds up", 14, 3, "4.7"},
		{"half rounds away from zero", 17, 4, "4.3"},
		{"one of each", 15, 5, "3.0"},
		{"repeating decimal", 29, 6, "4.8"},
		{"half at second digit", 37, 8, "4.6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(tt.sum, tt.count).StringFixed(1))
		})
	}
}
