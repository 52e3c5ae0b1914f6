package relativetime_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"celula-igreja/internal/pkg/relativetime"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		at       time.Time
		expected string
	}{
		{"Just Now", now.Add(-30 * time.Second), "Agora"},
		{"Exactly Now", now, "Agora"},
		{"Minutes", now.Add(-5 * time.Minute), "5 min"},
		{"Just Under An Hour", now.Add(-59 * time.Minute), "59 min"},
		{"Hours", now.Add(-3 * time.Hour), "3 horas"},
		{"Just Under A Day", now.Add(-23 * time.Hour), "23 horas"},
		{"Days", now.Add(-2 * 24 * time.Hour), "2 dias"},
		{"Just Under A Week", now.Add(-6 * 24 * time.Hour), "6 dias"},
		{"Calendar Date", time.Date(2025, time.January, 5, 9, 30, 0, 0, time.UTC), "5 de jan"},
		{"Calendar Date December", time.Date(2024, time.December, 25, 0, 0, 0, 0, time.UTC), "25 de dez"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, relativetime.Format(tc.at, now))
		})
	}
}
