package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"studyspot/shared"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		parts    []string
		expected string
	}{
		{
			name:     "prefix only",
			prefix:   "space:gets",
			parts:    nil,
			expected: "space:gets",
		},
		{
			name:     "single part",
			prefix:   "booking:user",
			parts:    []string{"user-1"},
			expected: "booking:user:user-1",
		},
		{
			name:     "multiple parts",
			prefix:   "booking:slots",
			parts:    []string{"user-1", "3", "2025-06-01"},
			expected: "booking:slots:user-1:3:2025-06-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.prefix, tt.parts...))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "alex@example.com", shared.NormalizeEmail("  alex@example.com "))
	assert.Equal(t, "alex@example.com", shared.NormalizeEmail("alex@example.com"))
}
