package auth_client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticTokenValidator(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		provided   string
		want       bool
	}{
		{"matching token", "s3cret", "s3cret", true},
		{"wrong token", "s3cret", "s3cre", false},
		{"empty provided", "s3cret", "", false},
		{"not configured", "", "", false},
		{"not configured with token", "", "anything", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := NewStatic(tt.configured).ValidateToken(tt.provided)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}
}
