package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteLabel(t *testing.T) {
	aliases := map[string]string{"/functions/v1/virtual-try-on": "/v1/virtual-try-on"}

	tests := []struct {
		fullPath string
		want     string
	}{
		{fullPath: "/functions/v1/virtual-try-on", want: "/v1/virtual-try-on"},
		{fullPath: "/v1/virtual-try-on", want: "/v1/virtual-try-on"},
		{fullPath: "/v1/styles/:id", want: "/v1/styles/:id"},
		{fullPath: "", want: unmatchedPath},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, routeLabel(tt.fullPath, aliases), tt.fullPath)
	}
}
