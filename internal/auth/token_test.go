package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantOK    bool
	}{
		{
			name:   "no header",
			header: "",
			wantOK: false,
		},
		{
			name:      "bearer token",
			header:    "Bearer abc123",
			wantToken: "abc123",
			wantOK:    true,
		},
		{
			name:   "basic scheme",
			header: "Basic abc123",
			wantOK: false,
		},
		{
			name:   "lowercase scheme",
			header: "bearer abc123",
			wantOK: false,
		},
		{
			name:   "prefix without trailing space",
			header: "Bearerabc123",
			wantOK: false,
		},
		{
			name:      "empty remainder still extracted",
			header:    "Bearer ",
			wantToken: "",
			wantOK:    true,
		},
		{
			name:      "remainder kept verbatim",
			header:    "Bearer  padded ",
			wantToken: " padded ",
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			token, ok := BearerToken(req.Header)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestBearerTokenHeaderNameCaseInsensitive(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("authorization", "Bearer abc123")

	token, ok := BearerToken(req.Header)
	assert.True(t, ok)
	assert.Equal(t, "abc123", token)
}
