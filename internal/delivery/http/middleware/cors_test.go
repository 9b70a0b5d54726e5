package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":null}`))
	})

	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantMethod bool
	}{
		{
			name:       "allowed origin on plain write",
			allowed:    []string{"http://localhost:5173/"},
			method:     http.MethodGet,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusOK,
			wantOrigin: "http://localhost:5173",
		},
		{
			name:       "disallowed origin",
			allowed:    []string{"http://localhost:5173"},
			method:     http.MethodGet,
			origin:     "http://evil.test",
			wantStatus: http.StatusOK,
		},
		{
			name:       "preflight for allowed origin",
			allowed:    []string{"http://localhost:5173"},
			method:     http.MethodOptions,
			origin:     "http://localhost:5173",
			wantStatus: http.StatusNoContent,
			wantOrigin: "http://localhost:5173",
			wantMethod: true,
		},
		{
			name:       "preflight for disallowed origin",
			allowed:    []string{"http://localhost:5173"},
			method:     http.MethodOptions,
			origin:     "http://evil.test",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "wildcard echoes origin",
			allowed:    []string{" * "},
			method:     http.MethodGet,
			origin:     "http://any.test",
			wantStatus: http.StatusOK,
			wantOrigin: "http://any.test",
		},
		{
			name:       "no origin header",
			allowed:    []string{"*"},
			method:     http.MethodGet,
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.allowed, okHandler)
			req := httptest.NewRequest(tt.method, "http://test/calendar", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantOrigin != "" {
				assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
			}
			assert.Equal(t, tt.wantMethod, rr.Header().Get("Access-Control-Allow-Methods") != "")
		})
	}
}
