// httpclient/httpmethod_test.go
package httpclient

import (
	"net/http"
	"testing"
)

func TestIsIdempotentHTTPMethod(t *testing.T) {
	tests := []struct {
		name   string
		method string
		want   bool
	}{
		{
			name:   "testing an idempotent method",
			method: http.MethodGet,
			want:   true,
		},
		{
			name:   "testing a non-idempotent method",
			method: http.MethodPost,
			want:   false,
		},
		{
			name:   "testing an unknown method",
			method: "BREW",
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsIdempotentHTTPMethod(tt.method); got != tt.want {
				t.Errorf("IsIdempotentHTTPMethod() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsNonIdempotentHTTPMethod(t *testing.T) {
	tests := []struct {
		name   string
		method string
		want   bool
	}{
		{
			name:   "testing a non-idempotent method",
			method: http.MethodPatch,
			want:   true,
		},
		{
			name:   "testing an idempotent method",
			method: http.MethodDelete,
			want:   false,
		},
		{
			name:   "testing an unknown method",
			method: "BREW",
			want:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNonIdempotentHTTPMethod(tt.method); got != tt.want {
				t.Errorf("IsNonIdempotentHTTPMethod() = %v, want %v", got, tt.want)
			}
		})
	}
}
