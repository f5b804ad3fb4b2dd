package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(context.Context) error { return nil }

func failing(msg string) Checker {
	return func(context.Context) error { return fmt.Errorf("%s", msg) }
}

func probe(t *testing.T, h *Handler) (int, Response) {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)

	h.ReadinessHandler().ServeHTTP(rec, req)

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec.Code, resp
}

func TestLivenessHandler_AlwaysReturns200(t *testing.T) {
	h := NewHandler()
	h.Register("session-store", failing("down"))

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	h.LivenessHandler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, StatusUp, resp.Status)
	assert.False(t, resp.Timestamp.IsZero())
	assert.Empty(t, resp.Checks)
}

func TestReadinessHandler_Outcomes(t *testing.T) {
	tests := []struct {
		name        string
		critical    map[string]Checker
		nonCritical map[string]Checker
		wantCode    int
		wantStatus  Status
	}{
		{
			name:       "no checkers",
			wantCode:   http.StatusOK,
			wantStatus: StatusUp,
		},
		{
			name:        "all up",
			critical:    map[string]Checker{"catalog": ok, "session-store": ok},
			nonCritical: map[string]Checker{"kafka": ok},
			wantCode:    http.StatusOK,
			wantStatus:  StatusUp,
		},
		{
			name:        "non-critical down degrades",
			critical:    map[string]Checker{"session-store": ok},
			nonCritical: map[string]Checker{"kafka": failing("broker unreachable")},
			wantCode:    http.StatusOK,
			wantStatus:  StatusDegraded,
		},
		{
			name:        "critical down",
			critical:    map[string]Checker{"session-store": failing("connection refused")},
			nonCritical: map[string]Checker{"kafka": ok},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  StatusDown,
		},
		{
			name:        "critical wins over degraded",
			critical:    map[string]Checker{"session-store": failing("redis down")},
			nonCritical: map[string]Checker{"kafka": failing("kafka down")},
			wantCode:    http.StatusServiceUnavailable,
			wantStatus:  StatusDown,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler()
			for name, c := range tt.critical {
				h.RegisterCritical(name, c)
			}
			for name, c := range tt.nonCritical {
				h.RegisterNonCritical(name, c)
			}

			code, resp := probe(t, h)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Len(t, resp.Checks, len(tt.critical)+len(tt.nonCritical))
		})
	}
}

func TestReadinessHandler_ReportsPerCheckDetail(t *testing.T) {
	h := NewHandler()
	h.RegisterCritical("session-store", ok)
	h.RegisterNonCritical("kafka", failing("broker unreachable"))

	_, resp := probe(t, h)

	assert.Equal(t, CheckResult{Status: StatusUp, Critical: true}, resp.Checks["session-store"])
	assert.Equal(t, CheckResult{Status: StatusDown, Critical: false, Error: "broker unreachable"}, resp.Checks["kafka"])
}

func TestRegister_IsCriticalByDefault(t *testing.T) {
	h := NewHandler()
	h.Register("session-store", failing("fail"))

	code, resp := probe(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.True(t, resp.Checks["session-store"].Critical)
}

func TestRegister_Overwrite(t *testing.T) {
	h := NewHandler()
	h.Register("session-store", failing("fail"))
	h.Register("session-store", ok)

	code, resp := probe(t, h)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, StatusUp, resp.Checks["session-store"].Status)
}

func TestReadinessHandler_TimeoutPropagates(t *testing.T) {
	h := NewHandler()
	h.timeout = 20 * time.Millisecond
	h.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	code, resp := probe(t, h)
	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, context.DeadlineExceeded.Error(), resp.Checks["slow"].Error)
}
