package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "lifedesk/pkg/errors"
	"lifedesk/pkg/response"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func TestOK(t *testing.T) {
	c, w := newTestContext()

	response.OK(c, gin.H{"hello": "world"})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if resp.ErrorCode != 0 {
		t.Errorf("error_code = %d, want 0", resp.ErrorCode)
	}
	if resp.Message != response.MessageSuccess {
		t.Errorf("message = %q, want %q", resp.Message, response.MessageSuccess)
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "plain error becomes 400",
			err:        errors.New("bad input"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "HTTPError keeps status code",
			err:        pkgErrors.NewHTTPError(http.StatusConflict, "duplicate"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "wrapped HTTPError keeps status code",
			err:        errors.Join(pkgErrors.NewHTTPError(http.StatusNotFound, "missing")),
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()
			response.Error(c, tt.err)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}

func TestDateMarshal(t *testing.T) {
	d := response.Date(mustParse(t, "2026-03-14"))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2026-03-14"` {
		t.Errorf("marshaled = %s, want %q", b, "2026-03-14")
	}
}

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(response.DateFormat, s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return parsed
}
