package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/limbo/fitrack/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusConflict, "goal exists", errors.New("details"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{Code: http.StatusConflict, Message: "goal exists", Details: "details"}, resp)
}

func TestDecodeJSON(t *testing.T) {
	var body struct {
		Weight float64 `json:"weight"`
	}
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"weight": 71.5}`))
	require.NoError(t, httputil.DecodeJSON(r, &body))
	assert.Equal(t, 71.5, body.Weight)

	r = httptest.NewRequest(http.MethodPost, "/", nil)
	assert.ErrorIs(t, httputil.DecodeJSON(r, &body), httputil.ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader("corrupted"))
	assert.Error(t, httputil.DecodeJSON(r, &body))
}

func TestQueryHelpers(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?limit=20&page=-1&from=2024-03-01T00:00:00Z&to=yesterday", nil)
	assert.Equal(t, 20, httputil.QueryInt(r, "limit", 10, 1, 50))
	assert.Equal(t, 1, httputil.QueryInt(r, "page", 1, 1, 1<<20))
	assert.Equal(t, 7, httputil.QueryInt(r, "missing", 7, 1, 50))

	from, err := httputil.QueryTime(r, "from", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), from.UTC())
	_, err = httputil.QueryTime(r, "to", time.Time{})
	assert.Error(t, err)
	def := time.Now()
	got, err := httputil.QueryTime(r, "absent", def)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}
