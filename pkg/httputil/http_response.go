package httputil

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
)

var ErrEmptyBody = errors.New("empty request body")

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Code:    statusCode,
		Message: message,
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// DecodeJSON reads the request body into v and closes it.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return ErrEmptyBody
	}
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	return err
}

// QueryInt returns def when the parameter is missing, malformed or outside [min, max].
func QueryInt(r *http.Request, key string, def, min, max int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil || v < min || v > max {
		return def
	}
	return v
}

// QueryTime parses an RFC3339 query parameter. Missing parameters yield def.
func QueryTime(r *http.Request, key string, def time.Time) (time.Time, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return time.Parse(time.RFC3339, raw)
}
