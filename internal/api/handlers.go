package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/fitrack/internal/service"
	"github.com/limbo/fitrack/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

// authorized fetches uid placed by AuthMiddleware, writing 401 if it's absent.
func authorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.Nil, false
	}
	return uid, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, v any) bool {
	if err := httputil.DecodeJSON(r, v); err != nil {
		logger.Error(op+" error: invalid body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, logger, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}
