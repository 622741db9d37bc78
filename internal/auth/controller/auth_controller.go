package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"lane_wars/domain"
	"lane_wars/internal/auth/usecase"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
)

type AuthHandler struct {
	usecase   usecase.AuthUsecase
	jwtToken  middleware.JwtTokenService
	tokenTTL  time.Duration
	sanitizer *bluemonday.Policy
}

func NewAuthHandler(usecase usecase.AuthUsecase, jwtToken middleware.JwtTokenService, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		usecase:   usecase,
		jwtToken:  jwtToken,
		tokenTTL:  tokenTTL,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (h *AuthHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	logger.AccessLogger.Info("Received RegisterUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var req domain.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", err, requestID)
		return
	}

	req.Nome = h.sanitizer.Sanitize(req.Nome)
	req.Email = h.sanitizer.Sanitize(req.Email)

	user, err := h.usecase.RegisterUser(r.Context(), req.Nome, req.Email, req.Senha)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, registerMessage(err), err, requestID)
		return
	}

	h.writeJSON(w, http.StatusCreated, user, requestID)
	logger.AccessLogger.Info("Completed RegisterUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusCreated),
	)
}

func (h *AuthHandler) LoginUser(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := middleware.GetRequestID(r.Context())

	logger.AccessLogger.Info("Received LoginUser request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	var creds domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.writeError(w, http.StatusBadRequest, "Corpo da requisição inválido", err, requestID)
		return
	}

	user, err := h.usecase.LoginUser(r.Context(), h.sanitizer.Sanitize(creds.Email), creds.Senha)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, loginMessage(err), err, requestID)
		return
	}

	tokenExpTime := time.Now().Add(h.tokenTTL).Unix()
	token, err := h.jwtToken.Create(user.ID, tokenExpTime)
	if err != nil {
		h.writeError(w, http.StatusInternalServerError, "Erro ao gerar token", err, requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, domain.LoginResponse{Token: token, Usuario: user}, requestID)
	logger.AccessLogger.Info("Completed LoginUser request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", http.StatusOK),
	)
}

func registerMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrConflict):
		return "Email já cadastrado"
	case errors.Is(err, domain.ErrValidation):
		return "Dados de registro inválidos"
	default:
		return "Erro ao registrar usuário"
	}
}

func loginMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return "Usuário não encontrado"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "Senha incorreta"
	default:
		return "Erro ao realizar login"
	}
}

func (h *AuthHandler) writeJSON(w http.ResponseWriter, status int, body interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *AuthHandler) writeError(w http.ResponseWriter, status int, message string, err error, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Int("status", status),
		zap.Error(err),
	)
	h.writeJSON(w, status, map[string]string{"erro": message}, requestID)
}
