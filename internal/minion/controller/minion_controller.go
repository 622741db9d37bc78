package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"lane_wars/domain"
	"lane_wars/internal/minion/usecase"
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
	"lane_wars/internal/service/validation"
)

const notFoundMessage = "Minion não encontrado"

type MinionHandler struct {
	usecase   usecase.MinionUsecase
	sanitizer *bluemonday.Policy
}

func NewMinionHandler(usecase usecase.MinionUsecase) *MinionHandler {
	return &MinionHandler{
		usecase:   usecase,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (h *MinionHandler) logReceived(r *http.Request, op string) (string, time.Time) {
	requestID := middleware.GetRequestID(r.Context())
	logger.AccessLogger.Info("Received "+op+" request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)
	return requestID, time.Now()
}

func (h *MinionHandler) logCompleted(op, requestID string, start time.Time, status int) {
	logger.AccessLogger.Info("Completed "+op+" request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
		zap.Int("status", status),
	)
}

func (h *MinionHandler) decodeRequest(r *http.Request) (domain.MinionRequest, error) {
	var req domain.MinionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	req.Tipo = h.sanitizer.Sanitize(req.Tipo)
	req.Lado = h.sanitizer.Sanitize(req.Lado)
	return req, nil
}

func (h *MinionHandler) CreateMinion(w http.ResponseWriter, r *http.Request) {
	requestID, start := h.logReceived(r, "CreateMinion")

	req, err := h.decodeRequest(r)
	if err != nil {
		h.handleError(w, err, "Erro ao criar minion", requestID)
		return
	}

	minion, err := h.usecase.CreateMinion(r.Context(), req)
	if err != nil {
		h.handleError(w, err, "Erro ao criar minion", requestID)
		return
	}

	h.writeJSON(w, http.StatusCreated, minion, requestID)
	h.logCompleted("CreateMinion", requestID, start, http.StatusCreated)
}

func (h *MinionHandler) ListMinions(w http.ResponseWriter, r *http.Request) {
	requestID, start := h.logReceived(r, "ListMinions")

	minions, err := h.usecase.ListMinions(r.Context())
	if err != nil {
		h.handleError(w, err, "Erro ao listar minions", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, minions, requestID)
	h.logCompleted("ListMinions", requestID, start, http.StatusOK)
}

func (h *MinionHandler) GetMinion(w http.ResponseWriter, r *http.Request) {
	requestID, start := h.logReceived(r, "GetMinion")

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao consultar minion", requestID)
		return
	}

	minion, found, err := h.usecase.GetMinion(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Erro ao consultar minion", requestID)
		return
	}
	if !found {
		h.handleError(w, fmt.Errorf("minion %d: %w", id, domain.ErrNotFound), "Erro ao consultar minion", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, minion, requestID)
	h.logCompleted("GetMinion", requestID, start, http.StatusOK)
}

func (h *MinionHandler) UpdateMinion(w http.ResponseWriter, r *http.Request) {
	requestID, start := h.logReceived(r, "UpdateMinion")

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao atualizar minion", requestID)
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		h.handleError(w, err, "Erro ao atualizar minion", requestID)
		return
	}

	minion, err := h.usecase.UpdateMinion(r.Context(), id, req)
	if err != nil {
		h.handleError(w, err, "Erro ao atualizar minion", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, minion, requestID)
	h.logCompleted("UpdateMinion", requestID, start, http.StatusOK)
}

func (h *MinionHandler) DeleteMinion(w http.ResponseWriter, r *http.Request) {
	requestID, start := h.logReceived(r, "DeleteMinion")

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao remover minion", requestID)
		return
	}

	if err := h.usecase.DeleteMinion(r.Context(), id); err != nil {
		h.handleError(w, err, "Erro ao remover minion", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"mensagem": "Minion removido com sucesso!"}, requestID)
	h.logCompleted("DeleteMinion", requestID, start, http.StatusOK)
}

func (h *MinionHandler) writeJSON(w http.ResponseWriter, status int, body interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

// handleError answers 400 for malformed input, 404 for a missing minion and
// the route's generic message with 500 for anything else.
func (h *MinionHandler) handleError(w http.ResponseWriter, err error, fallback string, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"}, requestID)
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"erro": notFoundMessage}, requestID)
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"erro": fallback}, requestID)
	}
}
