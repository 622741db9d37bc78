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
	"lane_wars/internal/service/logger"
	"lane_wars/internal/service/middleware"
	"lane_wars/internal/service/validation"
	"lane_wars/internal/wave/usecase"
)

type WaveHandler struct {
	usecase   usecase.WaveUsecase
	sanitizer *bluemonday.Policy
}

func NewWaveHandler(usecase usecase.WaveUsecase) *WaveHandler {
	return &WaveHandler{
		usecase:   usecase,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

func (h *WaveHandler) CreateWave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received CreateWave request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	req, err := h.decodeRequest(r)
	if err != nil {
		h.handleError(w, err, "Erro ao criar wave", "Wave não encontrada", requestID)
		return
	}

	wave, err := h.usecase.CreateWave(r.Context(), req)
	if err != nil {
		h.handleError(w, err, "Erro ao criar wave", "Wave não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusCreated, wave, requestID)
	logger.AccessLogger.Info("Completed CreateWave request",
		zap.String("request_id", requestID),
		zap.Int64("wave_id", wave.ID),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) ListWaves(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received ListWaves request",
		zap.String("request_id", requestID),
		zap.String("method", r.Method),
		zap.String("url", r.URL.String()),
	)

	waves, err := h.usecase.ListWaves(r.Context())
	if err != nil {
		h.handleError(w, err, "Erro ao listar waves", "Wave não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, waves, requestID)
	logger.AccessLogger.Info("Completed ListWaves request",
		zap.String("request_id", requestID),
		zap.Int("count", len(waves)),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) GetWave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received GetWave request",
		zap.String("request_id", requestID),
		zap.String("url", r.URL.String()),
	)

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao consultar wave", "Wave não encontrada", requestID)
		return
	}

	wave, found, err := h.usecase.GetWave(r.Context(), id)
	if err == nil && !found {
		err = fmt.Errorf("wave %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		h.handleError(w, err, "Erro ao consultar wave", "Wave não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, wave, requestID)
	logger.AccessLogger.Info("Completed GetWave request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) UpdateWave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received UpdateWave request",
		zap.String("request_id", requestID),
		zap.String("url", r.URL.String()),
	)

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao atualizar wave", "Wave não encontrada", requestID)
		return
	}

	req, err := h.decodeRequest(r)
	if err != nil {
		h.handleError(w, err, "Erro ao atualizar wave", "Wave não encontrada", requestID)
		return
	}

	wave, err := h.usecase.UpdateWave(r.Context(), id, req)
	if err != nil {
		h.handleError(w, err, "Erro ao atualizar wave", "Wave não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, wave, requestID)
	logger.AccessLogger.Info("Completed UpdateWave request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) DeleteWave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received DeleteWave request",
		zap.String("request_id", requestID),
		zap.String("url", r.URL.String()),
	)

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao remover wave", "Wave não encontrada", requestID)
		return
	}

	if err := h.usecase.DeleteWave(r.Context(), id); err != nil {
		h.handleError(w, err, "Erro ao remover wave", "Wave não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{"mensagem": "Wave removida com sucesso!"}, requestID)
	logger.AccessLogger.Info("Completed DeleteWave request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) SimulateWave(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received SimulateWave request",
		zap.String("request_id", requestID),
		zap.String("url", r.URL.String()),
	)

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao simular wave", "Wave não encontrada", requestID)
		return
	}

	result, err := h.usecase.SimulateWave(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Erro ao simular wave", "Wave não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, result, requestID)
	logger.AccessLogger.Info("Completed SimulateWave request",
		zap.String("request_id", requestID),
		zap.String("vencedor", result.Vencedor),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) LastResult(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	start := time.Now()
	logger.AccessLogger.Info("Received LastResult request",
		zap.String("request_id", requestID),
		zap.String("url", r.URL.String()),
	)

	id, err := validation.ParseID(mux.Vars(r)["id"])
	if err != nil {
		h.handleError(w, err, "Erro ao consultar simulação", "Simulação não encontrada", requestID)
		return
	}

	result, err := h.usecase.LastResult(r.Context(), id)
	if err != nil {
		h.handleError(w, err, "Erro ao consultar simulação", "Simulação não encontrada", requestID)
		return
	}

	h.writeJSON(w, http.StatusOK, result, requestID)
	logger.AccessLogger.Info("Completed LastResult request",
		zap.String("request_id", requestID),
		zap.Duration("duration", time.Since(start)),
	)
}

func (h *WaveHandler) decodeRequest(r *http.Request) (domain.WaveRequest, error) {
	var req domain.WaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return req, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	for _, field := range []*string{
		&req.LaneAzul, &req.TipoWaveAzul, &req.EstrategiaAzul,
		&req.LaneVermelho, &req.TipoWaveVermelho, &req.EstrategiaVermelho,
		&req.Estado,
	} {
		*field = h.sanitizer.Sanitize(*field)
	}
	for _, field := range []*string{req.CampeaoAzul, req.CampeaoVermelho, req.Vencedor} {
		if field != nil {
			*field = h.sanitizer.Sanitize(*field)
		}
	}
	return req, nil
}

func (h *WaveHandler) writeJSON(w http.ResponseWriter, status int, body interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.AccessLogger.Error("Failed to encode response",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
	}
}

func (h *WaveHandler) handleError(w http.ResponseWriter, err error, fallback, notFound string, requestID string) {
	logger.AccessLogger.Error("Handling error",
		zap.String("request_id", requestID),
		zap.Error(err),
	)

	switch {
	case errors.Is(err, domain.ErrValidation):
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"erro": "Requisição inválida"}, requestID)
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, map[string]string{"erro": notFound}, requestID)
	default:
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"erro": fallback}, requestID)
	}
}
