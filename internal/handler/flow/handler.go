// Package flow exposes the staged conversation engine over HTTP.
package flow

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kreators/easyslang/backend/internal/model/category"
	model "github.com/kreators/easyslang/backend/internal/model/flow"
	flowService "github.com/kreators/easyslang/backend/internal/service/flow"
	"github.com/kreators/easyslang/backend/pkg/utils"
)

// Handler 会话流程的HTTP处理器
type Handler struct {
	svc *flowService.Service
}

// New 创建流程处理器
func New(svc *flowService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册流程相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/flow-chat", h.handleAction)
	r.Get("/flow-chat/topics", h.handleTopics)
	r.Get("/flow-chat/session/{sessionID}", h.handleGetSession)
	r.Delete("/flow-chat/session/{sessionID}", h.handleDeleteSession)
}

// handleAction dispatches the three flow actions from one endpoint.
func (h *Handler) handleAction(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Action    string `json:"action"`
		SessionID string `json:"session_id"`
		Topic     string `json:"topic"`
		UserInput string `json:"user_input"`
		FromLang  string `json:"from_lang"`
		ToLang    string `json:"to_lang"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	action, ok := model.ParseAction(payload.Action)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "unknown action")
		return
	}
	if payload.FromLang == "" {
		payload.FromLang = "Korean"
	}
	if payload.ToLang == "" {
		payload.ToLang = "English"
	}

	var resp *model.Response
	var err error
	switch action {
	case model.ActionPickTopic:
		if payload.Topic == "" {
			utils.RespondError(w, http.StatusBadRequest, "topic is required")
			return
		}
		resp, err = h.svc.PickTopic(r.Context(), payload.Topic, payload.FromLang, payload.ToLang)
	case model.ActionVoiceInput:
		if payload.SessionID == "" {
			utils.RespondError(w, http.StatusBadRequest, "session_id is required")
			return
		}
		resp, err = h.svc.VoiceInput(r.Context(), payload.SessionID, payload.UserInput)
	case model.ActionRestart:
		if payload.SessionID == "" {
			utils.RespondError(w, http.StatusBadRequest, "session_id is required")
			return
		}
		resp, err = h.svc.Restart(r.Context(), payload.SessionID)
	}

	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

// handleTopics lists the selectable topics plus a vocabulary preview for the
// emotion topics, so clients can show target words before a session starts.
func (h *Handler) handleTopics(w http.ResponseWriter, r *http.Request) {
	vocabulary := make(map[string][]category.LearnWord, len(category.Emotions()))
	for _, e := range category.Emotions() {
		vocabulary[string(e)] = category.Vocabulary(e)
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"topics":     h.svc.Topics(),
		"vocabulary": vocabulary,
	})
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.svc.GetSession(chi.URLParam(r, "sessionID"))
	if err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, snapshot)
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteSession(chi.URLParam(r, "sessionID")); err != nil {
		utils.RespondError(w, statusFor(err), err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, flowService.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, flowService.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, flowService.ErrUnknownTopic),
		errors.Is(err, flowService.ErrEmptyInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
