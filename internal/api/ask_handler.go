package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	respond "github.com/rs82696/Memeber-qa-Service/internal/api/respond"
	"github.com/rs82696/Memeber-qa-Service/internal/model"
	"github.com/rs82696/Memeber-qa-Service/internal/services"
)

// AskHandler is a thin HTTP transport over the QA service.
type AskHandler struct {
	svc *services.QAService
}

func NewAskHandler(svc *services.QAService) *AskHandler { return &AskHandler{svc: svc} }

// AskPost POST /ask
func (h *AskHandler) AskPost(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Question string `json:"question"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	h.answer(w, r, req.Question)
}

// AskGet GET /ask?question=...
func (h *AskHandler) AskGet(w http.ResponseWriter, r *http.Request) {
	h.answer(w, r, r.URL.Query().Get("question"))
}

func (h *AskHandler) answer(w http.ResponseWriter, r *http.Request, question string) {
	if strings.TrimSpace(question) == "" {
		respond.WriteBadRequest(w, "question must not be empty")
		return
	}

	reply, err := h.svc.Ask(r.Context(), question)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrCorpusUnavailable):
			respond.WriteServiceUnavailable(w, "message corpus not loaded yet")
		case errors.Is(err, model.ErrAnswerUnavailable):
			respond.WriteBadGateway(w, "answer generation failed")
		default:
			respond.WriteInternalError(w, err.Error())
		}
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]string{"answer": reply})
}
