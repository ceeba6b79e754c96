package api

import (
	"errors"
	"net/http"
	"time"

	respond "github.com/rs82696/Memeber-qa-Service/internal/api/respond"
	"github.com/rs82696/Memeber-qa-Service/internal/model"
	"github.com/rs82696/Memeber-qa-Service/internal/services"
)

// ReloadHandler triggers a corpus refresh from the feed.
type ReloadHandler struct {
	svc *services.QAService
}

func NewReloadHandler(svc *services.QAService) *ReloadHandler { return &ReloadHandler{svc: svc} }

// Reload POST /reload
// A failed refresh keeps serving the previous corpus.
func (h *ReloadHandler) Reload(w http.ResponseWriter, r *http.Request) {
	info, err := h.svc.Reload(r.Context())
	if err != nil {
		if errors.Is(err, model.ErrFeedUnavailable) {
			respond.WriteBadGateway(w, "feed fetch failed, previous corpus retained")
			return
		}
		respond.WriteInternalError(w, err.Error())
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"messagesLoaded": info.Messages,
		"members":        info.Members,
		"reloadedAt":     info.LoadedAt.Format(time.RFC3339),
	})
}
