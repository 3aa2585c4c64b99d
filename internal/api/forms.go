package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/smilesofhope/hopecms/internal/assistant"
	"github.com/smilesofhope/hopecms/internal/mailer"
)

// FormHandler relays visitor form submissions and chat messages to the
// boundary collaborators. Relay failures are reported as sent=false, never
// as a broken page.
type FormHandler struct {
	mail      *mailer.Client
	assistant *assistant.Assistant
	logger    *slog.Logger
}

// NewFormHandler creates a FormHandler. mail and asst may be nil when the
// corresponding collaborator is not configured.
func NewFormHandler(mail *mailer.Client, asst *assistant.Assistant, logger *slog.Logger) *FormHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &FormHandler{mail: mail, assistant: asst, logger: logger}
}

func (h *FormHandler) relay(w http.ResponseWriter, r *http.Request, form string, send func(ctx context.Context) error) {
	if h.mail == nil {
		writeJSON(w, http.StatusOK, FormResponse{Sent: false})
		return
	}
	if err := send(r.Context()); err != nil {
		h.logger.Warn("form relay failed", slog.String("form", form), slog.String("error", err.Error()))
		writeJSON(w, http.StatusOK, FormResponse{Sent: false})
		return
	}
	writeJSON(w, http.StatusOK, FormResponse{Sent: true})
}

// Contact handles POST /forms/contact.
func (h *FormHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var form mailer.ContactForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	h.relay(w, r, "contact", func(ctx context.Context) error { return h.mail.SendContact(ctx, form) })
}

// Join handles POST /forms/join.
func (h *FormHandler) Join(w http.ResponseWriter, r *http.Request) {
	var form mailer.JoinForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	h.relay(w, r, "join", func(ctx context.Context) error { return h.mail.SendJoin(ctx, form) })
}

// Donate handles POST /forms/donate.
func (h *FormHandler) Donate(w http.ResponseWriter, r *http.Request) {
	var form mailer.DonateForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	h.relay(w, r, "donate", func(ctx context.Context) error { return h.mail.SendDonate(ctx, form) })
}

// Chat handles POST /chat.
func (h *FormHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	msg := strings.TrimSpace(req.Message)
	if msg == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("message is required"))
		return
	}
	if h.assistant == nil {
		writeJSON(w, http.StatusOK, ChatResponse{Reply: assistant.OfflineMessage})
		return
	}
	writeJSON(w, http.StatusOK, ChatResponse{Reply: h.assistant.Reply(r.Context(), msg)})
}
