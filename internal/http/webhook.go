package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/guiabeleza/salao/internal/billing"
)

const maxWebhookBody = 1 << 20 // 1 MiB

// KiwifyWebhook recebe os eventos de pagamento. A assinatura vem no query
// param signature (padrão da Kiwify) ou no header X-Kiwify-Signature.
func (h *Handler) KiwifyWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", "corpo ilegível", nil)
		return
	}

	signature := r.URL.Query().Get("signature")
	if signature == "" {
		signature = r.Header.Get("X-Kiwify-Signature")
	}

	if err := h.webhook.Process(r.Context(), body, signature); err != nil {
		switch {
		case errors.Is(err, billing.ErrInvalidSignature):
			WriteError(w, http.StatusUnauthorized, "AUTH", "assinatura inválida", nil)
		case errors.Is(err, billing.ErrMissingOrderID):
			WriteError(w, http.StatusBadRequest, "VALIDATION", err.Error(), nil)
		default:
			WriteError(w, http.StatusInternalServerError, "INTERNAL", "não foi possível processar o evento", nil)
		}
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
