package handlers

import (
	"net/http"

	qrcode "github.com/skip2/go-qrcode"
)

// handleShareQR renders the server's LAN URL as a QR code so the observer
// can open the logger on a phone at pitch-side
func (h *Handlers) handleShareQR(w http.ResponseWriter, r *http.Request) {
	if h.BaseURL == "" {
		respondError(w, NotFound("Share URL not configured"))
		return
	}

	png, err := qrcode.Encode(h.BaseURL, qrcode.Medium, 256)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Write(png)
}
