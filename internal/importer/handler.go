package importer

import (
	"encoding/json"
	"errors"
	"net/http"

	"Sondagem/internal/log"
	"Sondagem/internal/spt"
)

const maxUpload = 10 << 20

type Handler struct{}

// Import turns an uploaded workbook (form field "file") into a normalized
// payload the client can review and post to /api/generate-pdf.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUpload)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := ParseWorkbook(file)
	if err != nil {
		log.Warnw("workbook rejected", "request_id", log.RequestID(r.Context()), "error", err)
		if errors.Is(err, ErrNoData) {
			http.Error(w, "Empty workbook", http.StatusBadRequest)
			return
		}
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(spt.Normalize(raw))
}
