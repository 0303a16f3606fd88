package report

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"Sondagem/internal/log"
	"Sondagem/internal/repo"
	"Sondagem/internal/spt"

	"github.com/gorilla/mux"
)

type Handler struct {
	Gen  *Generator
	Repo repo.Repository // nil disables the registry
}

type generateResponse struct {
	Success bool   `json:"success"`
	PdfPath string `json:"pdfPath,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// Generate accepts {formData, soilLayers, sptData}, normalizes it and
// renders the PDF. Any failure is reported as {success: false, error}.
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var raw spt.RawPayload
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, generateResponse{Error: "Invalid request payload"})
		return
	}
	p := spt.Normalize(raw)

	res, err := h.Gen.Generate(p)
	if err != nil {
		log.Errorw("report generation failed", "request_id", log.RequestID(r.Context()), "error", err)
		writeJSON(w, http.StatusInternalServerError, generateResponse{Error: err.Error()})
		return
	}

	if h.Repo != nil {
		rec := repo.Record{
			FileName:     res.FileName,
			ReportNumber: p.Form.Get(spt.FieldReportNumber),
			Client:       p.Form.Get(spt.FieldClient),
			MaxDepth:     res.MaxDepth,
			Layers:       len(p.Layers),
			Samples:      len(p.Samples),
		}
		if _, err := h.Repo.SaveReport(r.Context(), rec); err != nil {
			log.Warnw("report registry save failed", "file", res.FileName, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, generateResponse{Success: true, PdfPath: res.FileName})
}

// Download serves a previously generated file by name.
func (h *Handler) Download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".pdf") {
		http.Error(w, "Invalid file name", http.StatusBadRequest)
		return
	}
	path := filepath.Join(h.Gen.OutputDir, name)
	if _, err := os.Stat(path); err != nil {
		http.Error(w, "Report not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+name+"\"")
	http.ServeFile(w, r, path)
}

// List returns the most recent registry entries.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		http.Error(w, "Report registry disabled", http.StatusNotFound)
		return
	}
	recs, err := h.Repo.ListReports(r.Context(), 50)
	if err != nil {
		log.Errorw("report registry list failed", "error", err)
		http.Error(w, "DB error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}
