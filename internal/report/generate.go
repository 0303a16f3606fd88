package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Sondagem/internal/log"
	"Sondagem/internal/report/layout"
	"Sondagem/internal/spt"

	"github.com/phpdave11/gofpdf"
)

// Result describes a generated report file.
type Result struct {
	FileName string  `json:"pdfPath"`
	Path     string  `json:"-"`
	MaxDepth float64 `json:"maxDepth"`
}

// Generator renders SPT reports into OutputDir.
type Generator struct {
	OutputDir string
	LogoPath  string
	Now       func() time.Time
}

func NewGenerator(outputDir, logoPath string) *Generator {
	return &Generator{OutputDir: outputDir, LogoPath: logoPath, Now: time.Now}
}

// Generate draws p and writes it as Laudo_SPT_<id>.pdf. A file that fails
// half way is removed.
func (g *Generator) Generate(p spt.Payload) (Result, error) {
	start := time.Now()
	now := g.now()
	name := spt.FileName(p.Form, now)
	path := filepath.Join(g.OutputDir, name)

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		observe("error", start)
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	var scale layout.Scale
	err := withDocument(path, func(pdf *gofpdf.Fpdf) error {
		var err error
		scale, err = layout.NewEngine(g.LogoPath, now).Render(newSurface(pdf), p)
		return err
	})
	if err != nil {
		observe("error", start)
		return Result{}, fmt.Errorf("generate %s: %w", name, err)
	}
	observe("ok", start)

	log.Debugw("report generated",
		"file", name,
		"layers", len(p.Layers),
		"samples", len(p.Samples),
		"max_depth", scale.MaxDepth,
	)
	return Result{FileName: name, Path: path, MaxDepth: scale.MaxDepth}, nil
}

func (g *Generator) now() time.Time {
	if g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

func newDocument(title string) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("Sondagem", true)
	pdf.AddPage()
	return pdf
}

// withDocument opens the output file, runs draw on a fresh page and writes
// the result. The file is always closed, and removed if anything failed.
func withDocument(path string, draw func(*gofpdf.Fpdf) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	pdf := newDocument(filepath.Base(path))
	if err := draw(pdf); err != nil {
		return err
	}
	return pdf.Output(f)
}
