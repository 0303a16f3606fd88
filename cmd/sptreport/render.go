package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"Sondagem/internal/config"
	"Sondagem/internal/importer"
	"Sondagem/internal/report"
	"Sondagem/internal/spt"

	"github.com/spf13/cobra"
)

type renderOpts struct {
	outDir string // defaults to SPT_OUTPUT_DIR
	logo   string // defaults to SPT_LOGO_PATH
}

func newRenderCmd(cfg *config.Config) *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a report from a JSON request or an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.outDir == "" {
				opts.outDir = cfg.OutputDir
			}
			if opts.logo == "" {
				opts.logo = cfg.LogoPath
			}
			res, err := runRender(args[0], opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outDir, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&opts.logo, "logo", "", "company logo image")
	return cmd
}

func runRender(path string, opts renderOpts) (report.Result, error) {
	raw, err := readInput(path)
	if err != nil {
		return report.Result{}, err
	}
	return report.NewGenerator(opts.outDir, opts.logo).Generate(spt.Normalize(raw))
}

// readInput accepts either a workbook (.xlsx) or the JSON body the web form
// posts.
func readInput(path string) (spt.RawPayload, error) {
	f, err := os.Open(path)
	if err != nil {
		return spt.RawPayload{}, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return importer.ParseWorkbook(f)
	}
	var raw spt.RawPayload
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return spt.RawPayload{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return raw, nil
}
