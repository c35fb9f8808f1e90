package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bgv/portfolio-console/internal/composer"
	"github.com/bgv/portfolio-console/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio as an HTML resume, CSV, JSON or PDF",
	Long:  "Fetches all five collections once and writes the requested artifact to disk. The filename is derived from the profile name; PDF requires Chrome/Chromium.",
	RunE:  runExport,
}

var (
	exportFormat string
	exportOut    string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "html", "Artifact format: html, csv, json or pdf")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", ".", "Directory to write the artifact into")

	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	env, err := newAppEnv()
	if err != nil {
		return err
	}

	view, err := composer.Load(cmd.Context(), env.client)
	if err != nil {
		return fmt.Errorf("failed to fetch portfolio: %w", err)
	}

	data := export.Data{
		Profile:    view.Profile,
		Skills:     view.Skills,
		Projects:   view.Projects,
		Experience: view.Experience,
		Education:  view.Education,
	}
	engine := export.NewEngine()

	var (
		filename string
		content  []byte
	)
	switch exportFormat {
	case "html":
		doc, err := engine.Resume(data)
		if err != nil {
			return err
		}
		filename = export.ResumeFilename(data.Profile)
		content = []byte(doc)
	case "csv":
		filename = export.CSVFilename(data.Profile)
		content = []byte(engine.CSV(data))
	case "json":
		archive, err := engine.Archive(data)
		if err != nil {
			return err
		}
		filename = export.ArchiveFilename(data.Profile)
		content = archive
	case "pdf":
		doc, err := engine.Resume(data)
		if err != nil {
			return err
		}
		pdf, err := export.RenderPDF(cmd.Context(), doc, export.DefaultPDFTimeout)
		if err != nil {
			return err
		}
		filename = export.PDFFilename(data.Profile)
		content = pdf
	default:
		return fmt.Errorf("unknown format %q: expected html, csv, json or pdf", exportFormat)
	}

	if err := os.MkdirAll(exportOut, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(exportOut, filename)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Wrote %s\n", path)
	return nil
}
