package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"github.com/rfaulk/invoice-harvester/internal/config"
	"github.com/rfaulk/invoice-harvester/internal/harvest"
	"github.com/rfaulk/invoice-harvester/internal/pdftext"
	"github.com/rfaulk/invoice-harvester/internal/report"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-version" || arg == "-v" {
			fmt.Println(version)
			os.Exit(0)
		}
	}

	fs := ff.NewFlagSet("invoice-harvester")
	var (
		configPath  = fs.StringLong("config", "invoice-harvester.yaml", "Vendor configuration file path")
		inputDir    = fs.StringLong("input", "./invoices", "Directory of PDF documents to process")
		dbPath      = fs.StringLong("db", "invoice-harvester.db", "Database file path")
		outPath     = fs.StringLong("out", "", "Report output path (.xlsx or .csv, optional)")
		pdfEngine   = fs.StringLong("pdf-engine", "fitz", "PDF text engine: 'fitz' or 'ledongthuc'")
		workers     = fs.IntLong("workers", 4, "Number of documents processed in parallel")
		keepText    = fs.BoolLong("keep-text", "Keep the extracted text of each document for review")
		textDir     = fs.StringLong("text-dir", "./extracted-text", "Directory for kept text dumps")
		reprocess   = fs.BoolLong("reprocess", "Re-run extraction over kept text dumps instead of reading PDFs")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, os.Args[1:],
		ff.WithEnvVarPrefix("INVOICE_HARVESTER"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Check version flag after parsing
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	if *outPath != "" && !report.SupportedExtension(*outPath) {
		slog.Error("Unsupported report format", "path", *outPath, "valid", ".xlsx or .csv")
		os.Exit(1)
	}

	// Load vendor configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		os.Exit(1)
	}

	// Initialize database
	slog.Info("Initializing database...")
	db, err := harvest.NewBoltDB(*dbPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Initialize PDF engine based on type
	var extractor pdftext.Extractor
	switch *pdfEngine {
	case "fitz":
		extractor = pdftext.NewFitz()
	case "ledongthuc":
		extractor = pdftext.NewRows()
	default:
		slog.Error("Invalid PDF engine", "engine", *pdfEngine, "valid", "fitz or ledongthuc")
		os.Exit(1)
	}
	defer extractor.Close()

	// Initialize text dump storage when kept text is written or read
	var store harvest.Storage
	if *keepText || *reprocess {
		localStore, err := harvest.NewLocalStorage(*textDir)
		if err != nil {
			slog.Error("Failed to initialize text storage", "error", err)
			os.Exit(1)
		}
		store = localStore
	}

	service := harvest.NewService(db, extractor, store, cfg, *keepText, *workers)

	var extractions []*harvest.Extraction
	if *reprocess {
		slog.Info("Reprocessing kept text dumps", "text_dir", *textDir)
		extractions, err = service.ReprocessAll()
		if err != nil {
			slog.Error("Reprocess failed", "error", err)
			os.Exit(1)
		}
	} else {
		paths, err := collectPDFs(*inputDir)
		if err != nil {
			slog.Error("Failed to scan input directory", "input", *inputDir, "error", err)
			os.Exit(1)
		}
		if len(paths) == 0 {
			slog.Error("No PDF documents found", "input", *inputDir)
			os.Exit(1)
		}

		slog.Info("Processing documents", "count", len(paths), "engine", *pdfEngine, "workers", *workers)
		extractions, err = service.ProcessBatch(paths)
		if err != nil {
			slog.Error("Batch failed", "error", err)
			os.Exit(1)
		}
	}

	var scored, guessed, missing, failed int
	for _, e := range extractions {
		switch {
		case e.Error != "":
			failed++
		case e.TotalOutcome == "total_scored_final":
			scored++
		case e.TotalOutcome == "total_max_in_doc":
			guessed++
		default:
			missing++
		}
	}
	slog.Info("Batch complete",
		"documents", len(extractions),
		"scored", scored,
		"guessed", guessed,
		"missing", missing,
		"failed", failed,
	)

	if *outPath != "" {
		if err := report.WriteReport(*outPath, extractions); err != nil {
			slog.Error("Failed to write report", "path", *outPath, "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", *outPath)
	}
}

// collectPDFs walks dir and returns every .pdf path, sorted for a stable
// processing order.
func collectPDFs(dir string) ([]string, error) {
	var paths []string
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return paths, nil
}
