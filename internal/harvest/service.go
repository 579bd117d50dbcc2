package harvest

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rfaulk/invoice-harvester/internal/config"
	"github.com/rfaulk/invoice-harvester/internal/extract"
	"github.com/rfaulk/invoice-harvester/internal/pdftext"
)

const defaultWorkers = 4

// IDGenerator generates unique IDs for extractions
type IDGenerator interface {
	Generate() string
}

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultIDGenerator generates IDs using UnixNano timestamp
type defaultIDGenerator struct{}

func (g *defaultIDGenerator) Generate() string {
	return fmt.Sprintf("%d", time.Now().UnixNano())
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service runs document extraction and persists the results
type Service struct {
	db          DB
	extractor   pdftext.Extractor
	storage     Storage
	cfg         *config.Config
	vendors     *extract.VendorIndex
	idGenerator IDGenerator
	timeSource  TimeSource
	keepText    bool
	workers     int
}

// NewService creates a new Service with default ID generator and time source.
// storage may be nil when keepText is false; workers <= 0 selects the default
// pool size.
func NewService(db DB, extractor pdftext.Extractor, storage Storage, cfg *config.Config, keepText bool, workers int) *Service {
	return NewServiceWithDeps(db, extractor, storage, cfg, keepText, workers, &defaultIDGenerator{}, &defaultTimeSource{})
}

// NewServiceWithDeps creates a new Service with custom dependencies for testing
func NewServiceWithDeps(db DB, extractor pdftext.Extractor, storage Storage, cfg *config.Config, keepText bool, workers int, idGen IDGenerator, timeSrc TimeSource) *Service {
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &Service{
		db:          db,
		extractor:   extractor,
		storage:     storage,
		cfg:         cfg,
		vendors:     extract.NewVendorIndex(cfg.Aliases()),
		idGenerator: idGen,
		timeSource:  timeSrc,
		keepText:    keepText,
		workers:     workers,
	}
}

// sanitizeFilename cleans up a source filename for use as an audit text name
func sanitizeFilename(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	reg := regexp.MustCompile(`[^a-zA-Z0-9\s\-_]`)
	base = reg.ReplaceAllString(base, "")

	reg = regexp.MustCompile(`\s+`)
	base = reg.ReplaceAllString(base, " ")

	base = strings.TrimSpace(base)

	maxLen := 50
	if len(base) > maxLen {
		base = base[:maxLen]
	}

	if base == "" {
		base = "document"
	}

	return base + ".txt"
}

// ProcessDocument extracts every field from document lines. It never fails:
// missing fields come back empty and the total outcome says how the total
// was chosen.
func (s *Service) ProcessDocument(sourceFile string, lines []string) *Extraction {
	id := s.idGenerator.Generate()
	now := s.timeSource.Now()

	vendor := s.vendors.Detect(lines)
	total, outcome := extract.PickTotal(lines, s.cfg.TotalOptions(vendor))

	totalValue := ""
	if v := extract.ParseAmount(total); !math.IsNaN(v) {
		totalValue = strconv.FormatFloat(v, 'f', 2, 64)
	}

	if outcome != extract.OutcomeScoredFinal {
		slog.Warn("Low-confidence total",
			"source_file", sourceFile,
			"vendor", vendor,
			"outcome", string(outcome),
		)
	}

	return &Extraction{
		ID:            id,
		SourceFile:    sourceFile,
		Vendor:        vendor,
		InvoiceNumber: extract.InvoiceNumber(lines, s.cfg.NumberOptions(vendor)),
		InvoiceType:   extract.DocumentType(lines),
		InvoiceDate:   extract.InvoiceDate(lines, s.cfg.DateOptions(vendor)),
		TotalText:     total,
		TotalValue:    totalValue,
		TotalOutcome:  string(outcome),
		LineCount:     len(lines),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ProcessFile reads and extracts one PDF and saves the result. Extraction
// errors are recorded on the extraction itself; only a database failure is
// returned as an error.
func (s *Service) ProcessFile(path string) (*Extraction, error) {
	extraction, err := s.extractFile(path)
	if err != nil {
		slog.Error("Failed to process document", "source_file", path, "error", err)
		extraction = &Extraction{
			ID:         s.idGenerator.Generate(),
			SourceFile: path,
			Error:      err.Error(),
			CreatedAt:  s.timeSource.Now(),
			UpdatedAt:  s.timeSource.Now(),
		}
	}
	if err := s.db.SaveExtraction(extraction); err != nil {
		// Clean up the text dump since nothing points at it anymore
		if extraction.TextFile != "" {
			if delErr := s.storage.Delete(extraction.TextFile); delErr != nil {
				slog.Warn("Failed to delete text dump", "text_file", extraction.TextFile, "error", delErr)
			}
		}
		return nil, fmt.Errorf("saving extraction to database: %w", err)
	}
	return extraction, nil
}

// Reprocess re-runs the engine over an extraction's kept text, for example
// after a vendor configuration change. The record keeps its identity; the
// extracted fields and UpdatedAt change.
func (s *Service) Reprocess(id string) (*Extraction, error) {
	existing, err := s.db.GetExtraction(id)
	if err != nil {
		return nil, fmt.Errorf("getting extraction: %w", err)
	}
	if existing.TextFile == "" {
		return nil, fmt.Errorf("extraction %s has no kept text", id)
	}
	if s.storage == nil {
		return nil, fmt.Errorf("text storage is not configured")
	}

	lines, err := s.storage.LoadLines(existing.TextFile)
	if err != nil {
		return nil, fmt.Errorf("loading kept text: %w", err)
	}

	updated := s.ProcessDocument(existing.SourceFile, lines)
	updated.ID = existing.ID
	updated.TextFile = existing.TextFile
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.timeSource.Now()

	if err := s.db.SaveExtraction(updated); err != nil {
		return nil, fmt.Errorf("saving extraction to database: %w", err)
	}
	return updated, nil
}

// ReprocessAll re-runs the engine over every stored extraction with kept
// text. Extractions without a text dump are skipped.
func (s *Service) ReprocessAll() ([]*Extraction, error) {
	all, err := s.db.ListExtractions()
	if err != nil {
		return nil, fmt.Errorf("listing extractions: %w", err)
	}

	out := make([]*Extraction, 0, len(all))
	for _, e := range all {
		if e.TextFile == "" {
			continue
		}
		updated, err := s.Reprocess(e.ID)
		if err != nil {
			slog.Warn("Failed to reprocess extraction", "id", e.ID, "source_file", e.SourceFile, "error", err)
			continue
		}
		out = append(out, updated)
	}
	return out, nil
}

func (s *Service) extractFile(path string) (*Extraction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}

	lines, err := s.extractor.ExtractLines(data)
	if err != nil {
		return nil, fmt.Errorf("extracting text: %w", err)
	}

	extraction := s.ProcessDocument(path, lines)

	if s.keepText && s.storage != nil {
		name := fmt.Sprintf("%s_%s", extraction.ID, sanitizeFilename(path))
		saved, err := s.storage.SaveLines(name, lines)
		if err != nil {
			slog.Warn("Failed to save text dump", "source_file", path, "error", err)
		} else {
			extraction.TextFile = saved
		}
	}

	return extraction, nil
}

// ProcessBatch runs ProcessFile over every path with a bounded worker pool.
// One bad document never halts the batch; results keep the input order. The
// returned error is the first database failure, if any.
func (s *Service) ProcessBatch(paths []string) ([]*Extraction, error) {
	results := make([]*Extraction, len(paths))
	errs := make([]error, len(paths))

	sem := make(chan struct{}, s.workers)
	var wg sync.WaitGroup
	for i, path := range paths {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, path string) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i], errs[i] = s.ProcessFile(path)
		}(i, path)
	}
	wg.Wait()

	out := make([]*Extraction, 0, len(paths))
	var firstErr error
	for i, r := range results {
		if errs[i] != nil {
			if firstErr == nil {
				firstErr = errs[i]
			}
			continue
		}
		out = append(out, r)
	}
	return out, firstErr
}
