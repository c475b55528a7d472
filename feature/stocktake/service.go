package stocktake

import (
	"context"
	"errors"
	"fmt"

	"stocktake-manager/feature/stocktake/ingest"
	"stocktake-manager/feature/stocktake/variance"

	"go.uber.org/zap"
)

// Service orchestrates a stock take session: staging uploaded blobs, parsing
// them and computing the variance report. All parsing is delegated to the
// pure ingest/variance packages; the service only adds staging and logging.
type Service struct {
	staging Staging
	catalog variance.Catalog
	logger  *zap.Logger
}

// NewService creates a new stocktake service. catalog may be nil when no
// master-data source is configured.
func NewService(staging Staging, catalog variance.Catalog, logger *zap.Logger) *Service {
	return &Service{staging: staging, catalog: catalog, logger: logger}
}

// StageCounts parses and stages a count blob for the session. Parsing never
// fails; a blob that yields zero entries is still staged so the caller can
// surface a warning and retry with a corrected file.
func (s *Service) StageCounts(ctx context.Context, session, text string) (ingest.CountFile, error) {
	parsed := ingest.ParseCounts(text)
	if err := s.staging.Put(ctx, session, KindCounts, text); err != nil {
		return parsed, err
	}
	s.logger.Info("Staged count blob",
		zap.String("session", session),
		zap.Int("entries", len(parsed.Entries)),
		zap.String("stock_take_code", parsed.Meta.StockTakeCode),
	)
	return parsed, nil
}

// StageJournal parses and stages a journal blob for the session.
func (s *Service) StageJournal(ctx context.Context, session, text string) ([]ingest.JournalRecord, error) {
	entries := ingest.ParseJournal(text)
	if err := s.staging.Put(ctx, session, KindJournal, text); err != nil {
		return entries, err
	}
	s.logger.Info("Staged journal blob",
		zap.String("session", session),
		zap.Int("entries", len(entries)),
	)
	return entries, nil
}

// Variance computes the variance report for a session from its staged blobs.
// A session without staged counts is an error; a missing journal is not, the
// report then runs against the catalog only and unmatched codes come out
// flagged missing.
func (s *Service) Variance(ctx context.Context, session string) ([]variance.Row, error) {
	countsText, err := s.staging.Get(ctx, session, KindCounts)
	if errors.Is(err, ErrNotStaged) {
		return nil, fmt.Errorf("session %s has no staged counts", session)
	}
	if err != nil {
		return nil, err
	}

	journalText, err := s.staging.Get(ctx, session, KindJournal)
	if err != nil && !errors.Is(err, ErrNotStaged) {
		return nil, err
	}

	rows := s.Compute(countsText, journalText)
	s.logger.Info("Computed variance report",
		zap.String("session", session),
		zap.Int("rows", len(rows)),
	)
	return rows, nil
}

// Compute runs the full parse-and-reconcile pipeline over raw blobs.
// It is the session-free core used by both Variance and the CLI.
func (s *Service) Compute(countsText, journalText string) []variance.Row {
	counts := ingest.ParseCounts(countsText)
	journal := ingest.ParseJournal(journalText)
	book, cost, names := variance.JournalMaps(journal)

	return variance.Compute(variance.Inputs{
		Entries: counts.Entries,
		Book:    book,
		Cost:    cost,
		Names:   names,
		Catalog: s.catalog,
	})
}

// Clear removes a session's staged blobs.
func (s *Service) Clear(ctx context.Context, session string) error {
	if err := s.staging.Delete(ctx, session, KindCounts); err != nil {
		return err
	}
	return s.staging.Delete(ctx, session, KindJournal)
}
