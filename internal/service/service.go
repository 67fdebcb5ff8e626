// Package service wraps the analyzer with input validation, timeouts
// and bulk fan-out.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"cv-match/internal/analyzer"
	"cv-match/internal/config"
	"cv-match/internal/logger"
	"cv-match/internal/profile"
)

var (
	ErrEmptyDocument           = errors.New("document is empty")
	ErrJobDescriptionTooLong   = errors.New("job description exceeds maximum length")
	ErrUnsupportedDocumentType = errors.New("unsupported document type")
	ErrAnalysisFailed          = errors.New("analysis failed")
)

// maxJobDescriptionLen bounds job description input size in bytes.
const maxJobDescriptionLen = 50000

// Document is one résumé handed to the service. An empty ContentType
// means plain text.
type Document struct {
	Name        string
	ContentType string
	Text        string
}

var supportedContentTypes = map[string]struct{}{
	"":              {},
	"text/plain":    {},
	"text/markdown": {},
}

type Service struct {
	analyzer        *analyzer.Analyzer
	log             *zap.Logger
	workers         int
	analysisTimeout time.Duration
	textTimeout     time.Duration
}

func New(a *analyzer.Analyzer, log *zap.Logger, cfg config.Config) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 5
	}
	analysisTimeout := cfg.AnalysisTimeout
	if analysisTimeout <= 0 {
		analysisTimeout = 60 * time.Second
	}
	textTimeout := cfg.TextTimeout
	if textTimeout <= 0 {
		textTimeout = 30 * time.Second
	}
	return &Service{
		analyzer:        a,
		log:             log,
		workers:         workers,
		analysisTimeout: analysisTimeout,
		textTimeout:     textTimeout,
	}
}

// Analyze validates the inputs and runs a full analysis under the
// analysis timeout.
func (s *Service) Analyze(ctx context.Context, doc Document, jobDescription string) (*analyzer.MatchResult, error) {
	if err := s.validate(doc, jobDescription); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.analysisTimeout)
	defer cancel()

	s.log.Debug("starting analysis",
		zap.String("document", doc.Name),
		zap.String("job", logger.TruncateForLog(jobDescription, 120)))

	start := time.Now()
	result, err := runWithContext(ctx, func() *analyzer.MatchResult {
		return s.analyzer.Analyze(doc.Text, jobDescription)
	})
	if err != nil {
		s.log.Warn("analysis aborted",
			zap.String("document", doc.Name),
			zap.Error(err))
		return nil, err
	}

	s.log.Info("analysis complete",
		zap.String("document", doc.Name),
		zap.Float64("score", result.Score),
		zap.Int("matching_skills", len(result.MatchingSkills)),
		zap.Int("missing_skills", len(result.MissingSkills)),
		zap.Duration("elapsed", time.Since(start)))
	return result, nil
}

// ExtractProfile validates the inputs and builds a profile under the
// text-stage timeout.
func (s *Service) ExtractProfile(ctx context.Context, doc Document, jobDescription string) (*profile.Profile, error) {
	if err := s.validate(doc, jobDescription); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.textTimeout)
	defer cancel()

	p, err := runWithContext(ctx, func() *profile.Profile {
		return s.analyzer.ExtractProfile(doc.Text, jobDescription)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("profile extracted",
		zap.String("document", doc.Name),
		zap.Int("experiences", len(p.Experiences)),
		zap.Int("skills", len(p.TechnicalSkills.All())))
	return p, nil
}

func (s *Service) validate(doc Document, jobDescription string) error {
	if strings.TrimSpace(doc.Text) == "" {
		return ErrEmptyDocument
	}
	if _, ok := supportedContentTypes[doc.ContentType]; !ok {
		return ErrUnsupportedDocumentType
	}
	if len(jobDescription) > maxJobDescriptionLen {
		return ErrJobDescriptionTooLong
	}
	return nil
}

// runWithContext runs fn on its own goroutine so a deadline can
// interrupt the wait. The computation itself is CPU-bound and finishes
// on its own; only the caller stops waiting. A panic in fn becomes an
// error instead of taking the process down.
func runWithContext[T any](ctx context.Context, fn func() T) (T, error) {
	done := make(chan T, 1)
	failed := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				failed <- fmt.Errorf("%w: %v", ErrAnalysisFailed, r)
			}
		}()
		done <- fn()
	}()
	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case err := <-failed:
		var zero T
		return zero, err
	case v := <-done:
		return v, nil
	}
}
