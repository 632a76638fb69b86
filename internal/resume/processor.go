package resume

import (
	"context"
	"errors"
	"fmt"

	"github.com/workhive/workhive-backend/internal/model"
	"go.uber.org/zap"
)

// ExtractionResult is the transient output of processing one resume.
// It is never persisted as its own entity; callers copy the fields onto
// the seeker profile.
type ExtractionResult struct {
	Skills     []string                `json:"skills"`
	Experience model.ExperienceSummary `json:"experience"`
	TextLength int                     `json:"text_length"`
}

// Processor composes text extraction with skill and experience
// recognition.
type Processor struct {
	keywords []string
	logger   *zap.Logger
}

func NewProcessor(logger *zap.Logger) *Processor {
	return &Processor{
		keywords: Taxonomy(),
		logger:   logger,
	}
}

// Process extracts text from the file at path and recognizes skills and
// experience. ErrUnsupportedFormat and ErrExtractionFailed propagate
// unchanged; anything else surfaces as ErrProcessingFailed. Extraction of
// large files is bounded by ctx.
func (p *Processor) Process(ctx context.Context, path string) (*ExtractionResult, error) {
	text, err := p.extractWithContext(ctx, path)
	if err != nil {
		if errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrExtractionFailed) || errors.Is(err, ErrProcessingFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrProcessingFailed, err)
	}

	result := &ExtractionResult{
		Skills:     RecognizeSkills(text, p.keywords),
		Experience: RecognizeExperience(text),
		TextLength: len(text),
	}

	p.logger.Info("resume processed",
		zap.Int("text_length", result.TextLength),
		zap.Int("skills", len(result.Skills)),
		zap.Int("total_years", result.Experience.TotalYears),
		zap.String("level", result.Experience.Level),
	)
	return result, nil
}

// extractWithContext runs extraction in a goroutine so a slow parse of a
// large file can be abandoned when ctx expires. The parser itself has no
// cancellation hook; an abandoned extraction finishes in the background
// and its result is discarded.
func (p *Processor) extractWithContext(ctx context.Context, path string) (string, error) {
	type extracted struct {
		text string
		err  error
	}

	ch := make(chan extracted, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- extracted{err: fmt.Errorf("%w: parser panic: %v", ErrProcessingFailed, r)}
			}
		}()
		text, err := ExtractText(path)
		ch <- extracted{text: text, err: err}
	}()

	select {
	case res := <-ch:
		return res.text, res.err
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %v", ErrProcessingFailed, ctx.Err())
	}
}
