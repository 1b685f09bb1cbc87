package services

import (
	"context"
	"errors"
	"log/slog"
	"math"

	"golang.org/x/sync/errgroup"

	"insightd/internal/logging"
	"insightd/internal/models"
)

// Analyzer is the public entry point of the analysis pipeline. It
// never returns an error: any failure on the remote path degrades to
// the local fallback analyzer.
type Analyzer struct {
	classifier     TextClassifier
	tracker        *UsageTracker
	resolver       MoodResolver
	fallback       FallbackAnalyzer
	sentimentModel string
	emotionModel   string
	logger         *slog.Logger
}

func NewAnalyzer(
	classifier TextClassifier,
	tracker *UsageTracker,
	resolver MoodResolver,
	sentimentModel string,
	emotionModel string,
	logger *slog.Logger,
) *Analyzer {
	return &Analyzer{
		classifier:     classifier,
		tracker:        tracker,
		resolver:       resolver,
		sentimentModel: sentimentModel,
		emotionModel:   emotionModel,
		logger:         logger,
	}
}

// Analyze runs the full pipeline for one entry. The remote attempt is
// skipped entirely while the quota breaker is open. A panic anywhere
// in the enrichment path degrades to the fallback result; callers are
// promised a well-formed response on every path.
func (a *Analyzer) Analyze(ctx context.Context, text string) (result models.AnalysisResult) {
	defer func() {
		if rec := recover(); rec != nil {
			a.logger.Error("analysis panicked, using fallback", slog.Any("panic", rec))
			result = a.fallback.Analyze(text)
		}
	}()

	if a.tracker.ShouldAttemptRemote() {
		remote, err := a.attemptRemote(ctx, text)
		if err == nil {
			return *remote
		}
		a.recordFailure(err)
		a.logger.Warn("remote analysis failed, using fallback", logging.Error(err))
	}
	return a.fallback.Analyze(text)
}

// attemptRemote issues both classification calls concurrently and
// enriches their output. The two calls are independent and their
// latency is additive when serialized.
func (a *Analyzer) attemptRemote(ctx context.Context, text string) (*models.AnalysisResult, error) {
	a.tracker.RecordAttempt()

	var sentimentScores, emotionScores []models.LabelScore
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		scores, err := a.classifier.Classify(ctx, text, a.sentimentModel)
		sentimentScores = scores
		return err
	})
	g.Go(func() error {
		scores, err := a.classifier.Classify(ctx, text, a.emotionModel)
		emotionScores = scores
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sentiment := topScore(sentimentScores)
	emotion := topScore(emotionScores)

	mood, energy, score := a.resolver.Resolve(text, sentiment, emotion)
	category := ClassifyCategory(text, mood, energy)

	return &models.AnalysisResult{
		PrimaryMood:      mood,
		Confidence:       confidenceFromScore(score),
		Energy:           energy,
		Emotions:         []string{mood},
		BusinessCategory: category,
		Insights:         GenerateInsights(text, mood, category),
		AIHeading:        GenerateHeading(text, mood, energy, category),
		AnalysisSource:   models.SourceRemote,
	}, nil
}

func (a *Analyzer) recordFailure(err error) {
	switch {
	case errors.Is(err, models.ErrRateLimited):
		a.tracker.RecordRateLimited()
	case errors.Is(err, models.ErrQuotaExceeded):
		a.tracker.RecordQuotaExceeded()
	}
	a.tracker.RecordError()
}

func topScore(scores []models.LabelScore) models.LabelScore {
	var top models.LabelScore
	for _, entry := range scores {
		if entry.Score > top.Score {
			top = entry
		}
	}
	return top
}

func confidenceFromScore(score float64) int {
	confidence := int(math.Round(score * 100))
	if confidence < 0 {
		return 0
	}
	if confidence > 100 {
		return 100
	}
	return confidence
}
