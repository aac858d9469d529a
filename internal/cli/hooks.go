package cli

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordsearch/pkg/observability"
)

// placementStats counts generator events and logs them at debug level.
type placementStats struct {
	logger *log.Logger

	mu       sync.Mutex
	placed   int
	failed   int
	attempts int
}

func newPlacementStats(l *log.Logger) *placementStats {
	return &placementStats{logger: l}
}

func (s *placementStats) OnAlphabetResolved(_ context.Context, language, alphabetCase string, d time.Duration, err error) {
	if err != nil {
		s.logger.Debug("alphabet lookup failed", "language", language, "case", alphabetCase, "error", err)
		return
	}
	s.logger.Debug("alphabet lookup", "language", language, "case", alphabetCase, "took", d.Round(time.Microsecond))
}

func (s *placementStats) OnWordPlaced(word, direction string, attempts int) {
	s.mu.Lock()
	s.placed++
	s.attempts += attempts
	s.mu.Unlock()
}

func (s *placementStats) OnWordFailed(word, code string) {
	s.mu.Lock()
	s.failed++
	s.mu.Unlock()
}

// snapshot returns placed and failed word counts and the mean number of
// anchors tried per placed word.
func (s *placementStats) snapshot() (placed, failed int, meanAttempts float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.placed > 0 {
		meanAttempts = float64(s.attempts) / float64(s.placed)
	}
	return s.placed, s.failed, meanAttempts
}

var _ observability.GeneratorHooks = (*placementStats)(nil)

// currentStats returns the registered placementStats, if any.
func currentStats() (*placementStats, bool) {
	s, ok := observability.Generator().(*placementStats)
	return s, ok
}
