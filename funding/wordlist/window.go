package wordlist

import (
	"context"
	_ "embed"
	"strings"
	"sync"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/log"
)

// Epoch month constants. Frozen at release; changing them would invalidate or
// revalidate previously issued tokens unpredictably.
const (
	EpochYear  = 2025
	EpochMonth = time.August
)

// epochIndex is the flat month index of the epoch.
const epochIndex = EpochYear*12 + int(EpochMonth)

//go:embed words.txt
var corpusData string

// Window provides the valid word set for any point in time. Construct with
// New; the corpus loads once on first use.
type Window struct {
	logger log.Logger

	loadOnce sync.Once
	corpus   []string

	mu   sync.Mutex
	sets map[int]map[string]struct{}
}

// New creates a Window. A nil logger defaults to the no-op logger.
func New(logger log.Logger) *Window {
	if logger == nil {
		logger = log.NewNop()
	}

	return &Window{
		logger: logger,
		sets:   make(map[int]map[string]struct{}),
	}
}

// ValidCount returns how many corpus words are unlocked at now: the number of
// whole calendar months elapsed since the epoch month. A clock set before the
// epoch yields zero, never a negative count or an error.
func (w *Window) ValidCount(now time.Time) int {
	count := monthIndex(now) - epochIndex
	if count < 0 {
		return 0
	}

	return count
}

// Words returns the first n corpus entries, clamped to the corpus length.
// The returned slice is shared; callers must not mutate it.
func (w *Window) Words(n int) []string {
	w.load()

	if n < 0 {
		n = 0
	}

	if n > len(w.corpus) {
		n = len(w.corpus)
	}

	return w.corpus[:n]
}

// Contains reports whether word is unlocked at now. Membership is backed by a
// set memoized per distinct count, so repeated lookups stay cheap.
func (w *Window) Contains(now time.Time, word string) bool {
	w.load()

	n := w.ValidCount(now)
	if n == 0 {
		return false
	}

	if n > len(w.corpus) {
		n = len(w.corpus)
	}

	w.mu.Lock()
	set, ok := w.sets[n]

	if !ok {
		set = make(map[string]struct{}, n)
		for _, entry := range w.corpus[:n] {
			set[entry] = struct{}{}
		}

		w.sets[n] = set
	}
	w.mu.Unlock()

	_, ok = set[word]

	return ok
}

// load parses the embedded corpus once. A blank corpus degrades to "nothing
// unlocked" rather than failing.
func (w *Window) load() {
	w.loadOnce.Do(func() {
		for _, line := range strings.Split(corpusData, "\n") {
			word := strings.TrimSpace(line)
			if word == "" {
				continue
			}

			w.corpus = append(w.corpus, word)
		}

		if len(w.corpus) == 0 {
			w.logger.Log(context.Background(), log.LevelWarn, "word corpus is empty; every hex token will classify unactivated")
		}
	})
}

func monthIndex(t time.Time) int {
	return t.UTC().Year()*12 + int(t.UTC().Month())
}
