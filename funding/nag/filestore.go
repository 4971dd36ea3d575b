package nag

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
	"github.com/galtzo-floss/floss-funding-go/funding/log"
	"gopkg.in/yaml.v3"
)

// Created identifies the process that initialized a lockfile and when.
type Created struct {
	PID  int       `yaml:"pid"`
	At   time.Time `yaml:"at"`
	Type string    `yaml:"type"`
}

// Record is the whole persisted lockfile payload.
type Record struct {
	Created Created          `yaml:"created"`
	Nags    map[string]Entry `yaml:"nags"`
}

// FileStore is the lockfile-backed Store. One instance per Kind per process;
// cross-process coordination happens purely through the file.
//
// The mutex serializes in-process access only. Between processes the store is
// intentionally lock-free: see the package comment for the accepted
// lost-update trade-off.
type FileStore struct {
	kind   Kind
	path   string
	maxAge time.Duration
	logger log.Logger
	now    func() time.Time

	mu sync.Mutex
}

// FileOption configures a FileStore.
type FileOption func(*FileStore)

// WithLogger sets the logger used for swallowed-failure diagnostics. These
// log at debug level only.
func WithLogger(logger log.Logger) FileOption {
	return func(s *FileStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source. Tests use this to simulate rotation.
func WithClock(now func() time.Time) FileOption {
	return func(s *FileStore) {
		if now != nil {
			s.now = now
		}
	}
}

// WithMaxAge overrides the lifetime. The value is clamped.
func WithMaxAge(d time.Duration) FileOption {
	return func(s *FileStore) {
		s.maxAge = ClampMaxAge(d)
	}
}

// WithPath pins the lockfile path, bypassing project-root discovery.
func WithPath(path string) FileOption {
	return func(s *FileStore) {
		s.path = path
	}
}

// NewStore builds the Store for a kind. When no project root can be
// discovered (and no explicit path is given), it returns NopStore so the
// caller keeps working without throttling.
//
//nolint:ireturn
func NewStore(kind Kind, opts ...FileOption) Store {
	s := &FileStore{
		kind:   kind,
		maxAge: defaultMaxAge(kind),
		logger: log.NewNop(),
		now:    time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.path == "" {
		root, err := DiscoverRoot("")
		if err != nil {
			s.logger.Log(context.Background(), log.LevelDebug, "no project root; nag throttling disabled",
				log.String("kind", string(kind)))

			return NopStore{}
		}

		s.path = PathFor(root, kind)
	}

	return s
}

// defaultMaxAge resolves the lifetime for a kind, honoring the per-kind
// environment override and clamping the result.
func defaultMaxAge(kind Kind) time.Duration {
	fallback := DefaultOnLoadMaxAge
	envVar := constants.EnvOnLoadMaxAge

	if kind == KindAtExit {
		fallback = DefaultAtExitMaxAge
		envVar = constants.EnvAtExitMaxAge
	}

	raw := os.Getenv(envVar)
	if raw == "" {
		return ClampMaxAge(fallback)
	}

	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ClampMaxAge(fallback)
	}

	return ClampMaxAge(time.Duration(seconds) * time.Second)
}

// Nagged reports whether key is present in the current lockfile payload.
func (s *FileStore) Nagged(key string) bool {
	if s == nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	if s.rotateLocked(rec) {
		s.persistLocked(rec)
	}

	_, ok := rec.Nags[key]

	return ok
}

// Record inserts an entry for key and persists the whole payload. A key that
// is already present is left untouched.
func (s *FileStore) Record(key string, entry Entry) {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	s.rotateLocked(rec)

	if _, ok := rec.Nags[key]; ok {
		return
	}

	rec.Nags[key] = entry
	s.persistLocked(rec)
}

// Rotate reinitializes the payload if its lifetime has expired.
func (s *FileStore) Rotate() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	if s.rotateLocked(rec) {
		s.persistLocked(rec)
	}
}

// Touch persists the current payload without adding a nag, guaranteeing the
// file exists as early as possible.
func (s *FileStore) Touch() {
	if s == nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.loadLocked()
	s.rotateLocked(rec)
	s.persistLocked(rec)
}

// Path returns the lockfile location.
func (s *FileStore) Path() string {
	if s == nil {
		return ""
	}

	return s.path
}

// MaxAge returns the clamped lifetime.
func (s *FileStore) MaxAge() time.Duration {
	if s == nil {
		return 0
	}

	return s.maxAge
}

// loadLocked parses the lockfile. Any read or parse failure, and any
// structurally wrong content, resets to a fresh payload (self-healing).
func (s *FileStore) loadLocked() *Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Log(context.Background(), log.LevelDebug, "lockfile read failed; reinitializing",
				log.String("path", s.path), log.Err(err))
		}

		return s.freshLocked()
	}

	var rec Record

	if err := yaml.Unmarshal(data, &rec); err != nil {
		s.logger.Log(context.Background(), log.LevelDebug, "lockfile parse failed; reinitializing",
			log.String("path", s.path), log.Err(err))

		return s.freshLocked()
	}

	if rec.Created.At.IsZero() || rec.Created.Type != string(s.kind) {
		return s.freshLocked()
	}

	if rec.Nags == nil {
		rec.Nags = make(map[string]Entry)
	}

	return &rec
}

// rotateLocked clears rec in place when its lifetime has expired. Returns
// true if a rotation happened.
func (s *FileStore) rotateLocked(rec *Record) bool {
	if s.now().Sub(rec.Created.At) <= s.maxAge {
		return false
	}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		s.logger.Log(context.Background(), log.LevelDebug, "lockfile delete failed during rotation",
			log.String("path", s.path), log.Err(err))
	}

	*rec = *s.freshLocked()

	return true
}

func (s *FileStore) freshLocked() *Record {
	return &Record{
		Created: Created{
			PID:  os.Getpid(),
			At:   s.now().UTC(),
			Type: string(s.kind),
		},
		Nags: make(map[string]Entry),
	}
}

// persistLocked writes the whole payload: marshal, write a temp file in the
// same directory, rename over the destination. The rename makes each write an
// atomic whole-file replace, so racing writers can lose an update but cannot
// interleave partial content.
func (s *FileStore) persistLocked(rec *Record) {
	data, err := yaml.Marshal(rec)
	if err != nil {
		s.logger.Log(context.Background(), log.LevelDebug, "lockfile marshal failed",
			log.String("path", s.path), log.Err(err))

		return
	}

	dir := filepath.Dir(s.path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Log(context.Background(), log.LevelDebug, "lockfile dir create failed",
			log.String("path", dir), log.Err(err))

		return
	}

	tmp, err := os.CreateTemp(dir, ".nags-*")
	if err != nil {
		s.logger.Log(context.Background(), log.LevelDebug, "lockfile temp create failed",
			log.String("path", dir), log.Err(err))

		return
	}

	_, writeErr := tmp.Write(data)
	closeErr := tmp.Close()

	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())

		s.logger.Log(context.Background(), log.LevelDebug, "lockfile write failed",
			log.String("path", s.path))

		return
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())

		s.logger.Log(context.Background(), log.LevelDebug, "lockfile rename failed",
			log.String("path", s.path), log.Err(err))
	}
}
