package funding

import (
	"os"
	"strings"
	"sync"
	"time"

	"github.com/galtzo-floss/floss-funding-go/funding/constants"
	"github.com/galtzo-floss/floss-funding-go/funding/envname"
	"github.com/galtzo-floss/floss-funding-go/funding/log"
	"github.com/galtzo-floss/floss-funding-go/funding/nag"
	"github.com/galtzo-floss/floss-funding-go/funding/wordlist"
)

// Reporter receives one ActivationEvent per reminder the throttle lets
// through. It decides whether and how to render a message; this package never
// prints anything itself.
type Reporter func(ActivationEvent)

// Registry is the injectable namespace registry. One instance per process is
// typical, but tests construct a fresh one per run instead of resetting
// process-wide globals. A single mutex serializes registration, so event-list
// appends are atomic.
type Registry struct {
	cfg        Config
	deriver    *envname.Deriver
	classifier *Classifier
	words      *wordlist.Window
	logger     log.Logger
	now        func() time.Time

	onLoad nag.Store
	atExit nag.Store

	mu         sync.Mutex
	namespaces map[string]*Namespace
	reporter   Reporter

	// nagMu serializes the check-then-record cycle against the stores so
	// two goroutines registering the same library cannot both report.
	nagMu sync.Mutex
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithConfig pins the configuration instead of reading the environment.
func WithConfig(cfg Config) RegistryOption {
	return func(r *Registry) {
		r.cfg = cfg
	}
}

// WithRegistryLogger sets the logger used for swallowed-failure diagnostics.
func WithRegistryLogger(logger log.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithClock overrides the time source for classification and events.
func WithClock(now func() time.Time) RegistryOption {
	return func(r *Registry) {
		if now != nil {
			r.now = now
		}
	}
}

// WithWordWindow overrides the word window used by the classifier.
func WithWordWindow(words *wordlist.Window) RegistryOption {
	return func(r *Registry) {
		r.words = words
	}
}

// WithStores injects the throttle backends, replacing the default lockfiles.
// Pass nag.NopStore{} to disable throttling entirely.
func WithStores(onLoad, atExit nag.Store) RegistryOption {
	return func(r *Registry) {
		if onLoad != nil {
			r.onLoad = onLoad
		}

		if atExit != nil {
			r.atExit = atExit
		}
	}
}

// NewRegistry builds a Registry. Defaults: configuration from the
// environment, lockfile stores under the discovered project root, no-op
// logger, real clock.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		cfg:        LoadConfig(),
		logger:     log.NewNop(),
		now:        time.Now,
		namespaces: make(map[string]*Namespace),
	}

	for _, opt := range opts {
		opt(r)
	}

	prefix := r.cfg.EnvPrefix
	if prefix == "" {
		prefix = constants.DefaultEnvNamePrefix
	}

	r.deriver = envname.NewWithPrefix(prefix)
	r.classifier = NewClassifier(r.words, r.now)

	// Swallowed persistence failures surface only under the debug switch.
	storeLogger := log.NewNop()
	if r.cfg.Debug {
		storeLogger = r.logger
	}

	if r.onLoad == nil {
		r.onLoad = nag.NewStore(nag.KindOnLoad,
			nag.WithMaxAge(r.cfg.OnLoadMaxAge()),
			nag.WithLogger(storeLogger),
			nag.WithClock(r.now),
		)
	}

	if r.atExit == nil {
		r.atExit = nag.NewStore(nag.KindAtExit,
			nag.WithMaxAge(r.cfg.AtExitMaxAge()),
			nag.WithLogger(storeLogger),
			nag.WithClock(r.now),
		)
	}

	// Guarantee the lockfiles exist as early as possible.
	r.onLoad.Touch()
	r.atExit.Touch()

	return r
}

// SetReporter registers the integrator's reminder callback. A nil reporter
// disables reminders without touching classification.
func (r *Registry) SetReporter(reporter Reporter) {
	if r == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reporter = reporter
}

// Register resolves the namespace's token from its derived environment
// variable, classifies it, records an ActivationEvent, and fires the reporter
// unless the process is silenced or the on_load throttle already saw this
// library.
//
// The only error surfaced is direct misuse of the naming API (an invalid
// namespace); everything downstream degrades instead of failing.
func (r *Registry) Register(namespace string, lib LibraryRef) (ActivationEvent, error) {
	if r == nil {
		return ActivationEvent{}, constants.ErrNilRegistry
	}

	if strings.TrimSpace(namespace) == "" {
		return ActivationEvent{}, constants.ErrEmptyNamespace
	}

	envVarName, err := r.deriver.Derive(namespace)
	if err != nil {
		return ActivationEvent{}, err
	}

	if lib.Namespace == "" {
		lib.Namespace = namespace
	}

	token := os.Getenv(envVarName)
	state := r.classifier.Classify(namespace, token)
	silenced := r.cfg.Silenced()
	event := newEvent(lib, envVarName, token, state, r.now(), silenced)

	r.mu.Lock()

	ns, ok := r.namespaces[namespace]
	if !ok || ns.token != token {
		// A changed token means a new Namespace instance, never in-place
		// mutation of the computed state.
		ns = &Namespace{
			name:       namespace,
			envVarName: envVarName,
			token:      token,
			state:      state,
		}
		r.namespaces[namespace] = ns
	}

	ns.events = append(ns.events, event)
	reporter := r.reporter

	r.mu.Unlock()

	if state != StateActivated && !silenced && reporter != nil {
		r.nagOnce(r.onLoad, event, reporter)
	}

	return event, nil
}

// Namespace returns the registered namespace by name, or nil.
func (r *Registry) Namespace(name string) *Namespace {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.namespaces[name]
}

// Namespaces returns a snapshot of all registered namespaces.
func (r *Registry) Namespaces() []*Namespace {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*Namespace, 0, len(r.namespaces))
	for _, ns := range r.namespaces {
		out = append(out, ns)
	}

	return out
}

// FinalizeAtExit runs the longer-lived exit-time pass: every namespace still
// not activated gets one reminder through the at_exit throttle, and the
// at_exit lockfile is persisted once more. Integrators call this from their
// process-exit hook; the hook wiring itself is out of scope here.
func (r *Registry) FinalizeAtExit() {
	if r == nil {
		return
	}

	r.mu.Lock()

	reporter := r.reporter
	pending := make([]ActivationEvent, 0, len(r.namespaces))

	for _, ns := range r.namespaces {
		if ns.state == StateActivated || len(ns.events) == 0 {
			continue
		}

		pending = append(pending, ns.events[len(ns.events)-1])
	}

	r.mu.Unlock()

	if reporter != nil && !r.cfg.Silenced() {
		for _, event := range pending {
			r.nagOnce(r.atExit, event, reporter)
		}
	}

	r.atExit.Touch()
}

// nagOnce records an event in the store unless the library was already seen,
// then fires the reporter. The check and the record happen under nagMu, so
// within one process at most one goroutine wins per library. Racing
// *processes* can still both pass the Nagged check; that cost is a duplicate
// reminder, never corruption, and is the accepted trade-off of the lock-free
// file protocol. The reporter runs outside the guard so a slow callback
// cannot stall other registrations.
func (r *Registry) nagOnce(store nag.Store, event ActivationEvent, reporter Reporter) {
	key := event.Library.Key()

	r.nagMu.Lock()

	if store.Nagged(key) {
		r.nagMu.Unlock()

		return
	}

	store.Record(key, nag.Entry{
		Namespace:  event.Library.Namespace,
		EnvVarName: event.EnvVarName,
		State:      string(event.State),
		PID:        os.Getpid(),
		At:         event.OccurredAt,
	})

	r.nagMu.Unlock()

	reporter(event)
}
