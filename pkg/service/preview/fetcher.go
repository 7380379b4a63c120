package preview

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/atharvsinh-codez/codedevs/pkg/domain/model"
	"github.com/atharvsinh-codez/codedevs/pkg/service/github"
	"github.com/atharvsinh-codez/codedevs/pkg/utils/logging"
)

// Phase is the state of the single logical "current lookup"
type Phase int

const (
	// PhaseIdle means no input has been entered yet
	PhaseIdle Phase = iota
	// PhaseDebouncing means input changed and the delay timer is running
	PhaseDebouncing
	// PhaseFetching means a lookup is in flight
	PhaseFetching
	// PhaseReady means the lookup settled with a found profile
	PhaseReady
	// PhaseEmpty means the lookup settled with nothing to show: not
	// found, cleared input, cancellation, or any lookup error
	PhaseEmpty
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDebouncing:
		return "debouncing"
	case PhaseFetching:
		return "fetching"
	case PhaseReady:
		return "ready"
	case PhaseEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// State is a snapshot of the fetcher emitted on every transition
type State struct {
	Phase   Phase
	Input   string
	Profile *model.Profile
}

// DefaultDebounce matches the landing page's typing delay
const DefaultDebounce = 500 * time.Millisecond

// Fetcher debounces rapid input changes and resolves the latest input
// to a public profile. At most one lookup is in flight; starting a new
// one cancels the previous lookup's context, and a cancelled lookup's
// late result is discarded by sequence check so it can never overwrite
// a newer state.
type Fetcher struct {
	github github.Service
	delay  time.Duration

	inputCh chan string
	updates chan State

	ctx       context.Context
	cancelAll context.CancelFunc
	closeOnce sync.Once
	doneCh    chan struct{}
}

type Option func(*Fetcher)

func WithDebounce(d time.Duration) Option {
	return func(f *Fetcher) {
		f.delay = d
	}
}

// New creates a fetcher and starts its event loop
func New(svc github.Service, opts ...Option) *Fetcher {
	ctx, cancel := context.WithCancel(context.Background())

	f := &Fetcher{
		github:    svc,
		delay:     DefaultDebounce,
		inputCh:   make(chan string, 16),
		updates:   make(chan State, 32),
		ctx:       ctx,
		cancelAll: cancel,
		doneCh:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(f)
	}

	go f.run()
	return f
}

// Input feeds the fetcher a new value of the typed identifier. It never
// blocks user input: the event loop consumes immediately and the call
// is a no-op after Close.
func (f *Fetcher) Input(text string) {
	select {
	case f.inputCh <- text:
	case <-f.ctx.Done():
	}
}

// Updates returns the stream of state transitions. The channel is
// closed by Close. When the consumer lags, older states are dropped:
// only the latest matters for display.
func (f *Fetcher) Updates() <-chan State {
	return f.updates
}

// Close cancels any in-flight lookup and stops the event loop
func (f *Fetcher) Close() {
	f.closeOnce.Do(func() {
		f.cancelAll()
		<-f.doneCh
	})
}

type lookupResult struct {
	seq     uint64
	profile *model.Profile
	err     error
}

func (f *Fetcher) run() {
	defer close(f.doneCh)
	defer close(f.updates)

	var (
		seq      uint64
		pending  string
		timer    *time.Timer
		timerC   <-chan time.Time
		cancel   context.CancelFunc
		resultCh = make(chan lookupResult, 1)
	)

	stopTimer := func() {
		if timer != nil {
			timer.Stop()
			timer = nil
			timerC = nil
		}
	}
	cancelLookup := func() {
		if cancel != nil {
			cancel()
			cancel = nil
		}
	}

	for {
		select {
		case <-f.ctx.Done():
			cancelLookup()
			stopTimer()
			return

		case text := <-f.inputCh:
			// Every input change supersedes whatever was happening:
			// bump the sequence so a still-running lookup's result is
			// stale, and cancel it so the upstream call stops too.
			seq++
			cancelLookup()
			stopTimer()

			pending = strings.TrimSpace(text)
			if pending == "" {
				f.emit(State{Phase: PhaseEmpty})
				continue
			}

			timer = time.NewTimer(f.delay)
			timerC = timer.C
			f.emit(State{Phase: PhaseDebouncing, Input: pending})

		case <-timerC:
			timer = nil
			timerC = nil

			lookupCtx, lookupCancel := context.WithCancel(f.ctx)
			cancel = lookupCancel

			input := pending
			mySeq := seq
			f.emit(State{Phase: PhaseFetching, Input: input})

			go func() {
				profile, err := f.github.GetUser(lookupCtx, input)
				select {
				case resultCh <- lookupResult{seq: mySeq, profile: profile, err: err}:
				case <-f.ctx.Done():
				}
			}()

		case res := <-resultCh:
			if res.seq != seq {
				// A superseded lookup delivered late; drop it
				continue
			}
			cancel = nil

			if res.err != nil {
				// Best-effort preview: not found, cancellation, and
				// transport errors all settle as empty
				logging.From(f.ctx).Debug("preview lookup settled empty",
					"input", pending, "error", res.err.Error())
				f.emit(State{Phase: PhaseEmpty, Input: pending})
				continue
			}
			f.emit(State{Phase: PhaseReady, Input: pending, Profile: res.profile})
		}
	}
}

// emit delivers a state without ever blocking the event loop
func (f *Fetcher) emit(s State) {
	for {
		select {
		case f.updates <- s:
			return
		default:
			select {
			case <-f.updates:
			default:
			}
		}
	}
}
