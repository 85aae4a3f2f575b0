// Package naming implements the hierarchical name-prefix stack used while
// elaborating hardware. The stack is an explicit per-run object, never a
// global: each elaboration run owns its own Stack and a single run is
// strictly single threaded, with scopes nested lexically by call and
// return. Push and pop are symmetric on every exit path, including panics.
package naming

import (
	"log/slog"
	"strings"

	"github.com/gatewire-labs/gatewire/pkg/hw"
)

type frame struct {
	token  string
	opaque bool
}

// Stack is an ordered set of name-prefix frames for one elaboration run.
// The zero value is not usable; construct with NewStack.
type Stack struct {
	frames []frame
	log    *slog.Logger
}

// Option configures a Stack.
type Option func(*Stack)

// WithLogger attaches a structured logger; scope entry and exit are logged
// at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(s *Stack) { s.log = log }
}

// NewStack returns an empty naming stack.
func NewStack(opts ...Option) *Stack {
	s := &Stack{log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Depth returns the number of frames currently on the stack.
func (s *Stack) Depth() int { return len(s.frames) }

// Reset drops all frames. Call at the start of each independent
// elaboration run when reusing a stack.
func (s *Stack) Reset() { s.frames = s.frames[:0] }

// Tokens returns the currently visible prefix tokens, outermost first.
// Frames beneath the topmost opaque frame are not visible.
func (s *Stack) Tokens() []string {
	start := 0
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].opaque {
			start = i + 1
			break
		}
	}
	var out []string
	for _, f := range s.frames[start:] {
		if f.token != "" {
			out = append(out, f.token)
		}
	}
	return out
}

// Resolve returns the full name for a terminal created under the current
// scope: the visible prefix tokens joined by underscores, followed by base.
func (s *Stack) Resolve(base string) string {
	tokens := s.Tokens()
	if len(tokens) == 0 {
		return base
	}
	return strings.Join(tokens, "_") + "_" + base
}

// Scope pushes token, runs body, and pops on every exit path. The error
// from body is returned unchanged; the stack is restored to its prior
// state even when body fails or panics.
func (s *Stack) Scope(token string, body func() error) error {
	s.push(frame{token: token})
	defer s.pop()
	return body()
}

// ScopeNamed is Scope with the token taken from the terminal's currently
// suggested name. A terminal with no name contributes no prefix but still
// participates in push/pop symmetry.
func (s *Stack) ScopeNamed(t hw.Terminal, body func() error) error {
	return s.Scope(t.Name(), body)
}

// OpaqueScope pushes a frame that hides all enclosing prefixes: names
// resolved inside body see only frames pushed within it. The caller's own
// view of the stack is unaffected once body returns.
func (s *Stack) OpaqueScope(body func() error) error {
	s.push(frame{opaque: true})
	defer s.pop()
	return body()
}

func (s *Stack) push(f frame) {
	s.frames = append(s.frames, f)
	s.log.Debug("naming scope entered", "token", f.token, "opaque", f.opaque, "depth", len(s.frames))
}

func (s *Stack) pop() {
	if len(s.frames) == 0 {
		// A Reset inside an open scope already dropped the frame.
		return
	}
	f := s.frames[len(s.frames)-1]
	s.frames = s.frames[:len(s.frames)-1]
	s.log.Debug("naming scope left", "token", f.token, "opaque", f.opaque, "depth", len(s.frames))
}
