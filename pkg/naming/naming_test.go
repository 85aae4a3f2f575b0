package naming_test

import (
	"errors"
	"testing"

	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/gatewire-labs/gatewire/pkg/naming"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStack_Resolve(t *testing.T) {
	s := naming.NewStack()
	assert.Equal(t, "io", s.Resolve("io"))

	err := s.Scope("top", func() error {
		return s.Scope("alu", func() error {
			assert.Equal(t, "top_alu_io", s.Resolve("io"))
			assert.Equal(t, []string{"top", "alu"}, s.Tokens())
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
}

func TestStack_ScopeNamed(t *testing.T) {
	s := naming.NewStack()
	sig := hw.UInt(8)
	sig.SuggestName("acc")

	err := s.Scope("top", func() error {
		return s.ScopeNamed(sig, func() error {
			assert.Equal(t, "top_acc_q", s.Resolve("q"))
			return nil
		})
	})
	require.NoError(t, err)
}

func TestStack_ScopeNamed_Unnamed(t *testing.T) {
	s := naming.NewStack()
	err := s.ScopeNamed(hw.UInt(8), func() error {
		// An unnamed terminal contributes no prefix.
		assert.Equal(t, "q", s.Resolve("q"))
		assert.Equal(t, 1, s.Depth())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
}

func TestStack_SymmetryOnError(t *testing.T) {
	s := naming.NewStack()
	boom := errors.New("boom")

	err := s.Scope("outer", func() error {
		before := s.Tokens()
		err := s.Scope("x", func() error { return boom })
		assert.True(t, errors.Is(err, boom))
		assert.Equal(t, before, s.Tokens(), "stack restored after failed scope")
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
}

func TestStack_SymmetryOnPanic(t *testing.T) {
	s := naming.NewStack()

	func() {
		defer func() { _ = recover() }()
		_ = s.Scope("x", func() error { panic("unwound") })
	}()

	assert.Equal(t, 0, s.Depth(), "panic inside a scope must still pop")
}

func TestStack_OpaqueScope(t *testing.T) {
	s := naming.NewStack()

	err := s.Scope("top", func() error {
		return s.OpaqueScope(func() error {
			// Enclosing prefixes are hidden inside the opaque scope.
			assert.Equal(t, "q", s.Resolve("q"))

			return s.Scope("inner", func() error {
				// Frames pushed inside the opaque scope still apply.
				assert.Equal(t, "inner_q", s.Resolve("q"))
				return nil
			})
		})
	})
	require.NoError(t, err)

	// Outer visibility is unaffected after the opaque scope pops.
	err = s.Scope("top", func() error {
		assert.Equal(t, "top_q", s.Resolve("q"))
		return nil
	})
	require.NoError(t, err)
}

func TestStack_Reset(t *testing.T) {
	s := naming.NewStack()
	err := s.Scope("a", func() error {
		s.Reset()
		assert.Equal(t, 0, s.Depth())
		assert.Equal(t, "q", s.Resolve("q"))
		return nil
	})
	require.NoError(t, err)
}
