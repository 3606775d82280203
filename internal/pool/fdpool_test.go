package pool

import (
	"os"
	"testing"

	"github.com/sean-dougherty/seqio/errs"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), "fdpool-*")
	require.NoError(t, err)
	_, err = f.WriteString("hello")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	return f.Name()
}

func TestFdPool_AcquireOpensAndReleaseCaches(t *testing.T) {
	path := tempFile(t)
	p := NewFdPool(path)

	require.Equal(t, 0, p.Len())

	g, err := p.Acquire()
	require.NoError(t, err)
	require.NotNil(t, g.File())
	require.Equal(t, 0, p.Len(), "handle is checked out, not idle")

	require.NoError(t, g.Close())
	require.Equal(t, 1, p.Len(), "handle returned to idle list")
}

func TestFdPool_AcquireReusesIdleHandle(t *testing.T) {
	path := tempFile(t)
	p := NewFdPool(path)

	g1, err := p.Acquire()
	require.NoError(t, err)
	first := g1.File()
	require.NoError(t, g1.Close())

	g2, err := p.Acquire()
	require.NoError(t, err)
	require.Same(t, first, g2.File(), "second acquire should reuse the released handle")
	require.NoError(t, g2.Close())
}

func TestFdPool_GuardCloseIdempotent(t *testing.T) {
	path := tempFile(t)
	p := NewFdPool(path)

	g, err := p.Acquire()
	require.NoError(t, err)
	require.NoError(t, g.Close())
	require.NoError(t, g.Close())
	require.Equal(t, 1, p.Len(), "double close must not double-release")
}

func TestFdPool_AcquireMissingFileFails(t *testing.T) {
	p := NewFdPool("/nonexistent/path/to/seqio-test")
	_, err := p.Acquire()
	require.Error(t, err)

	var pathErr *PathError
	require.ErrorAs(t, err, &pathErr)
	require.Equal(t, errs.KindIO, errs.KindOf(err))
}

func TestFdPool_AcquireManaged(t *testing.T) {
	path := tempFile(t)
	p := NewFdPool(path)

	var slot *os.File
	g, err := p.AcquireManaged(&slot)
	require.NoError(t, err)
	require.NotNil(t, slot)
	require.Same(t, g.File(), slot)

	require.NoError(t, g.Close())
	require.Nil(t, slot, "managed slot must be nulled on release")
}

func TestFdPool_CloseIdleAccounting(t *testing.T) {
	path := tempFile(t)
	p := NewFdPool(path)

	g1, err := p.Acquire()
	require.NoError(t, err)
	g2, err := p.Acquire()
	require.NoError(t, err)

	require.NoError(t, g1.Close())
	require.NoError(t, g2.Close())
	require.Equal(t, 2, p.Len())

	require.NoError(t, p.CloseIdle())
	require.Equal(t, 0, p.Len(), "after closing all sequences/readers, zero open handles remain")
}

func TestFdPool_ConcurrentAcquireRelease(t *testing.T) {
	path := tempFile(t)
	p := NewFdPool(path)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				g, err := p.Acquire()
				require.NoError(t, err)
				require.NoError(t, g.Close())
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}

	require.NoError(t, p.CloseIdle())
}
