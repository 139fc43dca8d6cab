package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndTransition(t *testing.T) {
	l := New(10)
	id := l.NextVerbID(KindMint, 1)
	l.Create(id, KindMint, "", nil)

	op, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, Pending, op.Status)

	l.MarkSubmitted(id, "0xabc")
	op, _ = l.Get(id)
	assert.Equal(t, Submitted, op.Status)
	assert.Equal(t, "0xabc", op.TxHash)

	l.MarkConfirmed(id, 42)
	op, _ = l.Get(id)
	assert.Equal(t, Confirmed, op.Status)
	require.NotNil(t, op.BlockNumber)
	assert.Equal(t, uint64(42), *op.BlockNumber)
}

func TestStatusIsMonotoneOnceTerminal(t *testing.T) {
	l := New(10)
	id := "op-1"
	l.Create(id, KindMint, "", nil)
	l.MarkConfirmed(id, 1)

	// A stray late MarkFailed must not undo a terminal Confirmed status.
	l.MarkFailed(id)
	op, ok := l.Get(id)
	require.True(t, ok)
	assert.Equal(t, Confirmed, op.Status)
}

func TestEvictionNeverDropsNonTerminalEntries(t *testing.T) {
	l := New(2)

	l.Create("pending-1", KindMint, "", nil) // stays Pending forever in this test

	term := "terminal-1"
	l.Create(term, KindBurn, "", nil)
	l.MarkConfirmed(term, 1)

	// Filling beyond capacity should evict the terminal entry, not the
	// still-pending one.
	l.Create("pending-2", KindTransfer, "", nil)
	l.Create("pending-3", KindTransfer, "", nil)

	_, stillThere := l.Get("pending-1")
	assert.True(t, stillThere, "non-terminal entry must never be evicted")

	_, termGone := l.Get(term)
	assert.False(t, termGone, "terminal entry should have been evicted to make room")
}

func TestNextVerbIDIsUniquePerCall(t *testing.T) {
	l := New(10)
	a := l.NextVerbID(KindMint, 7)
	b := l.NextVerbID(KindMint, 7)
	assert.NotEqual(t, a, b)
}

func TestNextDeployIDIsTokenID(t *testing.T) {
	l := New(10)
	assert.Equal(t, "9", l.NextDeployID(9))
}
