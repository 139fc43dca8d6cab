// Package ledger is the in-memory, append-only record of every operation
// the gateway has submitted: deploy, mint, burn, transfer, pause,
// unpause, update-metadata, list-on-dex. It is consulted by HTTP handlers
// to shape response envelopes; it is not itself queryable via the API
// (spec §4.3 marks this a future-compatible extension point).
package ledger

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Status is the operation lifecycle tag. Transitions are monotone:
// Pending -> Submitted -> {Confirmed, Failed}.
type Status string

const (
	Pending   Status = "Pending"
	Submitted Status = "Submitted"
	Confirmed Status = "Confirmed"
	Failed    Status = "Failed"
)

// Kind is the verb tag identifying what an operation does.
type Kind string

const (
	KindDeploy         Kind = "Deploy"
	KindMint           Kind = "Mint"
	KindBurn           Kind = "Burn"
	KindTransfer       Kind = "Transfer"
	KindPause          Kind = "Pause"
	KindUnpause        Kind = "Unpause"
	KindUpdateMetadata Kind = "UpdateMetadata"
	KindListOnDex      Kind = "ListOnDex"
)

// Operation is one async gateway-initiated action.
type Operation struct {
	OperationID string
	Status      Status
	TxHash      string
	BlockNumber *uint64
	Kind        Kind
	Payload     any
	ExternalID  string
	CreatedAt   time.Time
}

// Ledger is the C3 component: an index by operationId bounded to a
// configurable capacity. Evictions never drop an entry whose status is
// still non-terminal — the LRU's natural "evict the least recently used"
// policy is overridden so that only entries already in {Confirmed,
// Failed} are candidates for eviction.
type Ledger struct {
	mu       sync.Mutex
	capacity int
	index    *lru.Cache[string, *Operation]
	terminal []string // FIFO of terminal operation IDs, oldest first
	counter  uint64
}

// backingSize is the hashicorp LRU's own size threshold. It is set far
// above any configured ledger capacity so the LRU's built-in "evict
// least-recently-used on overflow" policy never fires on its own —
// capacity enforcement is entirely Ledger.put's job via evictOneTerminal,
// which evicts only terminal entries. Without this, Add on an LRU already
// at its own size limit would silently drop whatever entry it judges
// least-recently-used, including a still-Pending one.
const backingSize = 1 << 30

// New constructs a Ledger bounded at capacity entries.
func New(capacity int) *Ledger {
	if capacity < 1 {
		capacity = 1
	}
	l := &Ledger{capacity: capacity}
	c, _ := lru.New[string, *Operation](backingSize)
	l.index = c
	return l
}

// NextDeployID returns the operation id for a deployment: the factory
// token id itself. When a deployment yields no token id (no TokenCreated
// event, a failed transaction, or a receipt-wait timeout) the caller uses
// an id from NextVerbID instead.
func (l *Ledger) NextDeployID(tokenID uint64) string {
	return fmt.Sprintf("%d", tokenID)
}

// NextVerbID synthesises a verb-keyed operation id of the form
// "<verb>-<tokenId>-<monotonic>".
func (l *Ledger) NextVerbID(kind Kind, tokenID uint64) string {
	n := atomic.AddUint64(&l.counter, 1)
	return fmt.Sprintf("%s-%d-%d", verbSlug(kind), tokenID, n)
}

func verbSlug(k Kind) string {
	switch k {
	case KindMint:
		return "mint"
	case KindBurn:
		return "burn"
	case KindTransfer:
		return "transfer"
	case KindPause:
		return "pause"
	case KindUnpause:
		return "unpause"
	case KindUpdateMetadata:
		return "update-metadata"
	case KindListOnDex:
		return "list-on-dex"
	default:
		return "op"
	}
}

// Create records a new Pending operation.
func (l *Ledger) Create(id string, kind Kind, externalID string, payload any) *Operation {
	op := &Operation{
		OperationID: id,
		Status:      Pending,
		Kind:        kind,
		Payload:     payload,
		ExternalID:  externalID,
		CreatedAt:   time.Now(),
	}
	l.mu.Lock()
	l.put(op)
	l.mu.Unlock()
	return op
}

// MarkSubmitted transitions an operation to Submitted and records its
// transaction hash. txHash is set at most once.
func (l *Ledger) MarkSubmitted(id, txHash string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	op, ok := l.index.Get(id)
	if !ok || op.Status != Pending {
		return
	}
	op.Status = Submitted
	op.TxHash = txHash
}

// MarkConfirmed transitions an operation to the terminal Confirmed state.
func (l *Ledger) MarkConfirmed(id string, blockNumber uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	op, ok := l.index.Get(id)
	if !ok || isTerminal(op.Status) {
		return
	}
	op.Status = Confirmed
	op.BlockNumber = &blockNumber
	l.terminal = append(l.terminal, id)
}

// MarkFailed transitions an operation to the terminal Failed state.
func (l *Ledger) MarkFailed(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	op, ok := l.index.Get(id)
	if !ok || isTerminal(op.Status) {
		return
	}
	op.Status = Failed
	l.terminal = append(l.terminal, id)
}

// Get retrieves an operation by id.
func (l *Ledger) Get(id string) (*Operation, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.index.Get(id)
}

func isTerminal(s Status) bool { return s == Confirmed || s == Failed }

// put inserts op, evicting the oldest terminal entry if the index is at
// capacity. Callers hold l.mu.
func (l *Ledger) put(op *Operation) {
	if l.index.Len() >= l.capacity && l.index.Len() > 0 {
		l.evictOneTerminal()
	}
	l.index.Add(op.OperationID, op)
}

// evictOneTerminal drops the oldest entry known to be terminal. If no
// terminal entry exists yet, the ledger is allowed to grow past capacity
// momentarily rather than discard a non-terminal operation — the
// invariant in spec §4.3 takes priority over the soft memory bound.
func (l *Ledger) evictOneTerminal() {
	for len(l.terminal) > 0 {
		id := l.terminal[0]
		l.terminal = l.terminal[1:]
		if op, ok := l.index.Peek(id); ok {
			if isTerminal(op.Status) {
				l.index.Remove(id)
				return
			}
		}
	}
}
