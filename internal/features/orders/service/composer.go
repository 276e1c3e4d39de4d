package service

import (
	"context"
	"sync"
	"time"

	"courier-console/internal/features/orders/domain"

	cache "github.com/Code-Hex/go-generics-cache"
)

// DraftView is what the console shows for a session's draft.
type DraftView struct {
	Draft      *domain.Draft `json:"draft"`
	Quote      *domain.Quote `json:"quote,omitempty"`
	Estimating bool          `json:"estimating"`
	Submitting bool          `json:"submitting"`
}

// EstimateResult is the outcome of pricing a draft. Stale is set when the draft
// changed or was submitted while the estimate was in flight; Quote is then nil.
type EstimateResult struct {
	Quote *domain.Quote `json:"quote"`
	Stale bool          `json:"stale"`
}

// workspace is one session's draft. seq increases on every change so results of
// calls started against an older draft can be recognised and dropped.
type workspace struct {
	mu         sync.Mutex
	draft      *domain.Draft
	quote      *domain.Quote
	seq        uint64
	estimating bool
	submitting bool
}

// Composer keeps one draft per session and serializes estimate and submit calls on it.
type Composer struct {
	workflow   *Workflow
	workspaces *cache.Cache[string, *workspace]
	ttl        time.Duration

	mu sync.Mutex
}

// NewComposer creates a new Composer. Idle drafts are dropped after ttl.
func NewComposer(workflow *Workflow, ttl time.Duration) *Composer {
	return &Composer{
		workflow:   workflow,
		workspaces: cache.New[string, *workspace](),
		ttl:        ttl,
	}
}

func (c *Composer) workspace(sid string) *workspace {
	c.mu.Lock()
	defer c.mu.Unlock()

	ws, ok := c.workspaces.Get(sid)
	if !ok {
		ws = &workspace{}
	}
	c.workspaces.Set(sid, ws, cache.WithExpiration(c.ttl))
	return ws
}

// Save replaces the session's draft. It is refused while a submit is in flight.
func (c *Composer) Save(sid string, draft domain.Draft) (DraftView, error) {
	ws := c.workspace(sid)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.submitting {
		return ws.view(), domain.ErrBusy
	}

	ws.draft = &draft
	ws.quote = nil
	ws.seq++
	return ws.view(), nil
}

// Get returns the session's draft.
func (c *Composer) Get(sid string) DraftView {
	ws := c.workspace(sid)
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.view()
}

// Discard drops the session's draft. It is refused while a submit is in flight.
func (c *Composer) Discard(sid string) error {
	ws := c.workspace(sid)
	ws.mu.Lock()
	defer ws.mu.Unlock()

	if ws.submitting {
		return domain.ErrBusy
	}
	ws.clear()
	return nil
}

// Estimate prices the current draft. Only one estimate runs per session at a time.
func (c *Composer) Estimate(ctx context.Context, actor domain.Actor) (EstimateResult, error) {
	ws := c.workspace(actor.SessionID)

	ws.mu.Lock()
	if ws.draft == nil {
		ws.mu.Unlock()
		return EstimateResult{}, domain.ErrNoDraft
	}
	if ws.estimating || ws.submitting {
		ws.mu.Unlock()
		return EstimateResult{}, domain.ErrBusy
	}
	ws.estimating = true
	seq := ws.seq
	draft := *ws.draft
	ws.mu.Unlock()

	quote, err := c.workflow.Estimate(ctx, actor, draft)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.estimating = false

	if ws.seq != seq {
		return EstimateResult{Stale: true}, nil
	}
	if err != nil {
		return EstimateResult{}, err
	}

	ws.quote = quote
	return EstimateResult{Quote: quote}, nil
}

// Submit creates an order from the current draft. On success the draft is cleared,
// which also invalidates any estimate still in flight; on failure it is kept.
func (c *Composer) Submit(ctx context.Context, actor domain.Actor) (string, error) {
	ws := c.workspace(actor.SessionID)

	ws.mu.Lock()
	if ws.draft == nil {
		ws.mu.Unlock()
		return "", domain.ErrNoDraft
	}
	if ws.submitting {
		ws.mu.Unlock()
		return "", domain.ErrBusy
	}
	ws.submitting = true
	draft := *ws.draft
	ws.mu.Unlock()

	code, err := c.workflow.Submit(ctx, actor, draft)

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.submitting = false

	if err != nil {
		return "", err
	}

	ws.clear()
	return code, nil
}

func (ws *workspace) clear() {
	ws.draft = nil
	ws.quote = nil
	ws.seq++
}

func (ws *workspace) view() DraftView {
	v := DraftView{
		Estimating: ws.estimating,
		Submitting: ws.submitting,
	}
	if ws.draft != nil {
		d := *ws.draft
		v.Draft = &d
	}
	if ws.quote != nil {
		q := *ws.quote
		v.Quote = &q
	}
	return v
}
