package engine

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hongtianjun/cloudlight/internal/infrastructure/logging"
	"github.com/hongtianjun/cloudlight/internal/resource"
)

// Resource is one registered resource: its registration options plus the
// introspection fields derived from them.
type Resource struct {
	opts ResourceOptions
}

// URI returns the resource's registered URI.
func (r *Resource) URI() string { return r.opts.URI }

// BaselineEntries returns the introspection fields exposed on a
// baseline-interface read: resource types first, then supported interfaces.
func (r *Resource) BaselineEntries() resource.Representation {
	ifaces := make([]string, 0, len(r.opts.Interfaces))
	for _, i := range r.opts.Interfaces {
		ifaces = append(ifaces, string(i))
	}
	return resource.Representation{
		resource.String("rt", strings.Join(r.opts.Types, " ")),
		resource.String("if", strings.Join(ifaces, " ")),
	}
}

// Engine hosts registered resources and a deadline queue.
//
// It stands in for the full protocol stack: request routing and timed
// callbacks, without framing, retransmission or discovery. Dispatch and
// Schedule may be called from any goroutine; scheduled callbacks run on
// whichever goroutine calls Poll.
type Engine struct {
	log *logging.Logger

	mu        sync.RWMutex
	resources map[string]*Resource
	queue     eventQueue
	wake      func()
}

// New creates an empty engine.
func New(log *logging.Logger) *Engine {
	return &Engine{
		log:       log,
		resources: make(map[string]*Resource),
	}
}

// SetWake installs the notifier invoked after Schedule so the owning loop
// re-polls. Must be set before the loop starts; nil disables notification.
func (e *Engine) SetWake(fn func()) {
	e.mu.Lock()
	e.wake = fn
	e.mu.Unlock()
}

// Register adds a resource under its URI. Registering the same URI twice
// is an error.
func (e *Engine) Register(opts ResourceOptions) (*Resource, error) {
	if opts.URI == "" {
		return nil, ErrMissingURI
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.resources[opts.URI]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateURI, opts.URI)
	}

	res := &Resource{opts: opts}
	e.resources[opts.URI] = res

	e.log.Info("resource registered",
		"uri", opts.URI,
		"types", strings.Join(opts.Types, " "),
		"discoverable", opts.Discoverable,
		"observable", opts.Observable,
	)
	return res, nil
}

// Dispatch routes a request to the registered resource's handler.
//
// GET responses carry the CBOR-encoded representation; POST requests carry
// one to decode, and an undecodable payload is answered with Bad Request
// rather than an error.
func (e *Engine) Dispatch(method Method, req Request) (Response, error) {
	e.mu.RLock()
	res, ok := e.resources[req.URI]
	e.mu.RUnlock()
	if !ok {
		return Response{}, fmt.Errorf("%w: %s", ErrUnknownResource, req.URI)
	}

	iface := req.Interface
	if iface == "" {
		iface = res.opts.DefaultInterface
	}

	switch method {
	case MethodGet:
		if res.opts.OnGet == nil {
			return Response{}, fmt.Errorf("%w: GET %s", ErrMethodNotAllowed, req.URI)
		}
		rep, status := res.opts.OnGet(iface, res)
		payload, err := rep.EncodeCBOR()
		if err != nil {
			return Response{}, fmt.Errorf("encode %s response: %w", req.URI, err)
		}
		return Response{Status: status, Payload: payload}, nil

	case MethodPost:
		if res.opts.OnPost == nil {
			return Response{}, fmt.Errorf("%w: POST %s", ErrMethodNotAllowed, req.URI)
		}
		rep, err := resource.DecodeCBOR(req.Payload)
		if err != nil {
			e.log.Warn("undecodable write payload",
				"uri", req.URI,
				"error", err,
			)
			return Response{Status: resource.StatusBadRequest}, nil
		}
		return Response{Status: res.opts.OnPost(rep)}, nil

	default:
		return Response{}, fmt.Errorf("%w: %v %s", ErrMethodNotAllowed, method, req.URI)
	}
}

// Schedule queues fn to run when at is reached, then nudges the loop so a
// nearer deadline is picked up immediately.
func (e *Engine) Schedule(at time.Time, fn func()) {
	e.mu.Lock()
	e.queue.push(&timedEvent{at: at, fn: fn})
	wake := e.wake
	e.mu.Unlock()

	if wake != nil {
		wake()
	}
}

// Poll runs every due callback and reports the earliest remaining deadline.
// ok is false when the queue is empty.
func (e *Engine) Poll() (time.Time, bool) {
	now := time.Now()
	for {
		e.mu.Lock()
		ev, due := e.queue.popDue(now)
		e.mu.Unlock()
		if !due {
			break
		}
		ev.fn()
	}

	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.queue.next()
}
