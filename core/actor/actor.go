package actor

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/flowlayout/core"
)

// Actor is the local interface of an actor. Handle is called for every
// message received, in order of arrival. Returning false stops the actor.
type Actor[M any] interface {
	Handle(msg M) bool
}

// Func adapts a plain function to the Actor interface.
type Func[M any] func(msg M) bool

// Handle calls f(msg).
func (f Func[M]) Handle(msg M) bool {
	return f(msg)
}

// ErrUndeliverable is returned when sending to an actor which has terminated,
// or through a handle which has been closed.
var ErrUndeliverable = core.Error(core.ECONNECTION, "actor does not accept messages")

var unitCounter int64

// unit is the execution unit behind the handles.
type unit[M any] struct {
	id   int64
	mbox *mailbox[M]
	done chan struct{}
	err  error // set before done is closed
}

// Spawn creates a new actor. factory is called exactly once, inside the
// new execution unit, to create the actor's private state.
func Spawn[M any](factory func() Actor[M]) *Ref[M] {
	u := &unit[M]{
		id:   atomic.AddInt64(&unitCounter, 1),
		mbox: newMailbox[M](),
		done: make(chan struct{}),
	}
	go u.run(factory)
	return &Ref[M]{u: u}
}

func (u *unit[M]) run(factory func() Actor[M]) {
	defer func() {
		if r := recover(); r != nil {
			u.err = core.Error(core.ETERMINATED, "actor #%d aborted: %v", u.id, r)
			tracer().Errorf("actor #%d aborted: %v", u.id, r)
		}
		if n := u.mbox.kill(); n > 0 {
			tracer().Infof("actor #%d terminated with %d unprocessed messages", u.id, n)
		}
		close(u.done)
	}()
	a := factory()
	if a == nil {
		panic(fmt.Sprintf("factory of actor #%d returned nil", u.id))
	}
	tracer().Debugf("actor #%d started", u.id)
	for {
		msg, ok := u.mbox.take()
		if !ok {
			tracer().Debugf("actor #%d: mailbox closed", u.id)
			return
		}
		if !a.Handle(msg) {
			tracer().Debugf("actor #%d stopped", u.id)
			return
		}
	}
}

// --- Exclusive handle ------------------------------------------------------

// Ref is an exclusive handle to an actor. Messages sent through one Ref
// arrive in send order. A Ref is meant for a single producer; use Share to
// obtain a handle which may be cloned and used by several producers.
type Ref[M any] struct {
	u      *unit[M]
	mutex  sync.Mutex
	closed bool // closed or moved to a shared handle
}

// Send hands msg over to the actor. It does not block. If the actor has
// terminated or the handle has been closed, ErrUndeliverable is returned.
//
// A nil error means msg has been queued, not that it will be handled: if the
// actor stops, either by returning false from Handle or by panicking, messages
// still queued are discarded. This includes messages sent while the actor is
// handling its final message.
func (ref *Ref[M]) Send(msg M) error {
	ref.mutex.Lock()
	defer ref.mutex.Unlock()
	if ref.closed {
		return ErrUndeliverable
	}
	return ref.u.mbox.put(msg)
}

// Close gives up the handle. The actor will process messages already queued
// and then terminate. Closing twice is a no-op.
func (ref *Ref[M]) Close() {
	ref.mutex.Lock()
	defer ref.mutex.Unlock()
	if ref.closed {
		return
	}
	ref.closed = true
	ref.u.mbox.close()
}

// Share converts an exclusive handle into a shared one. The exclusive handle
// is unusable afterwards.
func (ref *Ref[M]) Share() *SharedRef[M] {
	ref.mutex.Lock()
	defer ref.mutex.Unlock()
	if ref.closed {
		panic("actor: cannot share a closed handle")
	}
	ref.closed = true
	return &SharedRef[M]{u: ref.u, refs: &refcount{n: 1}}
}

// Done returns a channel which is closed as soon as the actor has terminated.
func (ref *Ref[M]) Done() <-chan struct{} {
	return ref.u.done
}

// Err returns the reason for an abnormal termination. It is nil while the
// actor is running and after a regular stop.
func (ref *Ref[M]) Err() error {
	return ref.u.failure()
}

// Pending returns the number of messages waiting in the actor's mailbox.
func (ref *Ref[M]) Pending() int {
	return ref.u.mbox.size()
}

func (u *unit[M]) failure() error {
	select {
	case <-u.done:
		return u.err
	default:
		return nil
	}
}

// --- Shared handle ---------------------------------------------------------

type refcount struct {
	mutex sync.Mutex
	n     int
}

// SharedRef is a handle to an actor which may be cloned. All clones deliver
// into the same mailbox. When the last clone is closed, the mailbox is closed.
type SharedRef[M any] struct {
	u        *unit[M]
	refs     *refcount
	released atomic.Bool
}

// Clone creates another handle for the same actor.
func (sref *SharedRef[M]) Clone() *SharedRef[M] {
	if sref.released.Load() {
		panic("actor: cannot clone a closed handle")
	}
	sref.refs.mutex.Lock()
	sref.refs.n++
	sref.refs.mutex.Unlock()
	return &SharedRef[M]{u: sref.u, refs: sref.refs}
}

// Send hands msg over to the actor. It does not block. If the actor has
// terminated or this handle has been closed, ErrUndeliverable is returned.
// As with Ref.Send, a nil error means queued, not handled.
func (sref *SharedRef[M]) Send(msg M) error {
	if sref.released.Load() {
		return ErrUndeliverable
	}
	return sref.u.mbox.put(msg)
}

// Close releases this handle. Closing twice is a no-op.
func (sref *SharedRef[M]) Close() {
	if !sref.released.CompareAndSwap(false, true) {
		return
	}
	sref.refs.mutex.Lock()
	defer sref.refs.mutex.Unlock()
	sref.refs.n--
	if sref.refs.n == 0 {
		sref.u.mbox.close()
	}
}

// Done returns a channel which is closed as soon as the actor has terminated.
func (sref *SharedRef[M]) Done() <-chan struct{} {
	return sref.u.done
}

// Err returns the reason for an abnormal termination, if any.
func (sref *SharedRef[M]) Err() error {
	return sref.u.failure()
}

// Pending returns the number of messages waiting in the actor's mailbox.
func (sref *SharedRef[M]) Pending() int {
	return sref.u.mbox.size()
}
