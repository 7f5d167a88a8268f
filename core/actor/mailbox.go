package actor

import (
	"sync"

	"github.com/emirpasic/gods/lists/singlylinkedlist"
)

// mailbox is an unbounded FIFO queue with a single consumer.
type mailbox[M any] struct {
	mutex  sync.Mutex
	cond   *sync.Cond
	queue  *singlylinkedlist.List
	closed bool // no more messages will be accepted from clients
	dead   bool // the consumer has terminated
}

func newMailbox[M any]() *mailbox[M] {
	mb := &mailbox[M]{queue: singlylinkedlist.New()}
	mb.cond = sync.NewCond(&mb.mutex)
	return mb
}

// put appends a message. It never blocks on queue capacity.
func (mb *mailbox[M]) put(msg M) error {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	if mb.closed || mb.dead {
		return ErrUndeliverable
	}
	mb.queue.Add(msg)
	mb.cond.Signal()
	return nil
}

// take blocks until a message is available. It returns false if the mailbox
// is closed and drained, or if the consumer is dead.
func (mb *mailbox[M]) take() (M, bool) {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	for mb.queue.Empty() && !mb.closed && !mb.dead {
		mb.cond.Wait()
	}
	var msg M
	if mb.dead || mb.queue.Empty() {
		return msg, false
	}
	v, _ := mb.queue.Get(0)
	mb.queue.Remove(0)
	return v.(M), true
}

// close stops accepting messages. Queued messages will still be taken.
func (mb *mailbox[M]) close() {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	mb.closed = true
	mb.cond.Broadcast()
}

// kill marks the consumer as dead and discards queued messages.
// It returns the number of discarded messages.
func (mb *mailbox[M]) kill() int {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	mb.dead = true
	n := mb.queue.Size()
	mb.queue.Clear()
	mb.cond.Broadcast()
	return n
}

func (mb *mailbox[M]) size() int {
	mb.mutex.Lock()
	defer mb.mutex.Unlock()
	return mb.queue.Size()
}
