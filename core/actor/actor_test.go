package actor

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type helloMsg struct {
	getName chan<- string
	exit    chan<- struct{}
}

type helloActor struct {
	name string
}

func (a *helloActor) Handle(msg helloMsg) bool {
	if msg.exit != nil {
		msg.exit <- struct{}{}
		return false
	}
	msg.getName <- a.name
	return true
}

func spawnHello(name string) *Ref[helloMsg] {
	return Spawn(func() Actor[helloMsg] {
		return &helloActor{name: name}
	})
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("actor did not terminate")
	}
}

func TestExit(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	ref := spawnHello("bob")
	exit := make(chan struct{})
	require.NoError(t, ref.Send(helloMsg{exit: exit}))
	<-exit
	waitDone(t, ref.Done())
	assert.NoError(t, ref.Err())
	err := ref.Send(helloMsg{exit: exit})
	assert.True(t, errors.Is(err, ErrUndeliverable))
	assert.Equal(t, core.ECONNECTION, core.Code(err))
}

func TestShared(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	actor1 := spawnHello("bob").Share()
	actor2 := actor1.Clone()
	name1, name2 := make(chan string, 1), make(chan string, 1)
	require.NoError(t, actor1.Send(helloMsg{getName: name1}))
	require.NoError(t, actor2.Send(helloMsg{getName: name2}))
	assert.Equal(t, "bob", <-name1)
	assert.Equal(t, "bob", <-name2)
	exit := make(chan struct{})
	require.NoError(t, actor1.Send(helloMsg{exit: exit}))
	<-exit
	waitDone(t, actor2.Done())
	assert.Error(t, actor2.Send(helloMsg{getName: name2}))
}

type countMsg struct {
	n    int
	stop bool
}

func TestOrderedDeliveryThenStop(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	const N = 500
	var seen []countMsg // written only inside the actor, read after Done
	ref := Spawn(func() Actor[countMsg] {
		return Func[countMsg](func(msg countMsg) bool {
			seen = append(seen, msg)
			return !msg.stop
		})
	})
	for i := 0; i < N; i++ {
		require.NoError(t, ref.Send(countMsg{n: i}))
	}
	require.NoError(t, ref.Send(countMsg{stop: true}))
	for i := 0; i < 10; i++ { // may or may not be accepted, must never be handled
		_ = ref.Send(countMsg{n: -1})
	}
	waitDone(t, ref.Done())
	require.Len(t, seen, N+1)
	for i := 0; i < N; i++ {
		assert.Equal(t, i, seen[i].n)
		assert.False(t, seen[i].stop)
	}
	assert.True(t, seen[N].stop)
	assert.True(t, errors.Is(ref.Send(countMsg{}), ErrUndeliverable))
}

func TestSharedClonesDeliverExactlyOnce(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	const perSender = 1000
	received := make(map[int]int)
	shared := Spawn(func() Actor[int] {
		return Func[int](func(msg int) bool {
			received[msg]++
			return true
		})
	}).Share()
	clones := []*SharedRef[int]{shared, shared.Clone()}
	var wg sync.WaitGroup
	for c, clone := range clones {
		wg.Add(1)
		go func(c int, clone *SharedRef[int]) {
			defer wg.Done()
			defer clone.Close()
			for i := 0; i < perSender; i++ {
				if err := clone.Send(c*perSender + i); err != nil {
					t.Errorf("send failed: %v", err)
				}
			}
		}(c, clone)
	}
	wg.Wait()
	waitDone(t, shared.Done()) // last clone closed => mailbox drained => stop
	assert.Len(t, received, 2*perSender)
	for msg, cnt := range received {
		assert.Equal(t, 1, cnt, "message %d delivered %d times", msg, cnt)
	}
}

func TestCloseDrainsMailbox(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	var sum int
	ref := Spawn(func() Actor[int] {
		return Func[int](func(msg int) bool {
			sum += msg
			return true
		})
	})
	for i := 1; i <= 10; i++ {
		require.NoError(t, ref.Send(i))
	}
	ref.Close()
	ref.Close()
	assert.True(t, errors.Is(ref.Send(99), ErrUndeliverable))
	waitDone(t, ref.Done())
	assert.Equal(t, 55, sum)
	assert.NoError(t, ref.Err())
}

func TestPanicTerminatesOnlyOwningActor(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	faulty := Spawn(func() Actor[int] {
		return Func[int](func(msg int) bool {
			panic("broken invariant")
		})
	})
	healthy := spawnHello("alice")
	require.NoError(t, faulty.Send(1))
	waitDone(t, faulty.Done())
	assert.Error(t, faulty.Err())
	assert.Equal(t, core.ETERMINATED, core.Code(faulty.Err()))
	assert.True(t, errors.Is(faulty.Send(2), ErrUndeliverable))
	//
	name := make(chan string, 1)
	require.NoError(t, healthy.Send(helloMsg{getName: name}))
	assert.Equal(t, "alice", <-name)
	healthy.Close()
	waitDone(t, healthy.Done())
}

func TestUnboundedMailbox(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	const backlog = 10000
	started, gate := make(chan struct{}), make(chan struct{})
	handled := 0
	ref := Spawn(func() Actor[int] {
		return Func[int](func(msg int) bool {
			if msg == 0 {
				close(started)
				<-gate
			}
			handled++
			return true
		})
	})
	require.NoError(t, ref.Send(0))
	<-started
	for i := 1; i <= backlog; i++ { // must never block, even with a stalled actor
		require.NoError(t, ref.Send(i))
	}
	assert.Equal(t, backlog, ref.Pending())
	close(gate)
	ref.Close()
	waitDone(t, ref.Done())
	assert.Equal(t, backlog+1, handled)
	assert.Equal(t, 0, ref.Pending())
}

func TestSendWhileStoppingIsDiscarded(t *testing.T) {
	defer goleak.VerifyNone(t)
	teardown := gotestingadapter.QuickConfig(t, "flowlayout.actor")
	defer teardown()
	//
	entered := make(chan struct{})
	release := make(chan struct{})
	var handled []int
	ref := Spawn(func() Actor[int] {
		return Func[int](func(n int) bool {
			handled = append(handled, n)
			if n == 0 {
				close(entered)
				<-release
				return false
			}
			return true
		})
	})
	require.NoError(t, ref.Send(0))
	<-entered
	require.NoError(t, ref.Send(1), "message is queued while the actor stops")
	assert.Equal(t, 1, ref.Pending())
	close(release)
	waitDone(t, ref.Done())
	assert.Equal(t, []int{0}, handled)
	assert.Equal(t, 0, ref.Pending())
	assert.ErrorIs(t, ref.Send(2), ErrUndeliverable)
}
