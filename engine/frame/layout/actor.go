package layout

import (
	"github.com/npillmayer/flowlayout/core"
	"github.com/npillmayer/flowlayout/core/actor"
	"github.com/npillmayer/flowlayout/core/dimen"
	"github.com/npillmayer/flowlayout/engine/frame/displaylist"
	"github.com/npillmayer/flowlayout/engine/frame/flow"
)

// Msg is a message understood by a layout actor: either Reflow or Exit.
type Msg interface {
	layoutMsg()
}

// Reflow asks a layout actor to lay out a flow tree and build its display
// list. Items outside Dirty are not part of the display list; an empty Dirty
// rectangle means the whole viewport. The result is sent to Reply, which
// should be buffered.
type Reflow struct {
	Tree  *flow.Tree
	Dirty dimen.Rect
	Reply chan<- Result
}

// Exit stops a layout actor. Done, if not nil, is closed when the actor
// has processed the message.
type Exit struct {
	Done chan<- struct{}
}

func (Reflow) layoutMsg() {}
func (Exit) layoutMsg()   {}

// Result is the answer to a Reflow request.
type Result struct {
	Tree *flow.Tree
	List *displaylist.DisplayList
	Err  error
}

// layouter is the private state of a layout actor.
type layouter struct {
	ctx     *Context
	builder *displaylist.Builder
	reflows int
}

// Spawn starts a layout actor with a private copy of ctx.
func Spawn(ctx *Context) *actor.Ref[Msg] {
	private := *ctx
	return actor.Spawn(func() actor.Actor[Msg] {
		return &layouter{
			ctx:     &private,
			builder: &displaylist.Builder{Tracer: private.trace()},
		}
	})
}

// Handle is part of interface actor.Actor.
func (l *layouter) Handle(msg Msg) bool {
	switch m := msg.(type) {
	case Reflow:
		l.reflows++
		res := l.reflow(m.Tree, m.Dirty)
		if m.Reply != nil {
			m.Reply <- res
		}
		return true
	case Exit:
		l.ctx.trace().Debugf("layout actor exits after %d reflows", l.reflows)
		if m.Done != nil {
			close(m.Done)
		}
		return false
	}
	l.ctx.trace().Errorf("layout actor: unknown message %T", msg)
	return true
}

func (l *layouter) reflow(tree *flow.Tree, dirty dimen.Rect) (res Result) {
	res.Tree = tree
	if tree == nil {
		res.Err = core.Error(core.EMISSING, "reflow without flow tree")
		return
	}
	if res.Err = Layout(l.ctx, tree); res.Err != nil {
		return
	}
	if dirty.IsEmpty() {
		dirty = dimen.Rect{Size: l.ctx.Viewport}
	}
	defer func() {
		if r := recover(); r != nil {
			verr, ok := r.(*flow.VariantError)
			if !ok {
				panic(r)
			}
			res.List = nil
			res.Err = core.WrapError(verr, core.EINTERNAL, "cannot build display list")
		}
	}()
	res.List = l.builder.Build(tree, dirty)
	return
}
