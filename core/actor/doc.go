/*
Package actor implements a minimal actor primitive.

An actor is an isolated execution unit. Its state is created inside the unit
by a factory function and is never shared. Clients talk to the actor
exclusively by sending messages through a handle:

    ref := actor.Spawn(func() actor.Actor[Msg] { return &myActor{} })
    err := ref.Send(Msg{…})

Messages are delivered to Handle, one at a time. The actor never starts
handling a message before Handle returned for the previous one. If Handle
returns false, the actor terminates and releases its goroutine. It terminates
as well if all handles are closed and the mailbox has been drained.

There are two kinds of handles. A Ref is an exclusive, single-producer handle:
messages sent through it arrive in send order. A SharedRef may be cloned
cheaply; all clones feed the same mailbox, every message is delivered exactly
once, but interleaving of messages from different clones is unspecified.

Sending to a terminated actor is not a silent drop: Send returns
ErrUndeliverable.

The mailbox is unbounded. There is no backpressure: a slow actor will
accumulate messages without limit. Pending reports the current queue length.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package actor

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'flowlayout.actor'.
func tracer() tracing.Trace {
	return tracing.Select("flowlayout.actor")
}
