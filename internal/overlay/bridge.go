package overlay

import (
	"context"
	"log"

	"hotkeyoverlay/internal/hotkeys"
)

// Receiver is a blocking source of hotkey transitions, such as *hotkeys.Registry.
type Receiver interface {
	Receive() (hotkeys.Notification, bool)
}

// Bridge moves notifications from a blocking Receiver onto the Queue from
// its own goroutine, one receive at a time, in delivery order.
type Bridge struct {
	src   Receiver
	queue *Queue
	done  chan struct{}
}

// NewBridge creates a bridge from src to queue.
func NewBridge(src Receiver, queue *Queue) *Bridge {
	return &Bridge{
		src:   src,
		queue: queue,
		done:  make(chan struct{}),
	}
}

// Start runs the bridge in the background. ctx only bounds how long a
// forward may wait for queue space; an in-flight Receive is not interrupted.
func (b *Bridge) Start(ctx context.Context) {
	go b.run(ctx)
}

// Done is closed when the bridge has exited.
func (b *Bridge) Done() <-chan struct{} {
	return b.done
}

func (b *Bridge) run(ctx context.Context) {
	defer close(b.done)

	for {
		n, ok := b.src.Receive()
		if !ok {
			log.Println("Hotkey stream closed, bridge exiting")
			return
		}
		if err := b.queue.Send(ctx, HotkeyMessage{Notification: n}); err != nil {
			log.Printf("Failed to forward hotkey event %d: %v", n.ID, err)
			return
		}
	}
}
