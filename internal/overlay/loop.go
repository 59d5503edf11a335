package overlay

import (
	"context"
	"log"
)

// Run feeds queued messages to c one at a time, in arrival order. It returns
// once c is closing, the queue channel is closed, or ctx ends.
func Run(ctx context.Context, c *Controller, q *Queue) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-q.Messages():
			if !ok {
				return
			}
			c.Update(msg)
			if c.State() == StateClosing {
				log.Println("Controller loop finished")
				return
			}
		}
	}
}
