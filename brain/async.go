package brain

import (
	"context"
	"log"
)

// dispatch runs fn on a background goroutine with a detached context, so
// the task outlives the originating request and cannot be cancelled by
// the caller. Panics are recovered and logged: a learning task must never
// crash a serving goroutine or surface to the original caller.
func dispatch(name string, fn func(ctx context.Context)) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[BRAIN] Background task %s panicked: %v", name, r)
			}
		}()
		fn(context.Background())
	}()
}
