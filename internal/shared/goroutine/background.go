// Package goroutine runs fire-and-forget side effects, such as customer mail,
// off the request path.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"subcommerce/internal/shared/logger"
)

// Go runs task in its own goroutine under the given name. A returned error is
// logged at warn level; a panic is logged with its stack and swallowed.
func Go(log logger.Interface, name string, task func() error) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("background task panicked",
					"task", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		if err := task(); err != nil {
			log.Warnw("background task failed", "task", name, "error", err)
		}
	}()
}
