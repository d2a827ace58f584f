package checker

import (
	"context"

	"stockwatch/config"
)

// RawEvent is the opaque payload delivered by an external trigger such as a
// scheduled function invocation. Its contents are ignored.
type RawEvent []byte

// HandleTrigger is the entrypoint for externally scheduled invocations. The
// event payload is ignored and the default product page is checked.
func (c *Checker) HandleTrigger(ctx context.Context, _ RawEvent) error {
	return c.Check(ctx, config.DefaultProductURL)
}
