// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type (
	// Counter is a thread-safe, monotonically increasing id source.
	//
	// The zero value is ready for use & yields 0 first.
	Counter struct {
		m   sync.Mutex
		val int
	}
)

// Synchronization errors.
var (
	ErrInvalidGoroutineCount = errors.New("invalid goroutine count")
)

// Next returns the current value of the counter then increments it.
func (c *Counter) Next() (id int) {
	c.m.Lock()
	defer c.m.Unlock()

	id = c.val
	c.val++

	return
}

// Value returns the value the next call to Next will yield.
func (c *Counter) Value() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.val
}

// Collect waits for `operations` completion signals from done or errChan, joining the received
// `error`s.
//
// Every operation must send exactly once on either channel; both channels should be buffered to
// `operations` so that senders never block on an abandoned collection.
func Collect(ctx context.Context, operations int, done <-chan struct{}, errChan <-chan error) (err error) {
	if operations < 1 {
		err = fmt.Errorf("%w: %d", ErrInvalidGoroutineCount, operations)
		return
	}

	var errs []error
	for index := 0; index < operations; index++ {
		select {
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return errors.Join(errs...)
		case <-done:
		case e := <-errChan:
			errs = append(errs, e)
		}
	}

	return errors.Join(errs...)
}
