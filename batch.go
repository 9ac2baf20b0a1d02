// SPDX-License-Identifier: MIT
package tokenizer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/panjf2000/ants/v2"

	"gitlab.com/fisherprime/tokenizer/types"
)

type (
	// Source names an input for ScanAll.
	Source struct {
		Name   string
		Reader io.Reader
	}

	// Result holds the outcome of scanning a single Source.
	Result struct {
		Source string
		Tokens List
		Err    error
	}
)

// ErrPool is returned when ScanAll can't obtain its goroutine pool.
var ErrPool = errors.New("failed to prepare worker pool")

// ScanAll scans independent sources concurrently, sharing the Tokenizer's registry.
//
// Results follow the order of sources. The returned error joins the errors of every failed
// Source; inspect the Results to tell them apart. Cancelling ctx stops the dispatch of pending
// sources, scans already started run to completion.
func (t *Tokenizer) ScanAll(ctx context.Context, sources ...Source) (results []Result, err error) {
	results = make([]Result, len(sources))
	if len(sources) < 1 {
		return
	}

	pool, err := ants.NewPool(t.cfg.Workers, ants.WithLogger(t.cfg.Logger))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrPool, err)
		return
	}
	defer pool.Release()

	done := make(chan struct{}, len(sources))
	errChan := make(chan error, len(sources))

	var dispatched int
	var dispatchErr error

dispatch:
	for index := range sources {
		select {
		case <-ctx.Done():
			dispatchErr = ctx.Err()
			break dispatch
		default:
		}

		src, resl := sources[index], &results[index]
		resl.Source = src.Name

		if err = pool.Submit(func() { t.scanSource(src, resl, done, errChan) }); err != nil {
			dispatchErr = fmt.Errorf("%w: %v", ErrPool, err)
			break dispatch
		}
		dispatched++

		t.cfg.Logger.Debugf("dispatched scan (%s)", src.Name)
	}

	for index := dispatched; index < len(sources); index++ {
		results[index] = Result{Source: sources[index].Name, Err: dispatchErr}
	}

	// Running scans aren't interruptible, wait for all of them regardless of ctx.
	err = nil
	if dispatched > 0 {
		err = types.Collect(context.Background(), dispatched, done, errChan)
	}
	if dispatchErr != nil {
		err = errors.Join(err, dispatchErr)
	}

	return
}

// scanSource performs a single ScanAll unit, signalling its completion on exactly one channel.
func (t *Tokenizer) scanSource(src Source, resl *Result, done chan<- struct{}, errChan chan<- error) {
	defer func() {
		if r := recover(); r != nil {
			resl.Tokens, resl.Err = nil, fmt.Errorf("%w (%s): %v", ErrPanicked, src.Name, r)
		}

		if resl.Err != nil {
			errChan <- resl.Err
			return
		}
		done <- struct{}{}
	}()

	resl.Tokens, resl.Err = t.Scan(src.Reader, src.Name)
}
