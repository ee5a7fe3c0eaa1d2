/*
Package wordfeed produces the words of a text, one at a time.

A Feed reads its input in the background and hands out words on request; it
implements the pull protocol of package lazy and may be collected or inserted
into a tree word by word:

	feed, err := wordfeed.Open("moby-dick.txt")
	...
	defer feed.Close()
	tree := arbor.Empty(order.FoldCase())
	for w := range lazy.All[string](feed) {
	    tree.InsertIterative(w)
	}

Words are found at Unicode line-break opportunities (UAX#14), with
surrounding spaces and punctuation trimmed.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package wordfeed

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode"

	"github.com/guiguan/caster"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

// tracer writes to trace with key 'arbor'
func tracer() tracing.Trace {
	return tracing.Select("arbor")
}

// bufferedWords is the capacity of the subscription channel, i.e. how far
// the reader may run ahead of the consumer.
const bufferedWords = 256

// Feed is a producer of words. Loading happens asynchronously, but Next is
// meant to be called from a single goroutine.
type Feed struct {
	name   string
	cast   *caster.Caster     // broadcaster for words found by the loader
	sub    chan interface{}   // our subscription to cast
	cancel context.CancelFunc // stops the loader early
	closer io.Closer          // underlying file, if any
	loaded chan struct{}      // closed when the loader has returned
	mu     sync.Mutex         // guards err
	err    error              // remember last I/O error
	count  int                // words handed out so far
	done   bool
}

// Open opens a text file and starts feeding its words.
func Open(path string) (*Feed, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("wordfeed: %s is not a regular file", path)
	}
	file, err := os.Open(path) // just open for read access
	if err != nil {
		return nil, err
	}
	feed := start(path, file)
	feed.closer = file
	return feed, nil
}

// FromReader starts feeding the words read from r.
func FromReader(r io.Reader) *Feed {
	return start("<reader>", r)
}

func start(name string, r io.Reader) *Feed {
	ctx, cancel := context.WithCancel(context.Background())
	f := &Feed{
		name:   name,
		cast:   caster.New(ctx),
		cancel: cancel,
		loaded: make(chan struct{}),
	}
	// subscribe before the first word gets published
	sub, ok := f.cast.Sub(ctx, bufferedWords)
	if !ok {
		f.done = true
		cancel()
		close(f.loaded)
		return f
	}
	f.sub = sub
	go f.load(ctx, r)
	return f
}

// load runs in its own goroutine and publishes every word of r.
func (f *Feed) load(ctx context.Context, r io.Reader) {
	defer close(f.loaded)
	defer f.cast.Close()
	input := &errReader{r: r}
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	segmenter.Init(bufio.NewReader(input))
	n := 0
	for ctx.Err() == nil && segmenter.Next() {
		word := trimWord(string(segmenter.Bytes()))
		if word == "" {
			continue
		}
		if !f.cast.Pub(word) {
			tracer().Debugf("wordfeed %s: stopped after %d words", f.name, n)
			return
		}
		n++
	}
	if input.err != nil && ctx.Err() == nil { // read errors after Close are expected
		f.mu.Lock()
		f.err = fmt.Errorf("wordfeed %s: error loading text: %w", f.name, input.err)
		f.mu.Unlock()
	}
	tracer().Debugf("wordfeed %s: loaded %d words", f.name, n)
}

func trimWord(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Next returns the next word of the input. ok is false when the input is
// exhausted or the feed has been closed.
func (f *Feed) Next() (word string, ok bool) {
	if f == nil || f.done {
		return "", false
	}
	msg, ok := <-f.sub
	if !ok {
		f.done = true
		return "", false
	}
	f.count++
	return msg.(string), true
}

// Count returns the number of words handed out so far.
func (f *Feed) Count() int {
	return f.count
}

// Err returns the first I/O error encountered while loading, if any. It is
// meaningful after Next has reported exhaustion.
func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Close stops loading and releases the underlying file. Subsequent calls to
// Next report exhaustion. Close waits for the loader to return; for a reader
// blocking in Read this lasts until the Read returns.
func (f *Feed) Close() error {
	if f == nil {
		return nil
	}
	f.done = true
	f.cancel()
	// The broadcaster may be blocked delivering to a full subscription and
	// only notices the cancellation after the delivery. It closes sub when
	// it shuts down.
	if f.sub != nil {
		for range f.sub {
		}
	}
	<-f.loaded
	if f.closer != nil {
		err := f.closer.Close()
		f.closer = nil
		return err
	}
	return nil
}

// errReader remembers the first read error other than io.EOF, which the
// segmenter would otherwise swallow.
type errReader struct {
	r   io.Reader
	err error
}

func (er *errReader) Read(p []byte) (int, error) {
	n, err := er.r.Read(p)
	if err != nil && err != io.EOF && er.err == nil {
		er.err = err
	}
	return n, err
}
