// Package input reads user input line by line without blocking context
// cancellation.
package input

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// Reader delivers trimmed lines from an io.Reader. A background goroutine
// performs the blocking reads so ReadLine can return as soon as its context
// is cancelled.
type Reader struct {
	lines chan string
	done  chan struct{}
	once  sync.Once

	mu  sync.Mutex
	err error
}

// NewReader starts reading from r.
func NewReader(r io.Reader) *Reader {
	rd := &Reader{
		lines: make(chan string),
		done:  make(chan struct{}),
	}
	go rd.pump(bufio.NewReader(r))
	return rd
}

func (r *Reader) pump(br *bufio.Reader) {
	defer close(r.lines)
	for {
		s, err := br.ReadString('\n')
		if s != "" || err == nil {
			select {
			case r.lines <- s:
			case <-r.done:
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				r.mu.Lock()
				r.err = err
				r.mu.Unlock()
			}
			return
		}
	}
}

// ReadLine returns the next line with surrounding whitespace trimmed.
// ok is false once input is exhausted, unreadable, or ctx is done.
// A final line without a trailing newline is still returned.
func (r *Reader) ReadLine(ctx context.Context) (line string, ok bool) {
	select {
	case <-ctx.Done():
		return "", false
	case s, open := <-r.lines:
		if !open {
			return "", false
		}
		return strings.TrimSpace(s), true
	}
}

// Err returns the read error that ended input, if it was not io.EOF.
func (r *Reader) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Close stops the background reader once its pending read returns.
func (r *Reader) Close() {
	r.once.Do(func() { close(r.done) })
}
