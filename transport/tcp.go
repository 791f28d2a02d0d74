package transport

import (
	"errors"
	"log"
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// acceptBackoff throttles the loop when Accept keeps failing, e.g. on file
// descriptors exhaustion.
const acceptBackoff = 5 * time.Millisecond

var ErrNotBound = errors.New("listener is not bound")

type TCP struct {
	l    net.Listener
	wg   *sync.WaitGroup
	stop *atomic.Bool
}

func NewTCP() *TCP {
	return &TCP{
		wg:   new(sync.WaitGroup),
		stop: new(atomic.Bool),
	}
}

func (t *TCP) Bind(addr string) (err error) {
	t.l, err = net.Listen("tcp", addr)
	return err
}

// Addr returns the address the listener is bound to, or nil if it isn't bound yet.
func (t *TCP) Addr() net.Addr {
	if t.l == nil {
		return nil
	}

	return t.l.Addr()
}

// Listen accepts connections until Stop is called. Every connection is passed to the
// callback in its own goroutine and closed after the callback returns. Accept errors
// are logged and never stop the loop.
func (t *TCP) Listen(cb func(conn net.Conn)) error {
	if t.l == nil {
		return ErrNotBound
	}

	for {
		conn, err := t.l.Accept()
		if err != nil {
			if t.stop.Load() {
				return nil
			}

			log.Printf("accept: %v", err)
			time.Sleep(acceptBackoff)
			continue
		}

		t.wg.Add(1)
		go func(conn net.Conn) {
			defer t.wg.Done()
			cb(conn)
			_ = conn.Close()
		}(conn)
	}
}

// Stop makes Listen return. Connections being served are not interrupted.
func (t *TCP) Stop() {
	t.stop.Store(true)
	t.Close()
}

func (t *TCP) Close() {
	if t.l != nil {
		_ = t.l.Close()
	}
}

// Wait blocks until all the connections are served.
func (t *TCP) Wait() {
	t.wg.Wait()
}
