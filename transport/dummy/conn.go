package dummy

import (
	"io"
	"net"
	"time"
)

// Conn is a scripted net.Conn. Reads consume the input it was initialized with and
// report io.EOF once it's exhausted, writes are journaled into Data.
type Conn struct {
	Data                        []byte
	ReadDeadline, WriteDeadline time.Time
	input                       []byte
	readErr, writeErr           error
	deadlineErr                 error
	closed                      bool
}

func NewConn(input []byte) *Conn {
	return &Conn{input: input}
}

// ReadError makes every read fail with the error.
func (c *Conn) ReadError(err error) *Conn {
	c.readErr = err
	return c
}

// WriteError makes every write fail with the error.
func (c *Conn) WriteError(err error) *Conn {
	c.writeErr = err
	return c
}

// DeadlineError makes setting any deadline fail with the error.
func (c *Conn) DeadlineError(err error) *Conn {
	c.deadlineErr = err
	return c
}

func (c *Conn) Read(b []byte) (n int, err error) {
	if c.readErr != nil {
		return 0, c.readErr
	}

	if len(c.input) == 0 {
		return 0, io.EOF
	}

	n = copy(b, c.input)
	c.input = c.input[n:]

	return n, nil
}

func (c *Conn) Write(b []byte) (n int, err error) {
	if c.writeErr != nil {
		return 0, c.writeErr
	}

	c.Data = append(c.Data, b...)

	return len(b), nil
}

func (c *Conn) Close() error {
	c.closed = true
	return nil
}

func (c *Conn) Closed() bool {
	return c.closed
}

func (c *Conn) LocalAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}
}

func (c *Conn) RemoteAddr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 54321}
}

func (c *Conn) SetDeadline(t time.Time) error {
	if err := c.SetReadDeadline(t); err != nil {
		return err
	}

	return c.SetWriteDeadline(t)
}

func (c *Conn) SetReadDeadline(t time.Time) error {
	if c.deadlineErr != nil {
		return c.deadlineErr
	}

	c.ReadDeadline = t

	return nil
}

func (c *Conn) SetWriteDeadline(t time.Time) error {
	if c.deadlineErr != nil {
		return c.deadlineErr
	}

	c.WriteDeadline = t

	return nil
}
