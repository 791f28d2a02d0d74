package transport

import (
	"fmt"
	"net"
	"time"

	"github.com/Ghenzhiyiya/Just-A-Server/config"
)

type Client interface {
	Read() ([]byte, error)
	Write([]byte) (int, error)
	Remote() net.Addr
	Close() error
}

type client struct {
	conn net.Conn
	buff []byte
	cfg  config.NET
}

func NewClient(conn net.Conn, cfg config.NET) Client {
	return &client{
		conn: conn,
		buff: make([]byte, cfg.ReadBufferSize),
		cfg:  cfg,
	}
}

// Read does a single read into the internal buffer and returns the filled part of it.
// The returned slice is valid until the next call. A read deadline is set beforehand,
// failing to set it is reported as an error without reading anything.
func (c *client) Read() ([]byte, error) {
	if err := c.conn.SetReadDeadline(time.Now().Add(c.cfg.ReadTimeout)); err != nil {
		return nil, fmt.Errorf("set read deadline: %w", err)
	}

	n, err := c.conn.Read(c.buff)
	return c.buff[:n], err
}

// Write writes data into the underlying connection within the write timeout.
func (c *client) Write(b []byte) (int, error) {
	if err := c.conn.SetWriteDeadline(time.Now().Add(c.cfg.WriteTimeout)); err != nil {
		return 0, fmt.Errorf("set write deadline: %w", err)
	}

	return c.conn.Write(b)
}

// Remote returns the remote address of the connection.
func (c *client) Remote() net.Addr {
	return c.conn.RemoteAddr()
}

// Close closes the connection.
func (c *client) Close() error {
	return c.conn.Close()
}
