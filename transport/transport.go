package transport

import "net"

type Transport interface {
	Bind(addr string) error
	Addr() net.Addr
	Listen(cb func(conn net.Conn)) error
	Stop()
	Close()
	Wait()
}

var _ Transport = new(TCP)
