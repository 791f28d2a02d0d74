package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	DefaultPort = 8080
	DefaultRoot = "./Pub"
	// Host is the only interface the server ever binds to.
	Host = "127.0.0.1"
)

var (
	ErrBadPort    = errors.New("invalid port")
	ErrRootNotDir = errors.New("document root is not a directory")
)

type NET struct {
	// ReadBufferSize is the size of the buffer a request is read into. A request is
	// read exactly once, so everything beyond the buffer is silently cut off.
	ReadBufferSize int
	// ReadTimeout limits how long a client may stay silent before being disconnected.
	ReadTimeout time.Duration
	// WriteTimeout limits how long writing a response may take.
	WriteTimeout time.Duration
	// WriteBufferSize is the size of the buffer the response head is accumulated in.
	// Bodies bigger than the buffer are written directly.
	WriteBufferSize int
}

// Config is built once at startup and must not be modified after the server started,
// as it's shared among all the connections without any synchronization.
type Config struct {
	// Port to listen at. 0 lets the system pick a free one.
	Port uint16
	// Root is the document root, a directory the files are served from.
	Root string
	NET  NET
}

// Default returns the default config. Only Port and Root are meant to be changed.
func Default() *Config {
	return &Config{
		Port: DefaultPort,
		Root: DefaultRoot,
		NET: NET{
			ReadBufferSize:  4096,
			ReadTimeout:     30 * time.Second,
			WriteTimeout:    30 * time.Second,
			WriteBufferSize: 4096,
		},
	}
}

// FromArgs builds the config out of positional arguments: an optional port followed
// by an optional document root. Missing arguments are taken from Default(), extra ones
// are ignored.
func FromArgs(args []string) (*Config, error) {
	cfg := Default()

	if len(args) > 0 {
		port, err := ParsePort(args[0])
		if err != nil {
			return nil, err
		}

		cfg.Port = port
	}

	if len(args) > 1 {
		cfg.Root = args[1]
	}

	return cfg, nil
}

// ParsePort parses a decimal port number in the range 0-65535.
func ParsePort(str string) (uint16, error) {
	port, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadPort, str)
	}

	return uint16(port), nil
}

// Validate checks whether the document root exists and is a directory.
func (c *Config) Validate() error {
	info, err := os.Stat(c.Root)
	if err != nil {
		return fmt.Errorf("document root: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrRootNotDir, c.Root)
	}

	return nil
}

// Addr returns the address to bind the listener to.
func (c *Config) Addr() string {
	return net.JoinHostPort(Host, strconv.Itoa(int(c.Port)))
}
