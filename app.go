package justaserver

import (
	"net"

	"github.com/Ghenzhiyiya/Just-A-Server/config"
	"github.com/Ghenzhiyiya/Just-A-Server/internal/server/http"
	"github.com/Ghenzhiyiya/Just-A-Server/transport"
)

// App is a static files server. The config it's constructed with is shared among all
// the connections and therefore must not be modified afterwards.
type App struct {
	cfg        *config.Config
	hooks      hooks
	tcp        *transport.TCP
	supervisor transport.Supervisor
	bound      bool
}

// New returns a new App instance.
func New(cfg *config.Config) *App {
	return &App{
		cfg:        cfg,
		tcp:        transport.NewTCP(),
		supervisor: transport.NewSupervisor(),
	}
}

// NotifyOnStart calls the callback once the listener is bound, right before the
// connections start being accepted.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback once the server is down and all the connections
// are served.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Bind binds the listener to the loopback interface. It's called by Serve implicitly,
// but might be useful to learn the actual address in advance when the port is 0.
func (a *App) Bind() error {
	if a.bound {
		return nil
	}

	server := http.NewServer(a.cfg)
	err := a.supervisor.Add(a.cfg.Addr(), a.tcp, func(conn net.Conn) {
		server.Serve(transport.NewClient(conn, a.cfg.NET))
	})
	if err != nil {
		return err
	}

	a.bound = true

	return nil
}

// Addr returns the address the server listens at, or nil if it isn't bound yet.
func (a *App) Addr() net.Addr {
	return a.tcp.Addr()
}

// Serve starts accepting connections and blocks until Stop is called.
func (a *App) Serve() error {
	if err := a.Bind(); err != nil {
		return err
	}

	callIfNotNil(a.hooks.OnStart)
	err := a.supervisor.Run()
	callIfNotNil(a.hooks.OnStop)

	return err
}

// Stop stops accepting new connections and waits until the current ones are served.
// It must be called only while Serve is running.
func (a *App) Stop() {
	a.supervisor.Stop()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
