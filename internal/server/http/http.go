package http

import (
	"errors"
	"io"
	"log"

	"github.com/Ghenzhiyiya/Just-A-Server/config"
	"github.com/Ghenzhiyiya/Just-A-Server/http"
	"github.com/Ghenzhiyiya/Just-A-Server/http/status"
	"github.com/Ghenzhiyiya/Just-A-Server/internal/fileserver"
	"github.com/Ghenzhiyiya/Just-A-Server/internal/parser/http1"
	"github.com/Ghenzhiyiya/Just-A-Server/internal/render"
	"github.com/Ghenzhiyiya/Just-A-Server/transport"
	"github.com/dchest/uniuri"
)

// idLength is the length of connection identifiers used in logs.
const idLength = 8

type Server struct {
	cfg *config.Config
}

func NewServer(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
	}
}

// Serve handles a single request and closes the connection.
func (s *Server) Serve(client transport.Client) {
	s.HandleRequest(client)
	_ = client.Close()
}

// HandleRequest reads a request from the client and responds to it. It returns
// eResponded if a response was written and eClosed if the connection must be dropped
// silently: the peer sent nothing, the read failed or timed out, or the response
// couldn't be written.
func (s *Server) HandleRequest(client transport.Client) connState {
	var (
		id       = uniuri.NewLen(idLength)
		renderer = render.NewRenderer(client, s.cfg.NET.WriteBufferSize)
		request  *http.Request
		file     fileserver.File
		err      error
	)

	for state := eReading; ; {
		switch state {
		case eReading:
			var data []byte
			data, err = client.Read()
			if len(data) == 0 {
				if err != nil && !errors.Is(err, io.EOF) {
					log.Printf("conn %s: %s: read: %v", id, client.Remote(), err)
				}

				return eClosed
			}

			request, err = http1.Parse(data)
			if err != nil {
				state = eParseFailed
			} else {
				state = eParsed
			}
		case eParsed:
			file, err = fileserver.Resolve(s.cfg.Root, request)
			if err != nil {
				state = eResolveFailed
			} else {
				state = eResolved
			}
		case eResolved:
			err = renderer.Write(status.OK, status.Text(status.OK), file.ContentType, file.Body)
			return s.responded(id, client, request, status.OK, err)
		case eParseFailed, eResolveFailed:
			code := status.CodeOf(err)
			if code == status.InternalServerError {
				log.Printf("conn %s: %v", id, err)
			}

			return s.responded(id, client, request, code, renderer.Error(code))
		}
	}
}

func (s *Server) responded(
	id string, client transport.Client, request *http.Request, code status.Code, err error,
) connState {
	line := "<malformed request>"
	if request != nil {
		line = request.Method + " " + request.Path
	}

	if err != nil {
		log.Printf("conn %s: %s: %s: write: %v", id, client.Remote(), line, err)
		return eClosed
	}

	log.Printf("conn %s: %s: %s -> %d", id, client.Remote(), line, code)

	return eResponded
}
