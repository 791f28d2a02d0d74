package render

import (
	"bufio"
	"io"
	"strconv"

	"github.com/Ghenzhiyiya/Just-A-Server/http/mime"
	"github.com/Ghenzhiyiya/Just-A-Server/http/status"
)

// Server is the value of the Server header attached to every response.
const Server = "Just-A-Server/1.0"

const (
	sp   = " "
	crlf = "\r\n"
)

// Renderer serializes responses into the underlying writer. Every response carries
// exactly the same set of headers in the same order: Content-Type, Content-Length,
// Connection and Server.
type Renderer struct {
	buff []byte
	w    *bufio.Writer
}

func NewRenderer(w io.Writer, buffSize int) *Renderer {
	return &Renderer{
		buff: make([]byte, 0, 128),
		w:    bufio.NewWriterSize(w, buffSize),
	}
}

// Write renders a complete response and flushes it. The body is written verbatim.
func (r *Renderer) Write(code status.Code, text status.Status, contentType mime.MIME, body []byte) error {
	buff := append(r.buff[:0], "HTTP/1.1"+sp...)
	buff = strconv.AppendUint(buff, uint64(code), 10)
	buff = append(append(append(buff, sp...), text...), crlf...)
	buff = append(append(append(buff, "Content-Type: "...), contentType...), crlf...)
	buff = append(strconv.AppendInt(append(buff, "Content-Length: "...), int64(len(body)), 10), crlf...)
	buff = append(buff, "Connection: close"+crlf...)
	buff = append(buff, "Server: "+Server+crlf...)
	buff = append(buff, crlf...)
	r.buff = buff

	if _, err := r.w.Write(buff); err != nil {
		return err
	}

	if _, err := r.w.Write(body); err != nil {
		return err
	}

	return r.w.Flush()
}

// Error renders a minimal HTML page describing the status code.
func (r *Renderer) Error(code status.Code) error {
	return r.Write(code, status.Text(code), mime.HTML, ErrorPage(code))
}

// ErrorPage returns the HTML body used by error responses.
func ErrorPage(code status.Code) []byte {
	page := append([]byte("<html><body><h1>"), strconv.Itoa(int(code))...)
	page = append(append(page, sp...), status.Text(code)...)

	return append(page, "</h1></body></html>"...)
}
