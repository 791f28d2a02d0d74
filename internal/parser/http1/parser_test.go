package http1

import (
	"testing"

	"github.com/Ghenzhiyiya/Just-A-Server/http/status"
	"github.com/stretchr/testify/require"
)

var (
	simpleGET       = []byte("GET / HTTP/1.1\r\n\r\n")
	biggerGET       = []byte("GET /index.html HTTP/1.1\r\nHost: x\r\nHello: World!\r\n\r\n")
	biggerGETOnlyLF = []byte("GET / HTTP/1.1\nHello: World!\n\n")
	somePOST        = []byte("POST /form HTTP/1.1\r\nContent-Length: 13\r\n\r\nHello, World!")
	multipleHeaders = []byte("GET / HTTP/1.1\r\nAccept: one,two\r\nAccept: three\r\n\r\n")
)

func requireBadRequest(t *testing.T, data []byte) {
	req, err := Parse(data)
	require.Error(t, err)
	require.Nil(t, req)
	require.Equal(t, status.BadRequest, status.CodeOf(err))
}

func TestRequestLine(t *testing.T) {
	t.Run("simple GET", func(t *testing.T) {
		req, err := Parse(simpleGET)
		require.NoError(t, err)
		require.Equal(t, "GET", req.Method)
		require.Equal(t, "/", req.Path)
		require.Equal(t, "HTTP/1.1", req.Version)
		require.Empty(t, req.Headers)
	})

	t.Run("tokens are case-preserved", func(t *testing.T) {
		req, err := Parse([]byte("gEt /Some/PATH.Html http/1.0\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "gEt", req.Method)
		require.Equal(t, "/Some/PATH.Html", req.Path)
		require.Equal(t, "http/1.0", req.Version)
	})

	t.Run("arbitrary whitespace between tokens", func(t *testing.T) {
		req, err := Parse([]byte("GET \t /a   HTTP/1.1  \r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "GET", req.Method)
		require.Equal(t, "/a", req.Path)
		require.Equal(t, "HTTP/1.1", req.Version)
	})

	t.Run("path is not normalized", func(t *testing.T) {
		req, err := Parse([]byte("GET /../etc/passwd%20x?q=1 HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "/../etc/passwd%20x?q=1", req.Path)
	})

	t.Run("no line break at all", func(t *testing.T) {
		req, err := Parse([]byte("GET / HTTP/1.1"))
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1", req.Version)
	})

	t.Run("wrong number of tokens", func(t *testing.T) {
		for _, raw := range []string{
			"garbage\r\n\r\n",
			"GET /\r\n\r\n",
			"GET / HTTP/1.1 extra\r\n\r\n",
			"GET /with space HTTP/1.1\r\n\r\n",
			"\r\nGET / HTTP/1.1\r\n\r\n",
			"   \r\n",
		} {
			requireBadRequest(t, []byte(raw))
		}
	})

	t.Run("empty input", func(t *testing.T) {
		requireBadRequest(t, nil)
		requireBadRequest(t, []byte{})
	})
}

func TestHeaders(t *testing.T) {
	t.Run("names are lower-cased and values trimmed", func(t *testing.T) {
		req, err := Parse(biggerGET)
		require.NoError(t, err)
		require.Len(t, req.Headers, 2)
		require.Equal(t, "x", req.Headers["host"])
		require.Equal(t, "World!", req.Headers["hello"])
	})

	t.Run("LF only", func(t *testing.T) {
		req, err := Parse(biggerGETOnlyLF)
		require.NoError(t, err)
		require.Equal(t, "World!", req.Headers["hello"])
	})

	t.Run("last wins", func(t *testing.T) {
		req, err := Parse(multipleHeaders)
		require.NoError(t, err)
		require.Len(t, req.Headers, 1)
		require.Equal(t, "three", req.Headers["accept"])
	})

	t.Run("split at the first colon", func(t *testing.T) {
		req, err := Parse([]byte("GET / HTTP/1.1\r\n  Host :  localhost:8080  \r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "localhost:8080", req.Headers["host"])
	})

	t.Run("lines without colon are skipped", func(t *testing.T) {
		req, err := Parse([]byte("GET / HTTP/1.1\r\nnocolon\r\nA: b\r\n\r\n"))
		require.NoError(t, err)
		require.Len(t, req.Headers, 1)
		require.Equal(t, "b", req.Headers["a"])
	})

	t.Run("stops at the empty line", func(t *testing.T) {
		req, err := Parse(somePOST)
		require.NoError(t, err)
		require.Equal(t, "POST", req.Method)
		require.Len(t, req.Headers, 1)
		require.Equal(t, "13", req.Headers["content-length"])

		req, err = Parse([]byte("GET / HTTP/1.1\r\nA: 1\r\n\r\nB: 2\r\n"))
		require.NoError(t, err)
		require.NotContains(t, req.Headers, "b")
		require.NotContains(t, req.Headers, "")
	})

	t.Run("stops at a whitespace-only line", func(t *testing.T) {
		for _, raw := range []string{
			"GET / HTTP/1.1\r\nA: 1\r\n   \r\nB: 2\r\n\r\n",
			"GET / HTTP/1.1\r\nA: 1\r\n\t\r\nB: 2\r\n\r\n",
			"GET / HTTP/1.1\nA: 1\n \nB: 2\n\n",
		} {
			req, err := Parse([]byte(raw))
			require.NoError(t, err)
			require.Equal(t, "1", req.Headers["a"], raw)
			require.NotContains(t, req.Headers, "b", raw)
		}
	})

	t.Run("headers up to the end of input", func(t *testing.T) {
		req, err := Parse([]byte("GET / HTTP/1.1\r\nA: 1\r\nB: 2"))
		require.NoError(t, err)
		require.Equal(t, "1", req.Headers["a"])
		require.Equal(t, "2", req.Headers["b"])
	})
}

func TestLenientDecoding(t *testing.T) {
	t.Run("valid input is untouched", func(t *testing.T) {
		require.Equal(t, "GET /caf\u00e9 HTTP/1.1", decode([]byte("GET /caf\xc3\xa9 HTTP/1.1")))
		require.Equal(t, "\uFFFD", decode([]byte("\xef\xbf\xbd")))
	})

	t.Run("invalid bytes in the path", func(t *testing.T) {
		req, err := Parse([]byte("GET /caf\xe9 HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "/caf\uFFFD", req.Path)
	})

	t.Run("one replacement per invalid byte", func(t *testing.T) {
		req, err := Parse([]byte("GET /a\xff\xfeb HTTP/1.1\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "/a\uFFFD\uFFFDb", req.Path)
	})

	t.Run("invalid bytes in a header value", func(t *testing.T) {
		req, err := Parse([]byte("GET / HTTP/1.1\r\nX-Bin: \xff\xfe\r\n\r\n"))
		require.NoError(t, err)
		require.Equal(t, "\uFFFD\uFFFD", req.Headers["x-bin"])
	})

	t.Run("truncated sequences", func(t *testing.T) {
		tcs := map[string]string{
			"a\xe2\x82b":       "a\uFFFDb",
			"a\xf0\x9f\x98":    "a\uFFFD",
			"\xe0\x80":         "\uFFFD\uFFFD",
			"\xed\xa0\x80":     "\uFFFD\uFFFD\uFFFD",
			"\xf4\x90":         "\uFFFD\uFFFD",
			"\xc0\xaf":         "\uFFFD\uFFFD",
			"\xe2\x82\xac\xe2": "\u20ac\uFFFD",
		}

		for in, want := range tcs {
			require.Equal(t, want, decode([]byte(in)), "%q", in)
		}
	})

	t.Run("binary garbage", func(t *testing.T) {
		requireBadRequest(t, []byte{0xff, 0xfe, 0xfd, '\r', '\n', '\r', '\n'})
	})
}
