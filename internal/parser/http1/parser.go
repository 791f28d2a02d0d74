package http1

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Ghenzhiyiya/Just-A-Server/http"
	"github.com/Ghenzhiyiya/Just-A-Server/http/headers"
	"github.com/Ghenzhiyiya/Just-A-Server/http/status"
	"github.com/indigo-web/utils/uf"
)

var (
	ErrEmptyRequest   = fmt.Errorf("%w: empty request", status.ErrBadRequest)
	ErrBadRequestLine = fmt.Errorf("%w: malformed request line", status.ErrBadRequest)
)

// Parse builds a request out of a raw request head. Invalid UTF-8 is replaced by U+FFFD
// instead of being rejected, see decode. Parsing stops at the first line that is empty or
// consists of whitespace only, so the body, if any, is left untouched.
//
// The request may reference the data directly, therefore data must not be modified
// as long as the request is in use.
func Parse(data []byte) (*http.Request, error) {
	text := decode(data)
	if len(text) == 0 {
		return nil, ErrEmptyRequest
	}

	requestLine, rest, _ := cutLine(text)
	tokens := strings.Fields(requestLine)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("%w: want 3 tokens, got %d", ErrBadRequestLine, len(tokens))
	}

	hdrs := headers.New()

	for len(rest) > 0 {
		var line string
		line, rest, _ = cutLine(rest)
		if len(strings.TrimSpace(line)) == 0 {
			break
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}

		hdrs.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}

	return http.NewRequest(tokens[0], tokens[1], tokens[2], hdrs), nil
}

// cutLine returns the line before the first LF with a single trailing CR removed.
func cutLine(text string) (line, rest string, found bool) {
	line, rest, found = strings.Cut(text, "\n")
	return strings.TrimSuffix(line, "\r"), rest, found
}

// decode returns data as a string, replacing every maximal ill-formed subsequence with
// a single U+FFFD. Valid input is returned without copying.
func decode(data []byte) string {
	if utf8.Valid(data) {
		return uf.B2S(data)
	}

	var sb strings.Builder
	sb.Grow(len(data) + 8)

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			size = invalidPrefix(data)
			sb.WriteRune(utf8.RuneError)
		} else {
			sb.Write(data[:size])
		}

		data = data[size:]
	}

	return sb.String()
}

// invalidPrefix returns the length of the ill-formed sequence data starts with: the lead
// byte plus as many continuation bytes as could still belong to a valid sequence.
func invalidPrefix(data []byte) int {
	var (
		length    int
		low, high byte = 0x80, 0xBF
	)

	switch b := data[0]; {
	case b >= 0xC2 && b <= 0xDF:
		length = 2
	case b == 0xE0:
		length, low = 3, 0xA0
	case b == 0xED:
		length, high = 3, 0x9F
	case b >= 0xE1 && b <= 0xEF:
		length = 3
	case b == 0xF0:
		length, low = 4, 0x90
	case b == 0xF4:
		length, high = 4, 0x8F
	case b >= 0xF1 && b <= 0xF3:
		length = 4
	default:
		return 1
	}

	n := 1
	for ; n < length && n < len(data); n++ {
		if data[n] < low || data[n] > high {
			break
		}

		low, high = 0x80, 0xBF
	}

	return n
}
