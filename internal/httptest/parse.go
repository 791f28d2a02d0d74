package httptest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/utils/strcomp"
)

type Header struct {
	Key, Value string
}

type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers []Header
	Body    string
}

// Value returns the first value of the header, looked up case-insensitively.
func (r Response) Value(key string) string {
	for _, header := range r.Headers {
		if strcomp.EqualFold(header.Key, key) {
			return header.Value
		}
	}

	return ""
}

// Keys returns header keys in order of their appearance.
func (r Response) Keys() []string {
	keys := make([]string, len(r.Headers))
	for i, header := range r.Headers {
		keys[i] = header.Key
	}

	return keys
}

// Parse parses a whole response. The body must be exactly as long as the Content-Length
// header states.
func Parse(raw string) (response Response, err error) {
	var found bool

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking status text")
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: only status line is presented")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %q: no breaking CRLF", headerLine)
		}

		if len(headerLine) == 0 {
			break
		}

		key, value, err := parseHeaderLine(headerLine)
		if err != nil {
			return response, err
		}

		response.Headers = append(response.Headers, Header{Key: key, Value: value})
	}

	response.Body, err = processBody(response, raw)

	return response, err
}

func parseHeaderLine(line string) (key, value string, err error) {
	var found bool
	key, value, found = strings.Cut(line, ": ")
	if !found {
		return "", "", fmt.Errorf("bad header %s: no value", line)
	}

	if len(value) == 0 {
		return "", "", fmt.Errorf("bad header %s: empty value", key)
	}

	return key, value, nil
}

func processBody(response Response, data string) (string, error) {
	length, err := strconv.Atoi(response.Value("content-length"))
	if err != nil {
		return "", fmt.Errorf("bad content-length: %w", err)
	}

	if len(data) != length {
		return "", fmt.Errorf("content-length is %d, but got %d bytes of body", length, len(data))
	}

	return data, nil
}
