package headers

import "strings"

// Headers maps lower-cased header names onto their values. Every name holds exactly
// one value: setting a name again overrides the previous value.
type Headers map[string]string

func New() Headers {
	return make(Headers)
}

// Set stores the value under the lower-cased key.
func (h Headers) Set(key, value string) Headers {
	h[strings.ToLower(key)] = value
	return h
}
