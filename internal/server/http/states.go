package http

// connState enumerates the stages a connection walks through. There's no way back to
// eReading: a connection serves exactly one request.
type connState uint8

const (
	eReading connState = iota + 1
	eParsed
	eParseFailed
	eResolved
	eResolveFailed
	eResponded
	eClosed
)

func (c connState) String() string {
	switch c {
	case eReading:
		return "reading"
	case eParsed:
		return "parsed"
	case eParseFailed:
		return "parse failed"
	case eResolved:
		return "resolved"
	case eResolveFailed:
		return "resolve failed"
	case eResponded:
		return "responded"
	case eClosed:
		return "closed"
	default:
		return "unknown"
	}
}
