package status

type (
	Code   uint16
	Status string
)

// Codes the server is able to respond with.
const (
	OK Code = 200 // RFC 9110, 15.3.1

	BadRequest       Code = 400 // RFC 9110, 15.5.1
	NotFound         Code = 404 // RFC 9110, 15.5.5
	MethodNotAllowed Code = 405 // RFC 9110, 15.5.6

	InternalServerError Code = 500 // RFC 9110, 15.6.1
)

// Text returns a reason phrase for the HTTP status code. Unknown codes result in
// "Unknown Status Code".
func Text(code Code) Status {
	switch code {
	case OK:
		return "OK"
	case BadRequest:
		return "Bad Request"
	case NotFound:
		return "Not Found"
	case MethodNotAllowed:
		return "Method Not Allowed"
	case InternalServerError:
		return "Internal Server Error"
	default:
		return "Unknown Status Code"
	}
}
