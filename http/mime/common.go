package mime

type MIME = string

const (
	OctetStream MIME = "application/octet-stream"
	Plain       MIME = "text/plain"
	HTML        MIME = "text/html"
	CSS         MIME = "text/css"
	JS          MIME = "application/javascript"
	JSON        MIME = "application/json"
	XML         MIME = "application/xml"
	PDF         MIME = "application/pdf"
	PNG         MIME = "image/png"
	JPEG        MIME = "image/jpeg"
	GIF         MIME = "image/gif"
	SVG         MIME = "image/svg+xml"
	ICO         MIME = "image/x-icon"
)
