package web

const (
	HeaderContentType = "Content-Type"
	HeaderRequestID   = "X-Request-ID"
	MimeJSON          = "application/json"
	MimeYAML          = "application/yaml"
)
