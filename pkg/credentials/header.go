package credentials

import (
	"encoding/base64"
	"net/http"
)

// HeaderValue builds the Authorization header value for the credentials:
// the literal "Basic " prefix followed by base64("<username>:<password>"),
// with absent fields encoded as empty strings.
//
// The returned string embeds the password in recoverable form; keep it out
// of diagnostic output (see RedactedHeaders).
func (c *Credentials) HeaderValue() string {
	password, _ := c.Password()

	return basicPrefix + base64.StdEncoding.EncodeToString(
		[]byte(c.username+":"+password),
	)
}

// Authenticate sets the request's Authorization header to the credentials'
// header value, replacing any previous value.
func (c *Credentials) Authenticate(r *http.Request) {
	r.Header.Set("Authorization", c.HeaderValue())
}
