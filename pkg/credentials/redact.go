package credentials

import (
	"net/http"

	"go.uber.org/zap/zapcore"
)

const mask = "[REDACTED]"

// String renders the credentials with the password masked, so values are
// safe to interpolate into log messages and errors.
func (c *Credentials) String() string {
	if _, ok := c.Password(); ok {
		return c.username + ":" + mask
	}

	return c.username
}

// MarshalLogObject renders the credentials into a zap log entry with the
// password masked.
func (c *Credentials) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("username", c.username)
	if _, ok := c.Password(); ok {
		enc.AddString("password", mask)
	}

	return nil
}

// RedactedHeaders returns a copy of h suitable for diagnostic rendering:
// Authorization values are masked, all other headers are copied as-is.
func RedactedHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))

	for name, values := range h {
		if http.CanonicalHeaderKey(name) == "Authorization" {
			masked := make([]string, len(values))
			for i := range masked {
				masked[i] = mask
			}
			out[name] = masked
			continue
		}

		out[name] = append([]string(nil), values...)
	}

	return out
}
