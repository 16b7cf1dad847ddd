package credentials

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/credcat-ai/credcat/pkg/netrc"
)

const basicPrefix = "Basic "

// ErrMalformedHeader reports an Authorization header that carries the Basic
// scheme but violates the HTTP Basic Authentication contract. It is distinct
// from the nil result returned for headers of other schemes.
var ErrMalformedHeader = errors.New("malformed basic authorization header")

// FromNetrc returns credentials for u from a parsed netrc table.
//
// The table is consulted by exact host name first, then by the "default"
// entry. If login is non-empty it must match the entry's login or nil is
// returned, even when a default entry exists.
func FromNetrc(table netrc.Netrc, u *url.URL, login string) *Credentials {
	if u == nil {
		return nil
	}

	host := u.Hostname()
	if host == "" {
		return nil
	}

	machine, ok := table.Machine(host)
	if !ok {
		return nil
	}

	if login != "" && login != machine.Login {
		return nil
	}

	return UserPassword(machine.Login, machine.Password)
}

// FromURL returns the credentials embedded in the URL's userinfo, or nil if
// the URL carries neither a username nor a password. Percent-encoding has
// already been removed by the URL parser.
func FromURL(u *url.URL) *Credentials {
	if u == nil || u.User == nil {
		return nil
	}

	user := u.User

	password, hasPassword := user.Password()
	if user.Username() == "" && !hasPassword {
		return nil
	}

	if !hasPassword {
		return User(user.Username())
	}

	return UserPassword(user.Username(), password)
}

// FromRequest extracts credentials from an outgoing request. Credentials
// embedded in the request URL take priority over the Authorization header.
//
// Only HTTP Basic Authentication is recognized.
func FromRequest(r *http.Request) (*Credentials, error) {
	if r.URL != nil {
		if c := FromURL(r.URL); c != nil {
			return c, nil
		}
	}

	return FromHeaderValue(r.Header.Get("Authorization"))
}

// FromHeaderValue parses an Authorization header value.
//
// Headers of any scheme other than Basic yield (nil, nil): that is an
// expected "no credentials" outcome, not an error. A Basic header whose
// payload is not valid base64 or lacks the ':' separator is a protocol
// violation and yields an error wrapping ErrMalformedHeader.
//
// An empty username or password substring after the split is treated as
// absent. This differs from FromURL and FromNetrc, which keep an
// empty-but-present password.
func FromHeaderValue(value string) (*Credentials, error) {
	payload, ok := strings.CutPrefix(value, basicPrefix)
	if !ok {
		return nil, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	username, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return nil, fmt.Errorf("%w: missing ':' separator", ErrMalformedHeader)
	}

	if password == "" {
		return User(username), nil
	}

	return UserPassword(username, password), nil
}
