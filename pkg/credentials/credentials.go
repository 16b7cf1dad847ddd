package credentials

// Credentials is an immutable pair of an optional username and an optional
// password for HTTP Basic Authentication.
//
// An empty username is always normalized to absent, so callers can never
// observe a present-but-empty username. An empty password is a valid,
// distinct password and is kept as-is.
type Credentials struct {
	username string
	password *string
}

// User returns credentials with the given username and no password.
func User(username string) *Credentials {
	return &Credentials{username: username}
}

// UserPassword returns credentials with the given username and password.
// The password may be empty.
func UserPassword(username, password string) *Credentials {
	return &Credentials{username: username, password: &password}
}

// Username returns the username, or the empty string if absent.
func (c *Credentials) Username() string {
	return c.username
}

// Password returns the password and whether it is present.
func (c *Credentials) Password() (string, bool) {
	if c.password == nil {
		return "", false
	}

	return *c.password, true
}

// IsEmpty reports whether both the username and the password are absent.
func (c *Credentials) IsEmpty() bool {
	return c.username == "" && c.password == nil
}

// Equal reports whether two credentials hold the same username and password.
func (c *Credentials) Equal(other *Credentials) bool {
	if c == nil || other == nil {
		return c == other
	}

	password, ok := c.Password()
	otherPassword, otherOk := other.Password()

	return c.username == other.username && ok == otherOk && password == otherPassword
}
