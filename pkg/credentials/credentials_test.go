package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserNormalizesEmptyUsername(t *testing.T) {
	c := User("")

	assert.Equal(t, "", c.Username())
	assert.True(t, c.IsEmpty())
}

func TestUserPasswordNormalizesEmptyUsername(t *testing.T) {
	c := UserPassword("", "secret")

	assert.Equal(t, "", c.Username())

	password, ok := c.Password()
	assert.True(t, ok)
	assert.Equal(t, "secret", password)
	assert.False(t, c.IsEmpty())
}

func TestEmptyPasswordIsPresent(t *testing.T) {
	c := UserPassword("user", "")

	password, ok := c.Password()
	assert.True(t, ok)
	assert.Equal(t, "", password)
	assert.False(t, c.IsEmpty())
}

func TestEqual(t *testing.T) {
	assert.True(t, UserPassword("user", "pass").Equal(UserPassword("user", "pass")))
	assert.True(t, User("user").Equal(User("user")))

	// An absent password is not the same as an empty one.
	assert.False(t, User("user").Equal(UserPassword("user", "")))
	assert.False(t, UserPassword("user", "a").Equal(UserPassword("user", "b")))
	assert.False(t, User("user").Equal(nil))
}
