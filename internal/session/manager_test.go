package session

import (
	"testing"
	"time"

	"homepage/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-session-secret-at-least-32-chars"

func TestIssueAndVerify(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	user := &models.User{ID: 42, Username: "admin"}

	token, err := m.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
}

func TestVerify_TamperedToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	token, err := m.Issue(&models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = m.Verify(tampered)
	assert.Error(t, err, "a tampered token must read as no session")
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewManager(testSecret, time.Hour)
	verifier := NewManager("another-secret-entirely-32-chars-xx", time.Hour)

	token, err := issuer.Issue(&models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	m.ttl = -time.Minute

	token, err := m.Issue(&models.User{ID: 1, Username: "admin"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Verify(token)
		assert.Error(t, err, "token %q should not verify", token)
	}
}

func TestIssue_NoSecret(t *testing.T) {
	m := NewManager("", time.Hour)
	_, err := m.Issue(&models.User{ID: 1, Username: "admin"})
	assert.Error(t, err)
}

func TestCookies(t *testing.T) {
	m := NewManager(testSecret, time.Hour)

	cookie := m.Cookie("sometoken")
	assert.Equal(t, CookieName, cookie.Name)
	assert.Equal(t, "sometoken", cookie.Value)
	assert.True(t, cookie.HTTPOnly)
	assert.True(t, cookie.Expires.After(time.Now()))

	cleared := m.ClearCookie()
	assert.Equal(t, CookieName, cleared.Name)
	assert.Empty(t, cleared.Value)
	assert.True(t, cleared.Expires.Before(time.Now()))
}

func TestIssuedTokensAreUnique(t *testing.T) {
	m := NewManager(testSecret, time.Hour)
	user := &models.User{ID: 7, Username: "bob"}

	first, err := m.Issue(user)
	require.NoError(t, err)
	second, err := m.Issue(user)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "jti should make every token distinct")
}
