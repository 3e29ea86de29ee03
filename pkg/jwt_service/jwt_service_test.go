package jwtservice

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/fitrack/internal/error_values"
	"github.com/limbo/fitrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	s := New("secret", time.Hour)
	user := &entity.User{ID: uuid.New(), Name: "runner"}

	token, err := s.GenerateToken(user)
	require.NoError(t, err)
	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	uid, err := claims.UID()
	require.NoError(t, err)
	assert.Equal(t, user.ID, uid)
	assert.Equal(t, "runner", claims.Username)
}

func TestParseTokenErrors(t *testing.T) {
	s := New("secret", time.Hour)
	user := &entity.User{ID: uuid.New(), Name: "runner"}

	t.Run("other secret", func(t *testing.T) {
		token, err := New("another", time.Hour).GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("expired", func(t *testing.T) {
		old := New("secret", time.Minute)
		old.now = func() time.Time { return time.Now().Add(-time.Hour) }
		token, err := old.GenerateToken(user)
		require.NoError(t, err)
		_, err = s.ParseToken(token)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("garbage", func(t *testing.T) {
		_, err := s.ParseToken("not.a.token")
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("wrong algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS512, &Claims{UserID: user.ID.String()})
		signed, err := token.SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = s.ParseToken(signed)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
	t.Run("bad uid claim", func(t *testing.T) {
		c := &Claims{UserID: "nope"}
		_, err := c.UID()
		assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
	})
}
