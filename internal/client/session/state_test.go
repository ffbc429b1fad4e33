package session

import (
	"testing"

	"github.com/dmitrijs2005/heritagewatch/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestState_ZeroValueIsUnauthenticated(t *testing.T) {
	var s State
	assert.Equal(t, Unauthenticated, s.Kind())
	assert.False(t, s.IsAuthenticated())
	_, ok := s.Session()
	assert.False(t, ok)
	assert.Equal(t, Anonymous(), s)
}

func TestState_LoggedInCarriesRecord(t *testing.T) {
	rec := models.Session{ID: "s", Token: "t", Email: "a@b.c"}
	s := LoggedIn(rec)

	assert.True(t, s.IsAuthenticated())
	got, ok := s.Session()
	assert.True(t, ok)
	assert.Equal(t, rec, got)
	assert.Equal(t, "authenticated", s.Kind().String())
	assert.Equal(t, "unauthenticated", Anonymous().Kind().String())
}
