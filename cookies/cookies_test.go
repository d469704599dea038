package cookies_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/err0r500/go-ldp-server/constant"
	"github.com/err0r500/go-ldp-server/cookies"
)

var hashKey = []byte("0123456789abcdef0123456789abcdef")

func TestSessionFromCookie(t *testing.T) {
	c := cookies.New(hashKey, nil, 1)

	rec := httptest.NewRecorder()
	require.NoError(t, c.SetSessionCookie(rec, "https://alice.example.org/#me"))
	resp := rec.Result()
	require.Len(t, resp.Cookies(), 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(resp.Cookies()[0])
	assert.Equal(t, "https://alice.example.org/#me", c.Session(req).Agent)
}

func TestAnonymous(t *testing.T) {
	c := cookies.New(hashKey, nil, 1)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Equal(t, constant.GoldAnonymousAgent, c.Session(req).Agent)

	req.AddCookie(&http.Cookie{Name: cookies.Name, Value: "forged"})
	assert.Equal(t, constant.GoldAnonymousAgent, c.Session(req).Agent)

	other := cookies.New([]byte("fedcba9876543210fedcba9876543210"), nil, 1)
	value, err := other.Value("https://mallory.example.org/#me")
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookies.Name, Value: value})
	assert.Equal(t, constant.GoldAnonymousAgent, c.Session(req).Agent)
}

func TestDelSessionCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	cookies.New(hashKey, nil, 1).DelSessionCookie(rec)
	require.Len(t, rec.Result().Cookies(), 1)
	assert.Equal(t, -1, rec.Result().Cookies()[0].MaxAge)
}
