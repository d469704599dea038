package cookies

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/err0r500/go-ldp-server/domain"
)

// Name of the session cookie
const Name = "Session"

// Sessions resolves the session of a request from its signed cookie
type Sessions struct {
	cookie *securecookie.SecureCookie
	age    int64
}

// New builds a resolver. A missing hash key is replaced by a random one,
// so cookies do not survive a restart. The block key is optional and
// enables encryption.
func New(hashKey, blockKey []byte, age int64) Sessions {
	if len(hashKey) == 0 {
		hashKey = securecookie.GenerateRandomKey(32)
	}
	if len(blockKey) == 0 {
		blockKey = nil
	}
	cookie := securecookie.New(hashKey, blockKey)
	if age > 0 {
		cookie.MaxAge(int(time.Duration(age) * time.Hour / time.Second))
	}
	return Sessions{cookie: cookie, age: age}
}

func (c Sessions) Encode(name string, value interface{}) (string, error) {
	return c.cookie.Encode(name, value)
}

func (c Sessions) Decode(name, value string, dst interface{}) error {
	return c.cookie.Decode(name, value, dst)
}

// Session returns the agent of the request cookie, or the anonymous session
// when there is no valid cookie
func (c Sessions) Session(r *http.Request) *domain.Session {
	cookie, err := r.Cookie(Name)
	if err != nil {
		return domain.AnonymousSession()
	}
	values := map[string]string{}
	if err := c.Decode(Name, cookie.Value, &values); err != nil || len(values["user"]) == 0 {
		return domain.AnonymousSession()
	}
	s := domain.NewSession(values["user"])
	s.Delegatee = values["delegatee"]
	return s
}

// Value encodes the cookie value of a session for user
func (c Sessions) Value(user string) (string, error) {
	return c.Encode(Name, map[string]string{"user": user})
}

func (c Sessions) SetSessionCookie(w http.ResponseWriter, user string) error {
	encoded, err := c.Value(user)
	if err != nil {
		return err
	}

	cookieCfg := &http.Cookie{
		Expires:  time.Now().Add(time.Duration(c.age) * time.Hour),
		Name:     Name,
		Path:     "/",
		Value:    encoded,
		Secure:   true,
		HttpOnly: true,
	}

	http.SetCookie(w, cookieCfg)

	return nil
}

func (c Sessions) DelSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:   Name,
		Value:  "deleted",
		Path:   "/",
		MaxAge: -1,
	})
}
