package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSessions struct {
	user string
	ok   bool
}

func (f *fakeSessions) Get(*http.Request) (string, bool) {
	return f.user, f.ok
}

func protectedHandler() (http.Handler, *bool) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return next, &called
}

func TestAdminAuth_ValidSession(t *testing.T) {
	next, called := protectedHandler()
	mw := AdminAuth(&fakeSessions{user: "admin", ok: true}, "admin", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestAdminAuth_ValidBasicAuth(t *testing.T) {
	next, called := protectedHandler()
	mw := AdminAuth(&fakeSessions{}, "admin", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.SetBasicAuth("admin", "secret")
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestAdminAuth_WrongBasicCredentials(t *testing.T) {
	next, called := protectedHandler()
	mw := AdminAuth(&fakeSessions{}, "admin", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.SetBasicAuth("admin", "wrong")
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, `Basic realm="RIZZA Admin"`, rec.Header().Get("WWW-Authenticate"))
	assert.False(t, *called)
}

func TestAdminAuth_NoCredentials(t *testing.T) {
	next, called := protectedHandler()
	mw := AdminAuth(&fakeSessions{}, "admin", "secret")

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	rec := httptest.NewRecorder()

	mw(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}
