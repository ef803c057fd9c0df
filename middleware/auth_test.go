package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Adheeb11/PropVista/models"
	"github.com/Adheeb11/PropVista/utils"
)

func TestRequireSessionRedirectsAnonymous(t *testing.T) {
	sessions := utils.NewSessions("test-secret")
	handler := WithSession(sessions)(RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached without a session")
	})))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want redirect", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login?next=/dashboard" {
		t.Errorf("Location = %q", loc)
	}
}

func TestRequireSessionPassesUser(t *testing.T) {
	sessions := utils.NewSessions("test-secret")

	rec := httptest.NewRecorder()
	if err := sessions.Begin(rec, models.User{ID: 3, Name: "Asha"}); err != nil {
		t.Fatal(err)
	}
	cookies := rec.Result().Cookies()

	var seen *models.User
	handler := WithSession(sessions)(RequireSession(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = UserFrom(r.Context())
	})))

	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.ID != 3 {
		t.Errorf("session user = %+v", seen)
	}
}

func TestRequestIDAttached(t *testing.T) {
	var got string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestIDFrom(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got == "" {
		t.Error("no request id on context")
	}
	if rec.Header().Get("X-Request-ID") != got {
		t.Error("header and context ids differ")
	}
}

func TestRecoverTurnsPanicInto500(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}
}
