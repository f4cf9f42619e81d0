package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/recetario/recetario-go/internal/crypto"
)

const testSecret = "test-secret"

func authedRequest(token string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/recipes", nil)
	if token != "" {
		r.Header.Set("Authorization", token)
	}
	return r
}

func runJWTAuth(t *testing.T, r *http.Request) (*httptest.ResponseRecorder, bool, int64) {
	t.Helper()

	var reached bool
	var gotUserID int64
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		gotUserID, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	JWTAuth(testSecret)(next).ServeHTTP(rec, r)
	return rec, reached, gotUserID
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	rec, reached, _ := runJWTAuth(t, authedRequest(""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("downstream handler must not run without a token")
	}
}

func TestJWTAuth_BadFormat(t *testing.T) {
	rec, reached, _ := runJWTAuth(t, authedRequest("Token abc"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("downstream handler must not run with a malformed header")
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	rec, reached, _ := runJWTAuth(t, authedRequest("Bearer not-a-jwt"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("downstream handler must not run with an invalid token")
	}
}

func TestJWTAuth_WrongSecret(t *testing.T) {
	token, err := crypto.GenerateToken(42, "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, reached, _ := runJWTAuth(t, authedRequest("Bearer "+token))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("downstream handler must not run with a wrongly signed token")
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	token, err := crypto.GenerateToken(42, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, reached, _ := runJWTAuth(t, authedRequest("Bearer "+token))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if reached {
		t.Error("downstream handler must not run with an expired token")
	}
}

func TestJWTAuth_ValidTokenBindsUserID(t *testing.T) {
	userID := int64(42)
	token, err := crypto.GenerateToken(userID, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	rec, reached, gotUserID := runJWTAuth(t, authedRequest("Bearer "+token))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if !reached {
		t.Fatal("downstream handler did not run with a valid token")
	}
	if gotUserID != userID {
		t.Errorf("context user id = %d, want %d", gotUserID, userID)
	}
}

func TestUserIDFromContext_Absent(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	if _, ok := UserIDFromContext(r.Context()); ok {
		t.Error("expected no user id in a bare context")
	}
}
