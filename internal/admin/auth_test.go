package admin

import (
	"errors"
	"testing"
	"time"

	"github.com/smilesofhope/hopecms/internal/apperr"
)

const testSecret = "test-secret-at-least-32-bytes-long!!"

func newTestAuthenticator(t *testing.T) *Authenticator {
	t.Helper()
	hash, err := HashPassword("letmein")
	if err != nil {
		t.Fatal(err)
	}
	return NewAuthenticator("editor", hash, []byte(testSecret), time.Hour)
}

func TestLoginAndVerify(t *testing.T) {
	a := newTestAuthenticator(t)

	token, err := a.Login("editor", "letmein")
	if err != nil {
		t.Fatal(err)
	}
	subject, err := a.Verify(token)
	if err != nil {
		t.Fatal(err)
	}
	if subject != "editor" {
		t.Errorf("subject = %q", subject)
	}
}

func TestLoginUsernameIsCaseInsensitive(t *testing.T) {
	a := newTestAuthenticator(t)
	if _, err := a.Login("  Editor ", "letmein"); err != nil {
		t.Errorf("trimmed case-insensitive username rejected: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	a := newTestAuthenticator(t)

	if _, err := a.Login("editor", "wrong"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v", err)
	}
	if _, err := a.Login("somebody", "letmein"); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("wrong username: err = %v", err)
	}
}

func TestVerifyRejectsGarbage(t *testing.T) {
	a := newTestAuthenticator(t)
	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := a.Verify(token); !errors.Is(err, apperr.ErrInvalidCredentials) {
			t.Errorf("Verify(%q) err = %v", token, err)
		}
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	a := newTestAuthenticator(t)
	other := NewAuthenticator("editor", "", []byte("a-completely-different-signing-key!!"), time.Hour)

	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatal(err)
	}
	other.passwordHash = hash
	token, err := other.Login("editor", "pw")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.Verify(token); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("foreign token accepted: err = %v", err)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatal(err)
	}
	a := NewAuthenticator("editor", hash, []byte(testSecret), time.Nanosecond)
	// Zero or negative ttl is replaced with the default, so use the smallest
	// positive value and let it lapse.
	token, err := a.Login("editor", "pw")
	if err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, err := a.Verify(token); !errors.Is(err, apperr.ErrInvalidCredentials) {
		t.Errorf("expired token accepted: err = %v", err)
	}
}
