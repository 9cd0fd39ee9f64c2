package pasetotoken

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestManager(t *testing.T, mode Mode) *Manager {
	t.Helper()

	var keys Keys
	switch mode {
	case ModeLocal:
		keys = NewLocalKeys()
	case ModePublic:
		keys = NewPublicKeys()
	}

	m, err := New(Config{
		Mode:       mode,
		Issuer:     "internlink",
		Audience:   "internlink-api",
		AccessTTL:  15 * time.Minute,
		RefreshTTL: 7 * 24 * time.Hour,
	}, keys)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m
}

func TestIssueAndVerify(t *testing.T) {
	for _, mode := range []Mode{ModeLocal, ModePublic} {
		t.Run(string(mode), func(t *testing.T) {
			m := newTestManager(t, mode)

			userID := uuid.Must(uuid.NewV7())
			sessionID := uuid.Must(uuid.NewV7())

			tokenStr, err := m.IssueAccess(userID, "student", &sessionID)
			if err != nil {
				t.Fatalf("IssueAccess: %v", err)
			}

			claims, err := m.Verify(tokenStr)
			if err != nil {
				t.Fatalf("Verify: %v", err)
			}
			if claims.Type != TokenTypeAccess {
				t.Errorf("Type = %q, want %q", claims.Type, TokenTypeAccess)
			}
			if claims.UserID != userID {
				t.Errorf("UserID = %s, want %s", claims.UserID, userID)
			}
			if claims.UserType != "student" {
				t.Errorf("UserType = %q, want student", claims.UserType)
			}
			if claims.SessionID == nil || *claims.SessionID != sessionID {
				t.Errorf("SessionID = %v, want %s", claims.SessionID, sessionID)
			}
			if claims.IsExpired() {
				t.Error("fresh token reported expired")
			}
		})
	}
}

func TestRefreshToken(t *testing.T) {
	m := newTestManager(t, ModeLocal)

	userID := uuid.Must(uuid.NewV7())
	tokenStr, err := m.IssueRefresh(userID, "company", nil)
	if err != nil {
		t.Fatalf("IssueRefresh: %v", err)
	}

	claims, err := m.Verify(tokenStr)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Type != TokenTypeRefresh {
		t.Errorf("Type = %q, want %q", claims.Type, TokenTypeRefresh)
	}
	if claims.SessionID != nil {
		t.Errorf("SessionID = %v, want nil", claims.SessionID)
	}
	if until := time.Until(claims.ExpiresAt); until < 6*24*time.Hour {
		t.Errorf("refresh expiry too soon: %s", until)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	m := newTestManager(t, ModeLocal)

	tokenStr, err := m.IssueAccess(uuid.Must(uuid.NewV7()), "student", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	tampered := tokenStr[:len(tokenStr)-2] + "xx"
	if _, err := m.Verify(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestVerifyRejectsForeignKey(t *testing.T) {
	issuer := newTestManager(t, ModePublic)
	other := newTestManager(t, ModePublic)

	tokenStr, err := issuer.IssueAccess(uuid.Must(uuid.NewV7()), "student", nil)
	if err != nil {
		t.Fatalf("IssueAccess: %v", err)
	}

	if _, err := other.Verify(tokenStr); err == nil {
		t.Fatal("expected token signed by a different key to be rejected")
	}
}

func TestNewValidatesConfig(t *testing.T) {
	keys := NewLocalKeys()

	if _, err := New(Config{Mode: ModePublic, Issuer: "x", Audience: "y"}, keys); err == nil {
		t.Error("expected mode mismatch error")
	}
	if _, err := New(Config{Mode: ModeLocal, Audience: "y"}, keys); err == nil {
		t.Error("expected missing issuer error")
	}
	if _, err := New(Config{Mode: ModeLocal, Issuer: "x"}, keys); err == nil {
		t.Error("expected missing audience error")
	}
}

func TestLoadKeys(t *testing.T) {
	t.Run("local round trip", func(t *testing.T) {
		src := NewLocalKeys()
		keys, err := LoadKeys(KeyStrings{Mode: ModeLocal, SymmetricHex: src.Symmetric.ExportHex()})
		if err != nil {
			t.Fatalf("LoadKeys: %v", err)
		}
		if keys.Symmetric == nil {
			t.Fatal("symmetric key not loaded")
		}
	})

	t.Run("public derives verify key from secret", func(t *testing.T) {
		src := NewPublicKeys()
		keys, err := LoadKeys(KeyStrings{Mode: ModePublic, SecretHex: src.Secret.ExportHex()})
		if err != nil {
			t.Fatalf("LoadKeys: %v", err)
		}
		if keys.Public == nil {
			t.Fatal("public key not derived from secret")
		}
	})

	t.Run("missing material fails", func(t *testing.T) {
		if _, err := LoadKeys(KeyStrings{Mode: ModeLocal}); err == nil {
			t.Error("expected error for empty symmetric hex")
		}
		if _, err := LoadKeys(KeyStrings{Mode: ModePublic}); err == nil {
			t.Error("expected error for missing public material")
		}
		if _, err := LoadKeys(KeyStrings{Mode: "ed25519"}); err == nil {
			t.Error("expected error for unknown mode")
		}
	})
}
