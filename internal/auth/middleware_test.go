package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newProbeEngine(codec *TokenCodec) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(SessionMiddleware(codec))

	engine.GET("/probe", func(c *gin.Context) {
		if identity := CurrentUser(c); identity != nil {
			c.String(http.StatusOK, identity.Username)
			return
		}
		c.String(http.StatusOK, "anonymous")
	})
	engine.GET("/protected", RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, "secret")
	})

	return engine
}

func TestSessionMiddlewareAttachesIdentity(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	engine := newProbeEngine(codec)

	token, err := codec.Sign(7, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Body.String() != "alice" {
		t.Errorf("probe body = %q, want %q", w.Body.String(), "alice")
	}
}

func TestSessionMiddlewareFailsOpenToAnonymous(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	engine := newProbeEngine(codec)

	forged, err := NewTokenCodec("attacker-secret").Sign(7, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie", cookie: nil},
		{name: "garbage cookie", cookie: &http.Cookie{Name: SessionCookieName, Value: "garbage"}},
		{name: "forged token", cookie: &http.Cookie{Name: SessionCookieName, Value: forged}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
			}
			if w.Body.String() != "anonymous" {
				t.Errorf("probe body = %q, want %q", w.Body.String(), "anonymous")
			}
		})
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	engine := newProbeEngine(codec)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusFound {
		t.Errorf("status = %d, want %d", w.Code, http.StatusFound)
	}
	if location := w.Header().Get("Location"); location != "/" {
		t.Errorf("Location = %q, want %q", location, "/")
	}
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	codec := NewTokenCodec(testSecret)
	engine := newProbeEngine(codec)

	token, err := codec.Sign(7, "alice")
	if err != nil {
		t.Fatalf("Sign() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "secret" {
		t.Errorf("protected body = %q, want %q", w.Body.String(), "secret")
	}
}
