package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func authTestRouter(t *testing.T, iss *Issuer) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", RequireAuth(iss), func(c *gin.Context) {
		u, ok := Username(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no username"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": u})
	})
	return r
}

func TestRequireAuth_ValidToken(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)
	tok, err := iss.Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	authTestRouter(t, iss).ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status %d body %s", w.Code, w.Body.String())
	}
}

func TestRequireAuth_MissingAndMalformed(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)
	r := authTestRouter(t, iss)
	cases := map[string]string{
		"missing":   "",
		"no scheme": "sometoken",
		"basic":     "Basic abc",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status %d, want 401", w.Code)
			}
		})
	}
}

func TestRequireAuth_BadToken(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)
	tok, err := NewIssuer("other-secret", time.Hour).Issue("alice")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w := httptest.NewRecorder()
	authTestRouter(t, iss).ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status %d, want 401", w.Code)
	}
}
