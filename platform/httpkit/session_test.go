package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

type testSessionConfig struct {
	secret string
	ttl    time.Duration
}

func (c testSessionConfig) GetSessionSecret() string     { return c.secret }
func (c testSessionConfig) GetSessionCookieName() string { return "dashboard_session" }
func (c testSessionConfig) GetSessionCookieSecure() bool { return false }
func (c testSessionConfig) GetSessionTTL() time.Duration {
	if c.ttl == 0 {
		return time.Hour
	}
	return c.ttl
}

func TestSessionTokenRoundTrip(t *testing.T) {
	cfg := testSessionConfig{secret: "test-secret"}
	issued := Session{Username: "admin", Role: "admin"}

	rawToken, err := IssueSessionToken(cfg, issued, time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken failed: %v", err)
	}

	parsed, err := ParseSessionToken(cfg, rawToken)
	if err != nil {
		t.Fatalf("ParseSessionToken failed: %v", err)
	}
	if parsed != issued {
		t.Fatalf("expected %+v, got %+v", issued, parsed)
	}
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	rawToken, err := IssueSessionToken(testSessionConfig{secret: "secret-a"}, Session{Username: "admin"}, time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken failed: %v", err)
	}

	if _, err := ParseSessionToken(testSessionConfig{secret: "secret-b"}, rawToken); err == nil {
		t.Fatal("expected token signed with another secret to be rejected")
	}
}

func TestParseSessionToken_Expired(t *testing.T) {
	cfg := testSessionConfig{secret: "test-secret", ttl: time.Minute}

	rawToken, err := IssueSessionToken(cfg, Session{Username: "admin"}, time.Now().Add(-2*time.Minute))
	if err != nil {
		t.Fatalf("IssueSessionToken failed: %v", err)
	}

	if _, err := ParseSessionToken(cfg, rawToken); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestParseSessionToken_Garbage(t *testing.T) {
	if _, err := ParseSessionToken(testSessionConfig{secret: "test-secret"}, "not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func sessionTestRouter(cfg testSessionConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	protected := engine.Group("/", SessionRequired(cfg))
	protected.GET("/whoami", func(c *gin.Context) {
		session, _ := GetSession(c)
		c.JSON(http.StatusOK, gin.H{"username": session.Username})
	})
	return engine
}

func TestSessionRequired_MissingCookie(t *testing.T) {
	engine := sessionTestRouter(testSessionConfig{secret: "test-secret"})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}

	var body ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Error != "Unauthorized" || body.Message != "Authentication required" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}

func TestSessionRequired_TamperedCookie(t *testing.T) {
	cfg := testSessionConfig{secret: "test-secret"}
	engine := sessionTestRouter(cfg)

	rawToken, err := IssueSessionToken(testSessionConfig{secret: "other-secret"}, Session{Username: "admin"}, time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken failed: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.AddCookie(&http.Cookie{Name: cfg.GetSessionCookieName(), Value: rawToken})
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", recorder.Code)
	}
}

func TestSessionRequired_ValidCookie(t *testing.T) {
	cfg := testSessionConfig{secret: "test-secret"}
	engine := sessionTestRouter(cfg)

	rawToken, err := IssueSessionToken(cfg, Session{Username: "admin", Role: "admin"}, time.Now())
	if err != nil {
		t.Fatalf("IssueSessionToken failed: %v", err)
	}

	request := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	request.AddCookie(&http.Cookie{Name: cfg.GetSessionCookieName(), Value: rawToken})
	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, request)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var body struct {
		Username string `json:"username"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body.Username != "admin" {
		t.Fatalf("expected session username to reach the handler, got %q", body.Username)
	}
}
