package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"webeat/internal/database"
	"webeat/internal/repository"
	"webeat/internal/service"
)

// testServer wires the invite and couple endpoints against a temp sqlite
// database, mirroring the production route setup.
type testServer struct {
	mux         *http.ServeMux
	authService *service.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := database.Initialize(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	userRepo := repository.NewUserRepository(db)
	coupleRepo := repository.NewCoupleRepository(db)
	inviteRepo := repository.NewInviteRepository(db)

	authService := service.NewAuthService(userRepo, time.Hour)
	coupleService := service.NewCoupleService(inviteRepo, coupleRepo, userRepo)
	emailService, err := service.NewEmailService("", "", "", "")
	if err != nil {
		t.Fatalf("Failed to create email service: %v", err)
	}

	middleware := NewMiddleware(authService)
	inviteHandler := NewInviteHandler(coupleService, emailService)
	coupleHandler := NewCoupleHandler(coupleService, userRepo)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/invites", middleware.RequireAuth(inviteHandler.CreateInvite))
	mux.HandleFunc("GET /api/invites", middleware.RequireAuth(inviteHandler.ListInvites))
	mux.HandleFunc("GET /api/invites/lookup", inviteHandler.LookupInvite)
	mux.HandleFunc("POST /api/invites/accept", middleware.RequireAuth(inviteHandler.AcceptInvite))
	mux.HandleFunc("GET /api/couple", middleware.RequireAuth(coupleHandler.GetCouple))

	return &testServer{mux: mux, authService: authService}
}

// signup registers a user and returns their session cookie
func (s *testServer) signup(t *testing.T, email, firstName string) *http.Cookie {
	t.Helper()
	user, err := s.authService.Register(email, "correcthorse", firstName, "Kim")
	if err != nil {
		t.Fatalf("Failed to register %s: %v", email, err)
	}
	session, err := s.authService.CreateSession(user.ID)
	if err != nil {
		t.Fatalf("Failed to create session: %v", err)
	}
	return &http.Cookie{Name: SessionCookieName, Value: session.ID}
}

func (s *testServer) do(t *testing.T, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	s.mux.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode body %q: %v", recorder.Body.String(), err)
	}
	return body
}

func TestInviteEndpointsRequireAuth(t *testing.T) {
	server := newTestServer(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/invites"},
		{http.MethodGet, "/api/invites"},
		{http.MethodPost, "/api/invites/accept"},
		{http.MethodGet, "/api/couple"},
	}

	for _, p := range paths {
		recorder := server.do(t, p.method, p.path, "", nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without session: expected 401, got %d", p.method, p.path, recorder.Code)
		}
	}
}

func TestCreateAndLookupInvite(t *testing.T) {
	server := newTestServer(t)
	cookie := server.signup(t, "minji@example.com", "Minji")

	recorder := server.do(t, http.MethodPost, "/api/invites",
		`{"mode":"dating","inviterName":"민지"}`, cookie)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	body := decodeBody(t, recorder)
	invite, ok := body["invite"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected invite object, got %v", body)
	}
	code, _ := invite["inviteCode"].(string)
	if len(code) != 12 {
		t.Errorf("Expected 12-character code, got %q", code)
	}
	if invite["status"] != "pending" {
		t.Errorf("Expected pending status, got %v", invite["status"])
	}

	// Public lookup needs no session
	recorder = server.do(t, http.MethodGet, "/api/invites/lookup?code="+code, "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 from lookup, got %d", recorder.Code)
	}
	lookup := decodeBody(t, recorder)["invite"].(map[string]interface{})
	if lookup["inviterName"] != "민지" {
		t.Errorf("Expected inviter name 민지, got %v", lookup["inviterName"])
	}
	if lookup["mode"] != "dating" {
		t.Errorf("Expected dating mode, got %v", lookup["mode"])
	}
}

func TestCreateInviteInvalidModeReturns400(t *testing.T) {
	server := newTestServer(t)
	cookie := server.signup(t, "minji@example.com", "Minji")

	recorder := server.do(t, http.MethodPost, "/api/invites", `{"mode":"friendship"}`, cookie)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for unknown mode, got %d", recorder.Code)
	}
}

func TestLookupUnknownCodeReturns404(t *testing.T) {
	server := newTestServer(t)

	recorder := server.do(t, http.MethodGet, "/api/invites/lookup?code=ffffffffffff", "", nil)
	if recorder.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", recorder.Code)
	}

	recorder = server.do(t, http.MethodGet, "/api/invites/lookup", "", nil)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing code, got %d", recorder.Code)
	}
}

func TestAcceptInviteFlow(t *testing.T) {
	server := newTestServer(t)
	inviterCookie := server.signup(t, "a@example.com", "Minji")
	accepterCookie := server.signup(t, "b@example.com", "Jun")
	thirdCookie := server.signup(t, "c@example.com", "Hana")

	recorder := server.do(t, http.MethodPost, "/api/invites", `{"mode":"dating"}`, inviterCookie)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 creating invite, got %d", recorder.Code)
	}
	code := decodeBody(t, recorder)["invite"].(map[string]interface{})["inviteCode"].(string)

	// Self-accept is rejected
	recorder = server.do(t, http.MethodPost, "/api/invites/accept",
		`{"inviteCode":"`+code+`"}`, inviterCookie)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for self-accept, got %d", recorder.Code)
	}

	// Partner accepts
	recorder = server.do(t, http.MethodPost, "/api/invites/accept",
		`{"inviteCode":"`+code+`"}`, accepterCookie)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200 accepting invite, got %d: %s", recorder.Code, recorder.Body.String())
	}
	body := decodeBody(t, recorder)
	if body["success"] != true {
		t.Errorf("Expected success true, got %v", body["success"])
	}

	// A second accept of the redeemed code is a 400, not a 409
	recorder = server.do(t, http.MethodPost, "/api/invites/accept",
		`{"inviteCode":"`+code+`"}`, thirdCookie)
	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for already-accepted code, got %d", recorder.Code)
	}

	// Both partners now report the pairing
	for _, cookie := range []*http.Cookie{inviterCookie, accepterCookie} {
		recorder = server.do(t, http.MethodGet, "/api/couple", "", cookie)
		if recorder.Code != http.StatusOK {
			t.Fatalf("Expected 200 from couple endpoint, got %d", recorder.Code)
		}
		coupleBody := decodeBody(t, recorder)
		if coupleBody["paired"] != true {
			t.Errorf("Expected paired true, got %v", coupleBody["paired"])
		}
		if _, ok := coupleBody["partner"]; !ok {
			t.Error("Expected partner profile in response")
		}
	}

	// The third user remains unpaired
	recorder = server.do(t, http.MethodGet, "/api/couple", "", thirdCookie)
	coupleBody := decodeBody(t, recorder)
	if coupleBody["paired"] != false {
		t.Errorf("Expected paired false for third user, got %v", coupleBody["paired"])
	}
}

func TestListInvitesEmpty(t *testing.T) {
	server := newTestServer(t)
	cookie := server.signup(t, "minji@example.com", "Minji")

	recorder := server.do(t, http.MethodGet, "/api/invites", "", cookie)
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", recorder.Code)
	}

	body := decodeBody(t, recorder)
	invites, ok := body["invites"].([]interface{})
	if !ok {
		t.Fatalf("Expected an invites array, got %v", body)
	}
	if len(invites) != 0 {
		t.Errorf("Expected empty invites list, got %d entries", len(invites))
	}
}
