package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/scentworks/parfum/internal/catalog/domain"
	cataloghttp "github.com/scentworks/parfum/internal/catalog/http"
	"github.com/scentworks/parfum/internal/catalog/service"
	"github.com/scentworks/parfum/internal/catalog/store"
	"github.com/scentworks/parfum/internal/catalog/store/drivers/jsonfile"
	"github.com/scentworks/parfum/pkg/cryptox"
	"github.com/scentworks/parfum/pkg/jwtx"
	"github.com/scentworks/parfum/pkg/notesdk"
	"github.com/scentworks/parfum/pkg/slogx"
)

const (
	testSecret = "handler-test-secret"
	testIssuer = "parfum-catalog"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "catalog-http-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

type fixture struct {
	router *cataloghttp.Router
	store  store.Store
	signer *jwtx.Signer

	notesFailing bool
	addrSeq      int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dir := t.TempDir()
	st, err := jsonfile.Open(filepath.Join(dir, "user.json"), filepath.Join(dir, "perfume.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	fx := &fixture{store: st}

	notesMux := http.NewServeMux()
	notesMux.HandleFunc("POST /register", func(w http.ResponseWriter, r *http.Request) {
		if fx.notesFailing {
			http.Error(w, "notes service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	notesMux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		if fx.notesFailing {
			http.Error(w, "notes service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "delegated-token"})
	})
	notesMux.HandleFunc("GET /notes", func(w http.ResponseWriter, r *http.Request) {
		if fx.notesFailing {
			http.Error(w, "notes service unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"notes":["amber","oud"]}`))
	})
	notesSrv := httptest.NewServer(notesMux)
	t.Cleanup(notesSrv.Close)

	client := notesdk.NewClient(notesSrv.URL)
	users := service.NewUserService(st, client)
	signer := jwtx.NewSigner([]byte(testSecret), testIssuer)
	verifier := jwtx.NewVerifier([]byte(testSecret), testIssuer)

	logger := slogx.New(slogx.Config{Service: "catalog", Env: "test", Level: "error", Format: "text"})

	router := cataloghttp.NewRouter(verifier, "test", st, logger)
	router.UserService = users
	router.TokenService = service.NewTokenService(users, st, client, signer, 30*time.Minute)
	router.PerfumeService = service.NewPerfumeService(st)
	router.NotesService = service.NewNotesService(client)
	router.ApplyRoutes()

	fx.router = router
	fx.signer = signer
	return fx
}

// do executes a request against the router. Each request gets a unique remote
// address so the per-IP rate limiters never interfere with the assertions.
func (fx *fixture) do(t *testing.T, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	fx.addrSeq++
	req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:4000", fx.addrSeq/250, fx.addrSeq%250+1)
	rec := httptest.NewRecorder()
	fx.router.ServeHTTP(rec, req)
	return rec
}

func (fx *fixture) register(t *testing.T, username, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := fx.do(t, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func (fx *fixture) tokenFor(t *testing.T, username string) string {
	t.Helper()
	token, err := fx.signer.Sign(username, 30*time.Minute)
	require.NoError(t, err)
	return token
}

// makeAdmin creates an identity with the admin role directly in the store.
func (fx *fixture) makeAdmin(t *testing.T, username, password string) {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	_, err = fx.store.Users().Create(context.Background(), domain.User{
		Username:     username,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
	})
	require.NoError(t, err)
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestRegisterEndpoint(t *testing.T) {
	fx := newFixture(t)

	fx.register(t, "alice", "s3cret")

	t.Run("duplicate username conflicts", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/register",
			strings.NewReader(`{"username":"alice","password":"other"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := fx.do(t, req)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, "username_taken", errorCode(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader("{"))
		rec := fx.do(t, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("remote failure surfaces upstream text", func(t *testing.T) {
		fx.notesFailing = true
		defer func() { fx.notesFailing = false }()

		req := httptest.NewRequest(http.MethodPost, "/v1/register",
			strings.NewReader(`{"username":"bob","password":"s3cret"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := fx.do(t, req)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "dependency_failure", errorCode(t, rec))
		require.Contains(t, rec.Body.String(), "notes service unavailable")
	})
}

func TestTokenEndpoint(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, "carol", "s3cret")

	login := func(username, password string) *httptest.ResponseRecorder {
		form := fmt.Sprintf("username=%s&password=%s", username, password)
		req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(form))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return fx.do(t, req)
	}

	t.Run("valid credentials", func(t *testing.T) {
		rec := login("carol", "s3cret")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
			NotesToken  string `json:"notes_token"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.NotEmpty(t, body.AccessToken)
		require.Equal(t, "bearer", body.TokenType)
		require.Equal(t, "delegated-token", body.NotesToken)
		require.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
	})

	t.Run("wrong password and unknown user are identical", func(t *testing.T) {
		wrongPass := login("carol", "nope")
		unknown := login("nobody", "s3cret")
		require.Equal(t, http.StatusUnauthorized, wrongPass.Code)
		require.Equal(t, http.StatusUnauthorized, unknown.Code)
		require.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())
	})

	t.Run("wrong content type", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/token",
			strings.NewReader(`{"username":"carol"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := fx.do(t, req)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAuthGuards(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, "dave", "s3cret")

	t.Run("missing token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations",
			strings.NewReader(`{"preferences":["amber"]}`))
		rec := fx.do(t, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Header().Get("WWW-Authenticate"), "Bearer")
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations",
			strings.NewReader(`{"preferences":["amber"]}`))
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := fx.do(t, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token with deleted subject", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations",
			strings.NewReader(`{"preferences":["amber"]}`))
		req.Header.Set("Authorization", "Bearer "+fx.tokenFor(t, "ghost"))
		rec := fx.do(t, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non-admin denied on mutation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/perfumes",
			strings.NewReader(`{"name":"Oud Royale","brand":"Maison A","notes":"oud"}`))
		req.Header.Set("Authorization", "Bearer "+fx.tokenFor(t, "dave"))
		rec := fx.do(t, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCatalogEndpoints(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, "erin", "s3cret")
	fx.makeAdmin(t, "root", "Admin123!")

	userAuth := "Bearer " + fx.tokenFor(t, "erin")
	adminAuth := "Bearer " + fx.tokenFor(t, "root")

	addPerfume := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/perfumes", strings.NewReader(body))
		req.Header.Set("Authorization", adminAuth)
		req.Header.Set("Content-Type", "application/json")
		return fx.do(t, req)
	}

	rec := addPerfume(`{"name":"Oud Royale","brand":"Maison A","notes":"oud, amber, rose"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = addPerfume(`{"name":"Citrus Splash","brand":"Maison B","notes":"lemon, bergamot"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	t.Run("recommendations", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations",
			strings.NewReader(`{"preferences":["amber"],"dislikes":["lemon"]}`))
		req.Header.Set("Authorization", userAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var body struct {
			Recommendations []struct {
				Name string `json:"name"`
			} `json:"recommendations"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Len(t, body.Recommendations, 1)
		require.Equal(t, "Oud Royale", body.Recommendations[0].Name)
	})

	t.Run("empty preferences rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations",
			strings.NewReader(`{"preferences":[],"dislikes":[]}`))
		req.Header.Set("Authorization", userAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("no matching recommendation is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/recommendations",
			strings.NewReader(`{"preferences":["leather"]}`))
		req.Header.Set("Authorization", userAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("notes lookup by fragment", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/perfumes/royale/notes", nil)
		req.Header.Set("Authorization", userAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Contains(t, rec.Body.String(), "oud, amber, rose")
	})

	t.Run("notes lookup miss is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/perfumes/nothing/notes", nil)
		req.Header.Set("Authorization", userAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("append notes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/v1/perfumes/citrus%20splash/notes",
			strings.NewReader(`{"notes":"neroli"}`))
		req.Header.Set("Authorization", adminAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		require.Contains(t, rec.Body.String(), "lemon, bergamot, neroli")
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodDelete, "/v1/perfumes/citrus%20splash", nil)
		req.Header.Set("Authorization", adminAuth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusNoContent, rec.Code)

		req = httptest.NewRequest(http.MethodDelete, "/v1/perfumes/citrus%20splash", nil)
		req.Header.Set("Authorization", adminAuth)
		rec = fx.do(t, req)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNotesEndpoint(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, "frank", "s3cret")
	auth := "Bearer " + fx.tokenFor(t, "frank")

	t.Run("no delegated token before login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
		req.Header.Set("Authorization", auth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"available":false`)
	})

	// Log in to link the delegated token.
	form := "username=frank&password=s3cret"
	req := httptest.NewRequest(http.MethodPost, "/v1/token", strings.NewReader(form))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := fx.do(t, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	t.Run("delegated fetch after login", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
		req.Header.Set("Authorization", auth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.JSONEq(t, `{"notes":["amber","oud"]}`, rec.Body.String())
	})

	t.Run("upstream failure is a dependency error", func(t *testing.T) {
		fx.notesFailing = true
		defer func() { fx.notesFailing = false }()

		req := httptest.NewRequest(http.MethodGet, "/v1/notes", nil)
		req.Header.Set("Authorization", auth)
		rec := fx.do(t, req)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Equal(t, "dependency_failure", errorCode(t, rec))
	})
}

func TestHealthEndpoints(t *testing.T) {
	fx := newFixture(t)

	rec := fx.do(t, httptest.NewRequest(http.MethodGet, "/livez", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"ok"`)

	rec = fx.do(t, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}
