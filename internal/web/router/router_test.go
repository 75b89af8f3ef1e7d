package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/dealership-reviews/internal/types"
	"github.com/princeprakhar/dealership-reviews/internal/web/client"
	"github.com/princeprakhar/dealership-reviews/internal/web/session"
	"github.com/princeprakhar/dealership-reviews/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBackend answers the api endpoints the web front-end calls.
type stubBackend struct {
	mu       sync.Mutex
	requests []string
	posted   []types.AddReviewRequest
	auth     []string
}

func (b *stubBackend) requestsSince(n int) []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requests[n:]...)
}

func (b *stubBackend) requestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

func (b *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.URL.Path)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.URL.Path == "/login":
		var req types.LoginRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.UserName == "alice" && req.Password == "secret" {
			w.Write([]byte(`{"status":"Authenticated","userName":"alice","firstName":"Alice","lastName":"Smith","token":"tok"}`))
			return
		}
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"status":"Unauthenticated","userName":"` + req.UserName + `"}`))
	case r.URL.Path == "/logout":
		w.Write([]byte(`{"userName":"","status":"success"}`))
	case strings.HasPrefix(r.URL.Path, "/get_dealers/"):
		w.Write([]byte(`{"status":200,"dealers":[{"id":1,"state":"Texas","city":"El Paso","full_name":"Holdlamis Car Dealership"}]}`))
	case strings.HasPrefix(r.URL.Path, "/dealer/"):
		w.Write([]byte(`{"status":200,"dealer":[{"id":1,"state":"Texas","full_name":"Holdlamis Car Dealership"}]}`))
	case strings.HasPrefix(r.URL.Path, "/reviews/dealer/"):
		w.Write([]byte(`{"status":200,"reviews":[{"id":"r1","name":"Bob","dealership":1,"review":"Loved it","sentiment":"positive"}]}`))
	case r.URL.Path == "/get_cars/":
		w.Write([]byte(`{"CarModels":[{"CarMake":"Toyota","CarModel":"Corolla"},{"CarMake":"Land Rover","CarModel":"Defender"}]}`))
	case r.URL.Path == "/add_review/":
		var req types.AddReviewRequest
		json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		b.posted = append(b.posted, req)
		b.auth = append(b.auth, r.Header.Get("Authorization"))
		b.mu.Unlock()
		w.Write([]byte(`{"status":200}`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func newWeb(t *testing.T) (*gin.Engine, *stubBackend) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger.SetOutput(io.Discard)

	backend := &stubBackend{}
	ts := httptest.NewServer(backend)
	t.Cleanup(ts.Close)

	router := gin.New()
	SetupRoutes(router, client.New(ts.URL, time.Second), session.NewManager("test-secret", false))
	return router, backend
}

func do(router *gin.Engine, method, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func login(t *testing.T, router *gin.Engine) *http.Cookie {
	t.Helper()
	w := do(router, http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	return sessionCookie(t, w)
}

func TestHomeRedirectsToStaticPage(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/static/Home.html", w.Header().Get("Location"))

	w = do(router, http.MethodGet, "/static/Home.html", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Welcome to our Dealerships!")
}

func TestLoginStoresSessionAndRedirects(t *testing.T) {
	router, _ := newWeb(t)
	cookie := login(t, router)
	assert.True(t, cookie.HttpOnly)

	user, ok := session.NewManager("test-secret", false).For(contextWithCookie(cookie)).Current()
	require.True(t, ok)
	assert.Equal(t, "alice", user.Username)

	w := do(router, http.MethodGet, "/dealers", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
	assert.Contains(t, w.Body.String(), `href="/postreview/1"`)
}

func TestLoginFailureShowsNotice(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodPost, "/login", url.Values{"username": {"alice"}, "password": {"nope"}})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "The user could not be authenticated.")
	assert.Empty(t, w.Result().Cookies())
}

func TestDealersAnonymousHasNoReviewLinks(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodGet, "/dealers?state=Texas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Holdlamis Car Dealership")
	assert.NotContains(t, w.Body.String(), "/postreview/")
	assert.Contains(t, w.Body.String(), `href="/login"`)
}

func TestDealerDetailRendersReviews(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodGet, "/dealer/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Loved it")
	assert.Contains(t, w.Body.String(), "/static/positive.svg")
}

func TestPostReviewSplitsMakeAndModel(t *testing.T) {
	router, backend := newWeb(t)
	cookie := login(t, router)

	form := url.Values{
		"review":        {"Great buying experience"},
		"cars":          {"Toyota Corolla"},
		"purchase_date": {"2023-05-01"},
		"year":          {"2021"},
	}
	w := do(router, http.MethodPost, "/postreview/1", form, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dealer/1", w.Header().Get("Location"))

	require.Len(t, backend.posted, 1)
	got := backend.posted[0]
	assert.Equal(t, "Toyota", got.CarMake)
	assert.Equal(t, "Corolla", got.CarModel)
	assert.Equal(t, "Alice Smith", got.Name)
	assert.Equal(t, 1, got.Dealership)
	assert.True(t, got.Purchase)
	assert.Equal(t, "Bearer tok", backend.auth[0])
}

func TestPostReviewMissingFieldsSendsNothing(t *testing.T) {
	router, backend := newWeb(t)
	cookie := login(t, router)

	before := backend.requestCount()

	w := do(router, http.MethodPost, "/postreview/1", url.Values{
		"review":        {"text"},
		"dealer_name":   {"Holdlamis Car Dealership"},
		"catalog_make":  {"Toyota"},
		"catalog_model": {"Corolla"},
	}, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "All details are mandatory")
	assert.Contains(t, w.Body.String(), "Holdlamis Car Dealership")
	assert.Contains(t, w.Body.String(), `<option value="Toyota Corolla"`)
	assert.Empty(t, backend.requestsSince(before))
	assert.Empty(t, backend.posted)
}

func TestPostReviewFormShipsCatalog(t *testing.T) {
	router, backend := newWeb(t)
	cookie := login(t, router)

	w := do(router, http.MethodGet, "/postreview/1", nil, cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="catalog_make" value="Land Rover"`)
	assert.Contains(t, w.Body.String(), `name="dealer_name" value="Holdlamis Car Dealership"`)

	before := backend.requestCount()
	form := url.Values{
		"review":        {"Solid"},
		"cars":          {"Land Rover Defender"},
		"purchase_date": {"2023-05-01"},
		"year":          {"2022"},
		"catalog_make":  {"Toyota", "Land Rover"},
		"catalog_model": {"Corolla", "Defender"},
	}
	w = do(router, http.MethodPost, "/postreview/1", form, cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, []string{"/add_review/"}, backend.requestsSince(before))

	require.Len(t, backend.posted, 1)
	assert.Equal(t, "Land Rover", backend.posted[0].CarMake)
	assert.Equal(t, "Defender", backend.posted[0].CarModel)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodPost, "/register", url.Values{
		"username":         {"bob"},
		"password":         {"abc"},
		"confirm_password": {"abd"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Password Mismatch")
	assert.Contains(t, w.Body.String(), `id="mismatch" >`)
}

func TestRegisterPageTracksPasswordMatch(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodGet, "/register", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, 2, strings.Count(body, `oninput="checkPasswords(this.form)"`))
	assert.Contains(t, body, `id="mismatch" hidden`)
}

func TestLogoutClearsSession(t *testing.T) {
	router, _ := newWeb(t)
	cookie := login(t, router)

	w := do(router, http.MethodGet, "/logout", nil, cookie)
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/static/Home.html", w.Header().Get("Location"))
	assert.Less(t, sessionCookie(t, w).MaxAge, 0)
}

func TestUnknownPathRendersNotFound(t *testing.T) {
	router, _ := newWeb(t)

	w := do(router, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page not found")
}

func contextWithCookie(cookie *http.Cookie) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.AddCookie(cookie)
	return c
}
