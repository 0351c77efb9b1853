package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/auth"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/storage/memory"
	"portfolio-backend/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type api struct {
	router *gin.Engine
	t      *testing.T
}

func newAPI(t *testing.T) *api {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.RateLimit.RPS = 1000
	cfg.RateLimit.Burst = 1000

	tokens := auth.NewMemoryTokenStore()
	authService, err := services.NewAuthService(&cfg.Auth, tokens)
	require.NoError(t, err)

	return &api{
		router: NewRouter(cfg, memory.New().Stores(), tokens, authService),
		t:      t,
	}
}

func (a *api) do(method, path, token string, body interface{}) (*httptest.ResponseRecorder, response.Response) {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}

	req, _ := http.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var resp response.Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (a *api) login() string {
	a.t.Helper()

	w, _ := a.do("POST", "/auth/login", "", gin.H{"username": "admin", "password": "password123"})
	require.Equal(a.t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(a.t, body.Token)
	return body.Token
}

func TestLogin(t *testing.T) {
	a := newAPI(t)

	w, resp := a.do("POST", "/auth/login", "", gin.H{"username": "admin", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.KindBadLogin, resp.Error)

	first := a.login()
	second := a.login()
	assert.NotEqual(t, first, second, "each login should issue a fresh token")
}

func TestLogoutRevokesToken(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	w, resp := a.do("POST", "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Logout successful", resp.Message)

	// The revoked token no longer opens protected routes
	w, _ = a.do("POST", "/theme", token, gin.H{
		"themeName":      "dark",
		"primaryColor":   "#111111",
		"secondaryColor": "#222222",
		"fontFamily":     "Arial",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestThemeLifecycle(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	create := gin.H{
		"themeName":      "dark",
		"primaryColor":   "#1A1A2E",
		"secondaryColor": "#E94560",
		"fontFamily":     "Roboto",
	}

	// Writes require auth
	w, resp := a.do("POST", "/theme", "", create)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, response.KindAuthRequired, resp.Error)

	w, _ = a.do("POST", "/theme", token, create)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		Data struct {
			ID        string `json:"id"`
			ThemeName string `json:"themeName"`
			CreatedAt string `json:"createdAt"`
			UpdatedAt string `json:"updatedAt"`
			IsActive  bool   `json:"isActive"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Data.IsActive)
	assert.Equal(t, created.Data.CreatedAt, created.Data.UpdatedAt)

	// Fetch returns the same record
	w, _ = a.do("GET", "/theme/dark", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.Data.ID, fetched.Data.ID)

	// Duplicate name rejected
	w, resp = a.do("POST", "/theme", token, create)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindDuplicate, resp.Error)
	assert.Equal(t, "A record with this themeName already exists", resp.Message)

	// Partial update
	w, _ = a.do("PUT", "/theme/dark", token, gin.H{"primaryColor": "#000000"})
	require.Equal(t, http.StatusOK, w.Code)

	// Delete, then everything about it 404s
	w, resp = a.do("DELETE", "/theme/dark", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Theme deleted successfully", resp.Message)

	w, _ = a.do("DELETE", "/theme/dark", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = a.do("GET", "/theme/dark", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Name still occupied by the soft-deleted record
	w, resp = a.do("POST", "/theme", token, create)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindDuplicate, resp.Error)
}

func TestThemeValidation(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	w, resp := a.do("POST", "/theme", token, gin.H{
		"themeName":    "dark",
		"primaryColor": "red",
		"fontFamily":   "Comic Sans",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindValidation, resp.Error)
	// primaryColor format, secondaryColor missing, fontFamily not allowed
	assert.Len(t, resp.Details, 3)
}

func TestThemeMalformedBody(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	req, _ := http.NewRequest("POST", "/theme", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserEndpointsNeedNoAuth(t *testing.T) {
	a := newAPI(t)

	w, _ := a.do("POST", "/user", "", gin.H{
		"username": "jane_doe",
		"email":    "jane@example.com",
		"fullName": "Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, resp := a.do("GET", "/user", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)

	w, _ = a.do("GET", "/user/jane_doe", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectOwnerReference(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	w, _ := a.do("POST", "/user", "", gin.H{
		"username": "jane_doe",
		"email":    "jane@example.com",
		"fullName": "Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	project := gin.H{
		"title":        "Portfolio API",
		"description":  "A REST API for managing portfolio content",
		"technologies": []string{"Go", "MongoDB"},
		"userId":       user.Data.ID,
	}

	w, _ = a.do("POST", "/project", token, project)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data struct {
			ID     string `json:"id"`
			Status string `json:"status"`
			User   *struct {
				Username string `json:"username"`
			} `json:"user"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "planning", created.Data.Status, "status should default to planning")
	require.NotNil(t, created.Data.User)
	assert.Equal(t, "jane_doe", created.Data.User.Username)

	// Well-formed but unknown owner id
	project["userId"] = "65f1a2b3c4d5e6f7a8b9c0d1"
	w, resp := a.do("POST", "/project", token, project)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindValidation, resp.Error)
	assert.Contains(t, resp.Details, "userId does not reference an existing user")

	// Malformed owner id
	project["userId"] = "not-hex"
	w, resp = a.do("POST", "/project", token, project)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindInvalidID, resp.Error)
}

func TestProjectUpdateNeedsNoAuth(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	w, _ := a.do("POST", "/user", "", gin.H{
		"username": "jane_doe",
		"email":    "jane@example.com",
		"fullName": "Jane Doe",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var user struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))

	w, _ = a.do("POST", "/project", token, gin.H{
		"title":        "Portfolio API",
		"description":  "A REST API for managing portfolio content",
		"technologies": []string{"Go"},
		"userId":       user.Data.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var project struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &project))

	// Only project creation is gated; updates go through without a token
	w, _ = a.do("PUT", "/project/"+project.Data.ID, "", gin.H{"status": "completed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var updated struct {
		Data struct {
			Status string `json:"status"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "completed", updated.Data.Status)
}

func TestSkillEndToEnd(t *testing.T) {
	a := newAPI(t)

	// Out-of-range proficiency rejected with details
	w, resp := a.do("POST", "/skill", "", gin.H{
		"name":             "Go",
		"category":         "backend",
		"proficiencyLevel": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, response.KindValidation, resp.Error)
	assert.Contains(t, resp.Details, "proficiencyLevel must be an integer between 1 and 5")

	w, _ = a.do("POST", "/skill", "", gin.H{
		"name":             "Go",
		"category":         "Backend",
		"proficiencyLevel": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Data struct {
			Category string `json:"category"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "backend", created.Data.Category)

	w, _ = a.do("GET", "/skill/Go", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = a.do("DELETE", "/skill/Go", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Skill deleted successfully", resp.Message)

	w, _ = a.do("GET", "/skill/Go", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillListFilters(t *testing.T) {
	a := newAPI(t)

	for _, skill := range []gin.H{
		{"name": "Go", "category": "backend", "proficiencyLevel": 5},
		{"name": "React", "category": "frontend", "proficiencyLevel": 3},
	} {
		w, _ := a.do("POST", "/skill", "", skill)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	// Category filter is case-insensitive
	w, resp := a.do("GET", "/skill?category=BACKEND", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)

	// Out-of-range proficiency filter is dropped, not rejected
	w, resp = a.do("GET", "/skill?proficiencyLevel=9", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 2, *resp.Count)

	w, resp = a.do("GET", "/skill?proficiencyLevel=3", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 1, *resp.Count)
}

func TestHealthAndCollections(t *testing.T) {
	a := newAPI(t)

	w, _ := a.do("GET", "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var health struct {
		Success  bool   `json:"success"`
		Status   string `json:"status"`
		Database string `json:"database"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.True(t, health.Success)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, "connected", health.Database)

	token := a.login()
	w, _ = a.do("POST", "/theme", token, gin.H{
		"themeName":      "dark",
		"primaryColor":   "#111111",
		"secondaryColor": "#222222",
		"fontFamily":     "Arial",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	_, _ = a.do("DELETE", "/theme/dark", "", nil)

	w, _ = a.do("GET", "/test/collections", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var counts struct {
		Data struct {
			Collections map[string]struct {
				Total  int64 `json:"total"`
				Active int64 `json:"active"`
			} `json:"collections"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &counts))
	themes := counts.Data.Collections["themes"]
	assert.Equal(t, int64(1), themes.Total)
	assert.Equal(t, int64(0), themes.Active)
}

func TestUnknownRoute(t *testing.T) {
	a := newAPI(t)

	w, resp := a.do("GET", "/nonexistent", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, response.KindNotFound, resp.Error)
}

func TestListOrderNewestFirst(t *testing.T) {
	a := newAPI(t)
	token := a.login()

	for i := 0; i < 3; i++ {
		w, _ := a.do("POST", "/theme", token, gin.H{
			"themeName":      fmt.Sprintf("theme%d", i),
			"primaryColor":   "#111111",
			"secondaryColor": "#222222",
			"fontFamily":     "Arial",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w, resp := a.do("GET", "/theme", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, resp.Count)
	assert.Equal(t, 3, *resp.Count)

	var list struct {
		Data []struct {
			ThemeName string `json:"themeName"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Data, 3)
	assert.Equal(t, "theme2", list.Data[0].ThemeName)
	assert.Equal(t, "theme0", list.Data[2].ThemeName)
}
