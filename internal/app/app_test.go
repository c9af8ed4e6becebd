package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-align/internal/config"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Config{
		App:   config.AppConfig{AppName: "talent-align", Environment: "test", HTTPPort: "0", CORSAllowOrigins: []string{"*"}},
		Store: config.StoreConfig{Backend: config.StoreMemory},
	}
	a, cleanup, err := Bootstrap(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return a
}

func do(t *testing.T, a *App, method, path, body string) (*http.Response, envelope) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)

	var env envelope
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	if len(b) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(b, &env), string(b))
	}
	return resp, env
}

func TestHealth(t *testing.T) {
	a := newTestApp(t)
	for _, path := range []string{"/health", "/api/health"} {
		resp, env := do(t, a, fiber.MethodGet, path, "")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"status":"ok"}`, string(env.Data))
	}
}

func TestOrganizations(t *testing.T) {
	a := newTestApp(t)

	resp, env := do(t, a, fiber.MethodGet, "/api/organizations", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var orgs []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &orgs))
	require.Len(t, orgs, 5)
	assert.Equal(t, "org_group", orgs[0]["id"])
	assert.Nil(t, orgs[0]["parent_id"])

	resp, env = do(t, a, fiber.MethodGet, "/api/organizations/org_dept_growth/tree", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var node struct {
		ID        string   `json:"id"`
		Ancestors []string `json:"ancestors"`
		Children  []string `json:"children"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &node))
	assert.Equal(t, "org_dept_growth", node.ID)
	assert.Equal(t, []string{"org_bu_product", "org_group"}, node.Ancestors)
	assert.Empty(t, node.Children)

	resp, env = do(t, a, fiber.MethodGet, "/api/organizations/org_nope/tree", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "organization_not_found", env.Error)
}

func TestMockJobFit(t *testing.T) {
	a := newTestApp(t)

	resp, env := do(t, a, fiber.MethodGet, "/api/mock/job_fit?org_id=org_bu_sales", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var payload struct {
		Distribution struct {
			HardMismatch int `json:"hardMismatch"`
		} `json:"distribution"`
		SingleMatchByEmployee map[string]any `json:"singleMatchByEmployee"`
		ActionSuggestions     []struct {
			Title      string `json:"title"`
			Priority   string `json:"priority"`
			TargetType string `json:"targetType"`
			TargetID   string `json:"targetId"`
		} `json:"actionSuggestions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &payload))
	assert.Equal(t, 3, payload.Distribution.HardMismatch)
	assert.Len(t, payload.SingleMatchByEmployee, 3)
	require.Len(t, payload.ActionSuggestions, 4)
	assert.Equal(t, "P0", payload.ActionSuggestions[0].Priority)
	assert.Equal(t, "org_bu_sales", payload.ActionSuggestions[0].TargetID)
	assert.Equal(t, "Employee", payload.ActionSuggestions[2].TargetType)

	resp, env = do(t, a, fiber.MethodGet, "/api/mock/talent_review", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "mock_not_found", env.Error)

	resp, env = do(t, a, fiber.MethodGet, "/api/mock/job_fit?org_id=org_nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "organization_not_found", env.Error)
}

type actionView struct {
	ID               string  `json:"id"`
	TargetObjectType string  `json:"target_object_type"`
	TargetObjectID   string  `json:"target_object_id"`
	ActionType       string  `json:"action_type"`
	Status           string  `json:"status"`
	Title            string  `json:"title"`
	ExpectedImpact   string  `json:"expected_impact"`
	Effort           *string `json:"effort"`
	Assignee         string  `json:"assignee"`
	DueDate          string  `json:"due_date"`
	Progress         int     `json:"progress"`
}

func listActions(t *testing.T, a *App, query string) []actionView {
	t.Helper()
	resp, env := do(t, a, fiber.MethodGet, "/api/actions"+query, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var out []actionView
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestGenerateThenListAndUpdate(t *testing.T) {
	a := newTestApp(t)

	before := listActions(t, a, "")
	require.Len(t, before, 2)

	resp, env := do(t, a, fiber.MethodPost, "/api/action/generate",
		`{"object_type":"Employee","object_id":"emp_002","action_type":"training"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var gen struct {
		ActionID       string `json:"action_id"`
		ExpectedImpact string `json:"expected_impact"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &gen))
	assert.Len(t, gen.ActionID, 36)
	assert.Equal(t, "预计提升关键指标 6%", gen.ExpectedImpact)

	all := listActions(t, a, "")
	require.Len(t, all, 3)
	assert.Equal(t, gen.ActionID, all[0].ID)
	assert.Equal(t, "draft", all[0].Status)
	assert.Equal(t, "HRBP", all[0].Assignee)
	assert.Equal(t, "行动任务：training", all[0].Title)
	assert.Nil(t, all[0].Effort)

	growth := listActions(t, a, "?org_id=org_dept_growth")
	require.Len(t, growth, 1)
	assert.Equal(t, gen.ActionID, growth[0].ID)
	assert.Empty(t, listActions(t, a, "?org_id=org_bu_product"))

	resp, env = do(t, a, fiber.MethodPost, "/api/action/update",
		`{"id":"`+gen.ActionID+`","status":"active","progress":60,"assignee":"","effort":"2周"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var updated actionView
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, 60, updated.Progress)
	assert.Equal(t, "HRBP", updated.Assignee)
	require.NotNil(t, updated.Effort)
	assert.Equal(t, "2周", *updated.Effort)

	resp, env = do(t, a, fiber.MethodPost, "/api/action/update", `{"id":"`+gen.ActionID+`","progress":0}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 0, updated.Progress)
	assert.Equal(t, "active", updated.Status)
}

func TestActionErrors(t *testing.T) {
	a := newTestApp(t)

	cases := []struct {
		path, body string
		status     int
		code       string
	}{
		{"/api/action/generate", `{"object_type":"Organization","object_id":"org_group"}`, fiber.StatusBadRequest, "missing_fields"},
		{"/api/action/generate", `{"object_type":`, fiber.StatusBadRequest, "invalid_body"},
		{"/api/action/update", `{"status":"active"}`, fiber.StatusBadRequest, "missing_action_id"},
		{"/api/action/update", `{"id":"missing","status":"active"}`, fiber.StatusNotFound, "action_not_found"},
		{"/api/action/update", `{"id":"action_org_active_1","progress":150}`, fiber.StatusBadRequest, "invalid_progress"},
		{"/api/action/update", `{"id":"action_org_active_1","due_date":"tomorrow"}`, fiber.StatusBadRequest, "invalid_due_date"},
		{"/api/simulate/jobfit", `{"org_id":"org_group","employee":"emp_101"}`, fiber.StatusBadRequest, "missing_fields"},
		{"/api/simulate/jobfit", `{"org_id":"org_nope","employee":"emp_101","role":"pos_sales_manager"}`, fiber.StatusNotFound, "organization_not_found"},
	}
	for _, tc := range cases {
		resp, env := do(t, a, fiber.MethodPost, tc.path, tc.body)
		assert.Equal(t, tc.status, resp.StatusCode, tc.body)
		assert.Equal(t, tc.code, env.Error, tc.body)
		assert.Equal(t, tc.status, env.Status, tc.body)
	}

	resp, env := do(t, a, fiber.MethodPost, "/api/action/generate", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "missing_fields", env.Error)

	assert.Len(t, listActions(t, a, ""), 2, "failed requests must not create actions")
}

func TestSimulateJobFit(t *testing.T) {
	a := newTestApp(t)

	resp, env := do(t, a, fiber.MethodPost, "/api/simulate/jobfit",
		`{"org_id":"org_bu_sales","employee":"emp_101","role":"pos_sales_manager"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"match":74,"performance":4,"risk":26,"reason":"emp_101 与 pos_sales_manager 的技能匹配度更高。"}`, string(env.Data))

	all := listActions(t, a, "?org_id=org_dept_north_sales")
	require.Len(t, all, 2)
	assert.Equal(t, "job_transfer", all[0].ActionType)
	assert.Equal(t, "预计匹配度提升 8%", all[0].ExpectedImpact)
}

func TestCORSPreflight(t *testing.T) {
	a := newTestApp(t)

	req := httptest.NewRequest(fiber.MethodOptions, "/api/action/generate", nil)
	req.Header.Set(fiber.HeaderOrigin, "http://localhost:5173")
	req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPost)
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get(fiber.HeaderAccessControlAllowOrigin))
	assert.Contains(t, resp.Header.Get(fiber.HeaderAccessControlAllowMethods), fiber.MethodPost)
}

func TestMetricsAndUnknownRoute(t *testing.T) {
	a := newTestApp(t)
	do(t, a, fiber.MethodGet, "/api/mock/job_fit", "")

	req := httptest.NewRequest(fiber.MethodGet, "/metrics", nil)
	resp, err := a.Fiber.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "talent_align_recommendation_rules_fired_total")

	resp, env := do(t, a, fiber.MethodGet, "/api/nope", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not_found", env.Error)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestListenAddr(t *testing.T) {
	addr, err := ListenAddr("5001")
	require.NoError(t, err)
	assert.Equal(t, ":5001", addr)

	addr, err = ListenAddr(":8080")
	require.NoError(t, err)
	assert.Equal(t, ":8080", addr)

	_, err = ListenAddr(" ")
	assert.Error(t, err)
}
