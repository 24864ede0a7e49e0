package app

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http/httptest"
	"strings"
	"testing"

	"applyai/internal/config"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Success bool            `json:"success"`
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	bootstrap, cleanup, err := Bootstrap(cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	t.Cleanup(func() { _ = cleanup() })

	return bootstrap.Fiber
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) semanticResponse {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("%s %s decode: %v", method, path, err)
	}
	return sr
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "GET", "/health", nil)
	if sr.Status != 200 || !sr.Success {
		t.Fatalf("expected healthy response, got status=%d success=%v", sr.Status, sr.Success)
	}

	var data struct {
		JobsLoaded int  `json:"jobs_loaded"`
		LiveSearch bool `json:"live_search"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("health data: %v", err)
	}
	if data.JobsLoaded != 50 {
		t.Fatalf("expected 50 jobs loaded, got %d", data.JobsLoaded)
	}
}

func TestJobsEndpointServesCatalog(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "GET", "/api/jobs", nil)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var data struct {
		Jobs  []map[string]json.RawMessage `json:"jobs"`
		Total int                          `json:"total"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("jobs data: %v", err)
	}
	if data.Total != 50 || len(data.Jobs) != 50 {
		t.Fatalf("expected 50 catalog jobs, got total=%d len=%d", data.Total, len(data.Jobs))
	}
}

func TestJobsEndpointFilters(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "GET", "/api/jobs?portal=Naukri&min_match=80", nil)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}

	var data struct {
		Jobs []struct {
			Portal string `json:"portal"`
			Match  int    `json:"match"`
		} `json:"jobs"`
		Total int `json:"total"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("jobs data: %v", err)
	}
	for _, j := range data.Jobs {
		if j.Portal != "Naukri" {
			t.Fatalf("portal filter leaked %q", j.Portal)
		}
		if j.Match < 80 {
			t.Fatalf("min_match filter leaked match=%d", j.Match)
		}
	}
}

func TestPortalLinksEndpoint(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "GET", "/api/portals/links?q=Data+Scientist&location=Pune", nil)
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}

	var links map[string]string
	if err := json.Unmarshal(sr.Data, &links); err != nil {
		t.Fatalf("links data: %v", err)
	}
	want := "https://www.linkedin.com/jobs/search/?keywords=Data+Scientist&location=Pune&f_TPR=r604800"
	if links["linkedin"] != want {
		t.Fatalf("linkedin link mismatch:\n got %s\nwant %s", links["linkedin"], want)
	}
	for _, key := range []string{"linkedin", "naukri", "foundit", "indeed", "internshala"} {
		if links[key] == "" {
			t.Fatalf("missing %s link", key)
		}
	}
}

func TestRegisterLoginAndConflict(t *testing.T) {
	app := newTestApp(t)

	reg := map[string]string{"name": "Asha", "email": "asha@example.com", "password": "secret1"}
	sr := doJSON(t, app, "POST", "/api/auth/register", reg)
	if sr.Status != 200 || !sr.Success {
		t.Fatalf("register failed: status=%d message=%s", sr.Status, sr.Message)
	}

	var auth struct {
		UserID string `json:"user_id"`
		Token  string `json:"token"`
	}
	if err := json.Unmarshal(sr.Data, &auth); err != nil {
		t.Fatalf("auth data: %v", err)
	}
	if auth.UserID == "" || auth.Token == "" {
		t.Fatalf("expected user_id and token, got %+v", auth)
	}

	sr = doJSON(t, app, "POST", "/api/auth/register", reg)
	if sr.Status != 409 || sr.Success {
		t.Fatalf("duplicate register: expected 409, got %d", sr.Status)
	}

	sr = doJSON(t, app, "POST", "/api/auth/login", map[string]string{"email": "asha@example.com", "password": "secret1"})
	if sr.Status != 200 {
		t.Fatalf("login failed: status=%d", sr.Status)
	}

	sr = doJSON(t, app, "POST", "/api/auth/login", map[string]string{"email": "asha@example.com", "password": "wrong1"})
	if sr.Status != 401 {
		t.Fatalf("bad password: expected 401, got %d", sr.Status)
	}
}

func TestDemoLoginFixedIdentity(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "POST", "/api/auth/login", map[string]string{"email": "demo@test.com", "password": "demo123"})
	if sr.Status != 200 {
		t.Fatalf("demo login failed: status=%d", sr.Status)
	}

	var auth struct {
		UserID string `json:"user_id"`
		Name   string `json:"name"`
	}
	if err := json.Unmarshal(sr.Data, &auth); err != nil {
		t.Fatalf("auth data: %v", err)
	}
	if auth.UserID != "demo-user-001" || auth.Name != "Demo User" {
		t.Fatalf("unexpected demo identity: %+v", auth)
	}
}

func TestApplyListAndStatsFlow(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "POST", "/api/apply", map[string]any{
		"user_id": "demo-user-001",
		"job_ids": []string{"j1", "j2", "does-not-exist"},
	})
	if sr.Status != 200 {
		t.Fatalf("apply failed: status=%d message=%s", sr.Status, sr.Message)
	}

	var applied struct {
		AppliedCount int `json:"applied_count"`
		Applications []struct {
			JobID  string `json:"job_id"`
			Status string `json:"status"`
		} `json:"applications"`
	}
	if err := json.Unmarshal(sr.Data, &applied); err != nil {
		t.Fatalf("apply data: %v", err)
	}
	if applied.AppliedCount != 2 {
		t.Fatalf("expected 2 applications, got %d", applied.AppliedCount)
	}
	for _, a := range applied.Applications {
		if a.Status != "Applied" {
			t.Fatalf("fresh application status %q", a.Status)
		}
	}

	sr = doJSON(t, app, "GET", "/api/applications/demo-user-001", nil)
	if sr.Status != 200 {
		t.Fatalf("list failed: status=%d", sr.Status)
	}
	var list struct {
		Total int `json:"total"`
	}
	if err := json.Unmarshal(sr.Data, &list); err != nil {
		t.Fatalf("list data: %v", err)
	}
	if list.Total != 2 {
		t.Fatalf("expected 2 listed applications, got %d", list.Total)
	}

	sr = doJSON(t, app, "GET", "/api/stats/demo-user-001", nil)
	if sr.Status != 200 {
		t.Fatalf("stats failed: status=%d", sr.Status)
	}
	var stats struct {
		TotalApplied     int `json:"total_applied"`
		PortalsConnected int `json:"portals_connected"`
		JobsFoundToday   int `json:"jobs_found_today"`
	}
	if err := json.Unmarshal(sr.Data, &stats); err != nil {
		t.Fatalf("stats data: %v", err)
	}
	if stats.TotalApplied != 2 || stats.PortalsConnected != 4 || stats.JobsFoundToday != 50 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestProfileSaveAndGet(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "GET", "/api/profile/nobody", nil)
	if sr.Status != 404 {
		t.Fatalf("missing profile: expected 404, got %d", sr.Status)
	}

	profile := map[string]any{
		"user_id": "u-777", "name": "Ravi", "email": "ravi@example.com",
		"phone": "+91 9999999999", "location": "Pune", "experience": "4 years",
		"skills": []string{"Go", "Docker"}, "job_titles": []string{"Backend Engineer"},
		"salary_min": 12, "salary_max": 24, "job_type": "Full-time",
		"preferred_locations": []string{"Pune", "Remote"},
	}
	sr = doJSON(t, app, "POST", "/api/profile/save", profile)
	if sr.Status != 200 {
		t.Fatalf("save failed: status=%d message=%s", sr.Status, sr.Message)
	}

	sr = doJSON(t, app, "GET", "/api/profile/u-777", nil)
	if sr.Status != 200 {
		t.Fatalf("get failed: status=%d", sr.Status)
	}
	var got struct {
		Name     string `json:"name"`
		Location string `json:"location"`
	}
	if err := json.Unmarshal(sr.Data, &got); err != nil {
		t.Fatalf("profile data: %v", err)
	}
	if got.Name != "Ravi" || got.Location != "Pune" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestCoverLetterEndpoint(t *testing.T) {
	app := newTestApp(t)

	sr := doJSON(t, app, "POST", "/api/cover-letter", map[string]any{
		"job_title": "Backend Engineer", "company": "Acme",
		"skills": []string{"Go", "PostgreSQL"}, "experience": "4 years", "name": "Ravi",
	})
	if sr.Status != 200 {
		t.Fatalf("cover letter failed: status=%d", sr.Status)
	}

	var data struct {
		CoverLetter string `json:"cover_letter"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("cover letter data: %v", err)
	}
	if !strings.Contains(data.CoverLetter, "Dear Hiring Manager at Acme") {
		t.Fatalf("letter missing greeting:\n%s", data.CoverLetter)
	}
	if !strings.Contains(data.CoverLetter, "Warm regards,\nRavi") {
		t.Fatalf("letter missing signature:\n%s", data.CoverLetter)
	}
}

func TestResumeParseEndpoint(t *testing.T) {
	app := newTestApp(t)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", "resume.pdf")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write(bytes.Repeat([]byte("x"), 4096)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/api/resume/parse", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("resume parse: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d (message=%s)", sr.Status, sr.Message)
	}

	var data struct {
		Skills  []string `json:"skills"`
		Summary string   `json:"summary"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("resume data: %v", err)
	}
	if len(data.Skills) != 7 {
		t.Fatalf("expected 7 extracted skills, got %d", len(data.Skills))
	}
	if !strings.Contains(data.Summary, "resume.pdf") || !strings.Contains(data.Summary, "4KB") {
		t.Fatalf("unexpected summary: %s", data.Summary)
	}
}
