package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"portfolio-api/internal/domain"
	"portfolio-api/internal/repository"
)

type mockProjectRepo struct {
	projects []domain.Project
	err      error
}

func (m *mockProjectRepo) ListActive(_ context.Context) ([]domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	active := []domain.Project{}
	for _, p := range m.projects {
		if p.IsActive {
			active = append(active, p)
		}
	}
	return active, nil
}

func (m *mockProjectRepo) ListActiveByCategory(_ context.Context, category string) ([]domain.Project, error) {
	if m.err != nil {
		return nil, m.err
	}
	active := []domain.Project{}
	for _, p := range m.projects {
		if p.IsActive && p.Category == category {
			active = append(active, p)
		}
	}
	return active, nil
}

func (m *mockProjectRepo) GetByID(_ context.Context, id string) (domain.Project, error) {
	if m.err != nil {
		return domain.Project{}, m.err
	}
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return domain.Project{}, err
	}
	for _, p := range m.projects {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return domain.Project{}, mongo.ErrNoDocuments
}

func (m *mockProjectRepo) Create(_ context.Context, project domain.Project) error {
	if m.err != nil {
		return m.err
	}
	m.projects = append(m.projects, project)
	return nil
}

func (m *mockProjectRepo) Update(_ context.Context, id string, update repository.ProjectUpdate) (domain.Project, error) {
	if m.err != nil {
		return domain.Project{}, m.err
	}
	for i, p := range m.projects {
		if p.ID.Hex() == id {
			p.Title = update.Title
			p.Description = update.Description
			p.Category = update.Category
			p.ImageURL = update.ImageURL
			p.Technologies = update.Technologies
			p.GithubURL = update.GithubURL
			p.LiveURL = update.LiveURL
			if update.IsActive != nil {
				p.IsActive = *update.IsActive
			}
			p.UpdatedAt = time.Now().UTC()
			m.projects[i] = p
			return p, nil
		}
	}
	return domain.Project{}, mongo.ErrNoDocuments
}

func (m *mockProjectRepo) Delete(_ context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	for i, p := range m.projects {
		if p.ID.Hex() == id {
			m.projects = append(m.projects[:i], m.projects[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func setupProjectRouter(repo *mockProjectRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewProjectHandler(zap.NewNop(), repo)
	r.GET("/api/projects", h.ListProjects)
	r.GET("/api/projects/category/:category", h.ListProjectsByCategory)
	r.GET("/api/projects/:id", h.GetProjectByID)
	r.POST("/api/projects", h.CreateProject)
	r.PUT("/api/projects/:id", h.UpdateProject)
	r.DELETE("/api/projects/:id", h.DeleteProject)
	return r
}

func newStoredProject(title, category string, active bool) domain.Project {
	now := time.Now().UTC()
	return domain.Project{
		ID:          primitive.NewObjectID(),
		Title:       title,
		Description: "desc",
		Category:    category,
		ImageURL:    "https://example.com/p.png",
		IsActive:    active,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestListProjects_FiltersInactive(t *testing.T) {
	repo := &mockProjectRepo{projects: []domain.Project{
		newStoredProject("Visible", "Web", true),
		newStoredProject("Hidden", "Web", false),
	}}
	r := setupProjectRouter(repo)

	rec := performRequest(r, http.MethodGet, "/api/projects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var listed []domain.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &listed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(listed) != 1 || listed[0].Title != "Visible" {
		t.Fatalf("expected only the active project, got %+v", listed)
	}
}

func TestListProjects_EmptyIsJSONArray(t *testing.T) {
	r := setupProjectRouter(&mockProjectRepo{})

	rec := performRequest(r, http.MethodGet, "/api/projects", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec.Body.String() != "[]" {
		t.Fatalf("expected empty JSON array, got %q", rec.Body.String())
	}
}

func TestCreateProject_DefaultsActive(t *testing.T) {
	repo := &mockProjectRepo{}
	r := setupProjectRouter(repo)

	rec := performRequest(r, http.MethodPost, "/api/projects", map[string]any{
		"title":        "Portfolio",
		"description":  "Personal website",
		"category":     "Web",
		"imageUrl":     "https://example.com/shot.png",
		"technologies": []string{"Go", "MongoDB"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created domain.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("expected isActive to default to true")
	}
	if created.ID.IsZero() {
		t.Fatalf("expected a generated id")
	}
	if len(repo.projects) != 1 {
		t.Fatalf("expected one persisted project, got %d", len(repo.projects))
	}
}

func TestCreateProject_MissingRequired(t *testing.T) {
	repo := &mockProjectRepo{}
	r := setupProjectRouter(repo)

	rec := performRequest(r, http.MethodPost, "/api/projects", map[string]any{
		"title": "No description",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if len(repo.projects) != 0 {
		t.Fatalf("expected nothing persisted after validation failure")
	}
}

func TestGetProjectByID_NotFound(t *testing.T) {
	r := setupProjectRouter(&mockProjectRepo{})

	rec := performRequest(r, http.MethodGet, "/api/projects/"+primitive.NewObjectID().Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestGetProjectByID_MalformedID(t *testing.T) {
	r := setupProjectRouter(&mockProjectRepo{})

	rec := performRequest(r, http.MethodGet, "/api/projects/not-an-id", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 for malformed id, got %d", rec.Code)
	}
}

func TestUpdateProject_NotFound(t *testing.T) {
	repo := &mockProjectRepo{projects: []domain.Project{newStoredProject("Kept", "Web", true)}}
	r := setupProjectRouter(repo)

	rec := performRequest(r, http.MethodPut, "/api/projects/"+primitive.NewObjectID().Hex(), map[string]any{
		"title":       "Renamed",
		"description": "desc",
		"category":    "Web",
		"imageUrl":    "https://example.com/p.png",
	})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if repo.projects[0].Title != "Kept" {
		t.Fatalf("expected store to be unchanged, got %+v", repo.projects[0])
	}
}

func TestUpdateProject_ReplacesFields(t *testing.T) {
	stored := newStoredProject("Old", "Web", true)
	repo := &mockProjectRepo{projects: []domain.Project{stored}}
	r := setupProjectRouter(repo)

	rec := performRequest(r, http.MethodPut, "/api/projects/"+stored.ID.Hex(), map[string]any{
		"title":       "New title",
		"description": "New description",
		"category":    "Mobile",
		"imageUrl":    "https://example.com/new.png",
		"isActive":    false,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var updated domain.Project
	if err := json.Unmarshal(rec.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if updated.Title != "New title" || updated.Category != "Mobile" || updated.IsActive {
		t.Fatalf("unexpected updated project: %+v", updated)
	}
}

func TestDeleteProject_RemovesDocument(t *testing.T) {
	stored := newStoredProject("Doomed", "Web", true)
	repo := &mockProjectRepo{projects: []domain.Project{stored}}
	r := setupProjectRouter(repo)

	rec := performRequest(r, http.MethodDelete, "/api/projects/"+stored.ID.Hex(), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodGet, "/api/projects/"+stored.ID.Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 after delete, got %d", rec.Code)
	}
}

func TestDeleteProject_NotFound(t *testing.T) {
	r := setupProjectRouter(&mockProjectRepo{})

	rec := performRequest(r, http.MethodDelete, "/api/projects/"+primitive.NewObjectID().Hex(), nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestListProjects_StoreError(t *testing.T) {
	r := setupProjectRouter(&mockProjectRepo{err: errors.New("connection reset")})

	rec := performRequest(r, http.MethodGet, "/api/projects", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
	if rec.Body.String() == "" || rec.Body.String() == "connection reset" {
		t.Fatalf("expected a generic error body, got %q", rec.Body.String())
	}
}
