package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/dto"
	"github.com/Eursukkul/hustle-events/internal/models"
	"github.com/Eursukkul/hustle-events/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type mockProfileService struct {
	getFn     func(ctx context.Context, id string) (*models.UserProfile, *service.Notice, error)
	updateFn  func(ctx context.Context, id string, d draft.Profile) (*models.UserProfile, *service.Notice, error)
	membersFn func(ctx context.Context, userID string) ([]models.Membership, error)
}

func (m *mockProfileService) GetProfile(ctx context.Context, id string) (*models.UserProfile, *service.Notice, error) {
	return m.getFn(ctx, id)
}
func (m *mockProfileService) UpdateProfile(ctx context.Context, id string, d draft.Profile) (*models.UserProfile, *service.Notice, error) {
	return m.updateFn(ctx, id, d)
}
func (m *mockProfileService) ListMemberships(ctx context.Context, userID string) ([]models.Membership, error) {
	return m.membersFn(ctx, userID)
}

type mockEditor struct {
	beginFn   func(ctx context.Context, userID string) (*draft.Profile, error)
	currentFn func(ctx context.Context, userID string) (*draft.Profile, error)
	editFn    func(ctx context.Context, userID string, p draft.ProfilePatch) (*draft.Profile, error)
	cancelFn  func(ctx context.Context, userID string) error
	submitFn  func(ctx context.Context, userID string) (*service.SubmitResult, error)
}

func (m *mockEditor) Begin(ctx context.Context, userID string) (*draft.Profile, error) {
	return m.beginFn(ctx, userID)
}
func (m *mockEditor) Current(ctx context.Context, userID string) (*draft.Profile, error) {
	return m.currentFn(ctx, userID)
}
func (m *mockEditor) Edit(ctx context.Context, userID string, p draft.ProfilePatch) (*draft.Profile, error) {
	return m.editFn(ctx, userID, p)
}
func (m *mockEditor) Cancel(ctx context.Context, userID string) error {
	return m.cancelFn(ctx, userID)
}
func (m *mockEditor) Submit(ctx context.Context, userID string) (*service.SubmitResult, error) {
	return m.submitFn(ctx, userID)
}

func profileServer(profiles service.ProfileService, editor service.ProfileEditor) *echo.Echo {
	return newServer(func(e *echo.Echo) {
		NewProfileHandler(profiles, editor).RegisterRoutes(e.Group("/api/v1/profiles"))
	})
}

func jane() *models.UserProfile {
	return &models.UserProfile{
		ID:         "user-1",
		Name:       "Jane Dancer",
		Email:      "jane.dancer@example.com",
		Experience: models.ExperienceIntermediate,
		Preferences: models.Preferences{
			EmailNotifications: true,
			PublicProfile:      true,
		},
	}
}

// --- Tests ---

func TestGetProfile_Handler_WithNotice(t *testing.T) {
	expires := time.Date(2025, 7, 1, 12, 0, 3, 0, time.UTC)
	profiles := &mockProfileService{
		getFn: func(ctx context.Context, id string) (*models.UserProfile, *service.Notice, error) {
			return jane(), &service.Notice{Message: service.ProfileSavedMessage, ExpiresAt: expires}, nil
		},
	}

	rec := serve(profileServer(profiles, &mockEditor{}), http.MethodGet, "/api/v1/profiles/user-1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Jane Dancer", resp.Name)
	require.NotNil(t, resp.Notice)
	assert.Equal(t, "Profile updated successfully!", resp.Notice.Message)
	assert.True(t, resp.Preferences.PublicProfile)
}

func TestGetProfile_Handler_NotFound(t *testing.T) {
	profiles := &mockProfileService{
		getFn: func(ctx context.Context, id string) (*models.UserProfile, *service.Notice, error) {
			return nil, nil, service.ErrProfileNotFound
		},
	}

	rec := serve(profileServer(profiles, &mockEditor{}), http.MethodGet, "/api/v1/profiles/ghost", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateProfile_Handler_Success(t *testing.T) {
	profiles := &mockProfileService{
		updateFn: func(ctx context.Context, id string, d draft.Profile) (*models.UserProfile, *service.Notice, error) {
			p := jane()
			p.Bio = d.Bio
			return p, &service.Notice{Message: service.ProfileSavedMessage}, nil
		},
	}
	body := `{"name":"Jane Dancer","email":"jane.dancer@example.com","experience":"intermediate","bio":"Hi"}`

	rec := serve(profileServer(profiles, &mockEditor{}), http.MethodPut, "/api/v1/profiles/user-1", body)

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Hi", resp.Bio)
	require.NotNil(t, resp.Notice)
}

func TestUpdateProfile_Handler_InvalidEmail(t *testing.T) {
	body := `{"name":"Jane Dancer","email":"not-an-email","experience":"intermediate"}`

	rec := serve(profileServer(&mockProfileService{}, &mockEditor{}), http.MethodPut, "/api/v1/profiles/user-1", body)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Fields, "email")
}

func TestListMemberships_Handler(t *testing.T) {
	profiles := &mockProfileService{
		membersFn: func(ctx context.Context, userID string) ([]models.Membership, error) {
			return []models.Membership{{
				ID: 1, UserID: userID, EventID: 2,
				Role: models.RoleOrganizer, Status: models.StatusPublished,
				Event: &models.Event{ID: 2, Title: "LA Hustle Workshop", Date: "July 2, 2025"},
			}}, nil
		},
	}

	rec := serve(profileServer(profiles, &mockEditor{}), http.MethodGet, "/api/v1/profiles/user-1/events", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp []dto.MembershipResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "LA Hustle Workshop", resp[0].EventTitle)
	assert.Equal(t, "July 2, 2025", resp[0].EventDate)
	assert.Equal(t, models.RoleOrganizer, resp[0].Role)
}

func TestDraftLifecycle_Handler(t *testing.T) {
	d := draft.FromProfile(jane())
	var cancelled bool
	editor := &mockEditor{
		beginFn: func(ctx context.Context, userID string) (*draft.Profile, error) {
			return &d, nil
		},
		editFn: func(ctx context.Context, userID string, p draft.ProfilePatch) (*draft.Profile, error) {
			next := d.Apply(p)
			return &next, nil
		},
		cancelFn: func(ctx context.Context, userID string) error {
			cancelled = true
			return nil
		},
	}
	e := profileServer(&mockProfileService{}, editor)

	rec := serve(e, http.MethodPost, "/api/v1/profiles/user-1/draft", "")
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(e, http.MethodPatch, "/api/v1/profiles/user-1/draft", `{"location":"Brooklyn, NY","preferences":{"sms_notifications":true}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	var got draft.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Brooklyn, NY", got.Location)
	assert.Equal(t, "Jane Dancer", got.Name)
	assert.Equal(t, models.Preferences{SMSNotifications: true}, got.Preferences)

	rec = serve(e, http.MethodDelete, "/api/v1/profiles/user-1/draft", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, cancelled)
}

func TestCurrentDraft_Handler_NotFound(t *testing.T) {
	editor := &mockEditor{
		currentFn: func(ctx context.Context, userID string) (*draft.Profile, error) {
			return nil, service.ErrDraftNotFound
		},
	}

	rec := serve(profileServer(&mockProfileService{}, editor), http.MethodGet, "/api/v1/profiles/user-1/draft", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSubmitEdit_Handler(t *testing.T) {
	editor := &mockEditor{
		submitFn: func(ctx context.Context, userID string) (*service.SubmitResult, error) {
			return &service.SubmitResult{Profile: jane(), Notice: &service.Notice{Message: service.ProfileSavedMessage}}, nil
		},
	}

	rec := serve(profileServer(&mockProfileService{}, editor), http.MethodPost, "/api/v1/profiles/user-1/draft/submit", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	var resp dto.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Notice)
	assert.Equal(t, service.ProfileSavedMessage, resp.Notice.Message)
}

func TestSubmitEdit_Handler_InProgress(t *testing.T) {
	editor := &mockEditor{
		submitFn: func(ctx context.Context, userID string) (*service.SubmitResult, error) {
			return nil, service.ErrSubmissionInProgress
		},
	}

	rec := serve(profileServer(&mockProfileService{}, editor), http.MethodPost, "/api/v1/profiles/user-1/draft/submit", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
