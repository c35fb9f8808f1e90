package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgv/portfolio-console/internal/types"
)

// fakeTokens is a TokenSource recording evictions.
type fakeTokens struct {
	token   string
	evicted bool
}

func (f *fakeTokens) Token() string { return f.token }
func (f *fakeTokens) Evict()        { f.evicted = true }

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, Options{Tokens: tokens, Logger: zerolog.Nop()})
}

func writeEnvelope(w http.ResponseWriter, statusCode int, status string, data any, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  status,
		"data":    data,
		"message": message,
	})
}

func TestListSkills_UnwrapsEnvelope(t *testing.T) {
	skills := []types.Skill{
		{ID: uuid.NewString(), Name: "Go", Level: types.LevelAdvanced, Category: "Languages"},
		{ID: uuid.NewString(), Name: "PostgreSQL", Level: types.LevelIntermediate, Category: "Databases"},
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/skills", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "success", skills, "")
	}, nil)

	got, err := client.ListSkills(context.Background())
	require.NoError(t, err)
	assert.Equal(t, skills, got)
}

func TestDo_InjectsBearerToken(t *testing.T) {
	tokens := &fakeTokens{token: "tok-123"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "success", []types.Skill{}, "")
	}, tokens)

	_, err := client.ListSkills(context.Background())
	require.NoError(t, err)
}

func TestDo_NoTokenNoHeader(t *testing.T) {
	tokens := &fakeTokens{token: ""}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeEnvelope(w, http.StatusOK, "success", []types.Skill{}, "")
	}, tokens)

	_, err := client.ListSkills(context.Background())
	require.NoError(t, err)
}

func TestDo_UnauthorizedEvictsSession(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "error", nil, "token expired")
	}, tokens)

	_, err := client.ListSkills(context.Background())
	require.Error(t, err)
	assert.True(t, tokens.evicted)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsUnauthorized())
	assert.Equal(t, "session expired, please log in", apiErr.UserMessage())
}

func TestDo_ErrorStatusWithHTTP200(t *testing.T) {
	// The envelope status field is authoritative even when the transport
	// status is 2xx.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "error", nil, "something broke")
	}, nil)

	_, err := client.ListSkills(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "something broke", apiErr.Message)
	assert.Equal(t, "something broke", apiErr.UserMessage())
}

func TestDo_NonOKWithoutEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gateway exploded", http.StatusBadGateway)
	}, nil)

	_, err := client.ListSkills(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestDo_TransportFailure(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", Options{Logger: zerolog.Nop()})

	_, err := client.ListSkills(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsTransport())
	assert.Equal(t, "could not reach the server, please try again", apiErr.UserMessage())
}

func TestDo_FieldDetailDecoded(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusBadRequest, "error",
			map[string]string{"name": "name is required"}, "validation failed")
	}, nil)

	_, err := client.CreateSkill(context.Background(), types.Skill{})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "name is required", apiErr.Fields["name"])
}

func TestCreateSkill_ReturnsServerCanonicalRecord(t *testing.T) {
	assigned := uuid.NewString()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/skills", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var skill types.Skill
		require.NoError(t, json.NewDecoder(r.Body).Decode(&skill))
		skill.ID = assigned
		writeEnvelope(w, http.StatusCreated, "success", skill, "skill created")
	}, nil)

	created, err := client.CreateSkill(context.Background(), types.Skill{
		Name: "Go", Level: types.LevelAdvanced, Category: "Languages",
	})
	require.NoError(t, err)
	assert.Equal(t, assigned, created.ID)
	assert.Equal(t, "Go", created.Name)
}

func TestUpdateProject_PutsToIDPath(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/projects/p-1", r.URL.Path)

		var p types.Project
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		writeEnvelope(w, http.StatusOK, "success", p, "")
	}, nil)

	updated, err := client.UpdateProject(context.Background(), "p-1", types.Project{
		ID: "p-1", Name: "CLI", Description: "terminal client",
	})
	require.NoError(t, err)
	assert.Equal(t, "CLI", updated.Name)
}

func TestDeleteEducation_SendsDelete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/education/e-9", r.URL.Path)
		writeEnvelope(w, http.StatusOK, "success", nil, "deleted")
	}, nil)

	assert.NoError(t, client.DeleteEducation(context.Background(), "e-9"))
}

func TestLogin_DecodesFlattenedPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)

		var req types.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "admin", req.Username)
		assert.Equal(t, "secret", req.Password)

		writeEnvelope(w, http.StatusOK, "success", map[string]string{
			"token":       "abc.def.ghi",
			"userId":      "u-1",
			"username":    "admin",
			"email":       "admin@example.com",
			"phoneNumber": "555-0100",
			"role":        "admin",
		}, "welcome back")
	}, nil)

	result, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", result.Token)
	assert.Equal(t, "admin", result.User.Username)
	assert.Equal(t, "welcome back", result.Message)
}

func TestLogin_BadCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, "error", nil, "invalid credentials")
	}, nil)

	result, err := client.Login(context.Background(), "admin", "wrong")
	assert.Nil(t, result)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestErrorUserMessage_Taxonomy(t *testing.T) {
	assert.Equal(t, "could not reach the server, please try again",
		(&Error{Cause: assert.AnError}).UserMessage())
	assert.Equal(t, "session expired, please log in",
		(&Error{StatusCode: http.StatusUnauthorized}).UserMessage())
	assert.Equal(t, "insufficient permissions",
		(&Error{StatusCode: http.StatusForbidden}).UserMessage())
	assert.Equal(t, "resource not found",
		(&Error{StatusCode: http.StatusNotFound}).UserMessage())
	assert.Equal(t, "boom",
		(&Error{StatusCode: http.StatusInternalServerError, Message: "boom"}).UserMessage())
	assert.Equal(t, "request failed (HTTP 500)",
		(&Error{StatusCode: http.StatusInternalServerError}).UserMessage())
}

func TestErrorUnwrap(t *testing.T) {
	cause := assert.AnError
	err := &Error{Message: "request failed", Cause: cause}
	assert.ErrorIs(t, err, cause)
}
