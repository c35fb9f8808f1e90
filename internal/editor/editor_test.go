package editor

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bgv/portfolio-console/internal/types"
)

// fakeBackend simulates a resource backend for the skills collection.
type fakeBackend struct {
	records   []types.Skill
	fetchErr  error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
	nextID      int
}

func (f *fakeBackend) fetch(_ context.Context) ([]types.Skill, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]types.Skill, len(f.records))
	copy(out, f.records)
	return out, nil
}

func (f *fakeBackend) create(_ context.Context, s types.Skill) (types.Skill, error) {
	f.createCalls++
	if f.createErr != nil {
		return types.Skill{}, f.createErr
	}
	f.nextID++
	s.ID = string(rune('a' + f.nextID - 1))
	f.records = append(f.records, s)
	return s, nil
}

func (f *fakeBackend) update(_ context.Context, id string, s types.Skill) (types.Skill, error) {
	f.updateCalls++
	if f.updateErr != nil {
		return types.Skill{}, f.updateErr
	}
	s.ID = id
	for i, r := range f.records {
		if r.ID == id {
			f.records[i] = s
		}
	}
	return s, nil
}

func (f *fakeBackend) delete(_ context.Context, id string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i, r := range f.records {
		if r.ID == id {
			f.records = append(f.records[:i], f.records[i+1:]...)
			break
		}
	}
	return nil
}

func (f *fakeBackend) descriptor() Descriptor[types.Skill] {
	return Descriptor[types.Skill]{
		Name:     "skill",
		Fetch:    f.fetch,
		Create:   f.create,
		Update:   f.update,
		Delete:   f.delete,
		Validate: func(s types.Skill) map[string]string { return types.FieldErrors(s) },
	}
}

func seededBackend() *fakeBackend {
	return &fakeBackend{
		records: []types.Skill{
			{ID: "s1", Name: "Go", Level: types.LevelAdvanced, Category: "Languages"},
			{ID: "s2", Name: "Python", Level: types.LevelIntermediate, Category: "Languages"},
			{ID: "s3", Name: "PostgreSQL", Level: types.LevelIntermediate, Category: "Databases"},
		},
	}
}

func loadedEditor(t *testing.T, backend *fakeBackend) *Editor[types.Skill] {
	t.Helper()
	ed := New(backend.descriptor(), zerolog.Nop())
	require.NoError(t, ed.Load(context.Background()))
	return ed
}

func validSkill() types.Skill {
	return types.Skill{Name: "Docker", Level: types.LevelBeginner, Category: "Tools"}
}

func TestNew_StartsViewingUnloaded(t *testing.T) {
	ed := New(seededBackend().descriptor(), zerolog.Nop())

	assert.Equal(t, Viewing, ed.Mode())
	assert.False(t, ed.Loaded())
	assert.Empty(t, ed.Records())
}

func TestLoad_PopulatesRecords(t *testing.T) {
	ed := loadedEditor(t, seededBackend())

	assert.True(t, ed.Loaded())
	require.Len(t, ed.Records(), 3)
	assert.Equal(t, "s1", ed.Records()[0].ID)
}

func TestLoad_InitialFailureSticky(t *testing.T) {
	backend := &fakeBackend{fetchErr: assert.AnError}
	ed := New(backend.descriptor(), zerolog.Nop())

	err := ed.Load(context.Background())
	require.Error(t, err)
	assert.False(t, ed.Loaded())

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, BannerError, banner.Kind)
	assert.True(t, banner.Sticky)

	// The editor is unusable until a reload succeeds.
	assert.ErrorIs(t, ed.BeginAdd(), ErrNotLoaded)

	// Retry succeeds and replaces the sticky banner.
	backend.fetchErr = nil
	backend.records = seededBackend().records
	require.NoError(t, ed.Load(context.Background()))
	assert.True(t, ed.Loaded())
	assert.Nil(t, ed.Banner())
}

func TestLoad_RefreshFailureKeepsOldRecords(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	backend.fetchErr = assert.AnError
	require.Error(t, ed.Load(context.Background()))

	assert.True(t, ed.Loaded())
	assert.Len(t, ed.Records(), 3)

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.False(t, banner.Sticky)
}

func TestSubmit_CreateAppendsAndClosesForm(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	require.NoError(t, ed.BeginAdd())
	assert.Equal(t, Adding, ed.Mode())

	require.NoError(t, ed.Submit(context.Background(), validSkill()))

	assert.Equal(t, Viewing, ed.Mode())
	records := ed.Records()
	require.Len(t, records, 4)
	// Server-canonical record at the end, with its assigned id.
	assert.Equal(t, "Docker", records[3].Name)
	assert.NotEmpty(t, records[3].ID)

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, BannerSuccess, banner.Kind)
	assert.Equal(t, "skill added successfully", banner.Message)
}

func TestSubmit_UpdateReplacesExactlyOne(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	form, err := ed.BeginEdit("s2")
	require.NoError(t, err)
	assert.Equal(t, Editing, ed.Mode())
	assert.Equal(t, "s2", ed.EditingID())
	assert.Equal(t, "Python", form.Name)

	form.Level = types.LevelExpert
	require.NoError(t, ed.Submit(context.Background(), form))

	records := ed.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "s1", records[0].ID)
	assert.Equal(t, types.LevelAdvanced, records[0].Level)
	assert.Equal(t, "s2", records[1].ID)
	assert.Equal(t, types.LevelExpert, records[1].Level)
	assert.Equal(t, "s3", records[2].ID)
	assert.Equal(t, Viewing, ed.Mode())
	assert.Empty(t, ed.EditingID())
}

func TestBeginEdit_UnknownID(t *testing.T) {
	ed := loadedEditor(t, seededBackend())

	_, err := ed.BeginEdit("missing")
	assert.ErrorIs(t, err, ErrUnknownID)
	assert.Equal(t, Viewing, ed.Mode())
}

func TestSubmit_ValidationBlocksNetworkCall(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	require.NoError(t, ed.BeginAdd())
	err := ed.Submit(context.Background(), types.Skill{Name: "Docker"})
	require.ErrorIs(t, err, ErrInvalid)

	// No API call happened and the form stays open with the annotations.
	assert.Zero(t, backend.createCalls)
	assert.Equal(t, Adding, ed.Mode())
	fields := ed.FieldErrors()
	assert.Contains(t, fields, "level")
	assert.Contains(t, fields, "category")
	assert.NotContains(t, fields, "name")
	assert.Len(t, ed.Records(), 3)
}

func TestSubmit_APIFailureKeepsFormOpen(t *testing.T) {
	backend := seededBackend()
	backend.createErr = assert.AnError
	ed := loadedEditor(t, backend)

	require.NoError(t, ed.BeginAdd())
	require.Error(t, ed.Submit(context.Background(), validSkill()))

	assert.Equal(t, Adding, ed.Mode())
	assert.Len(t, ed.Records(), 3)

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, BannerError, banner.Kind)
	assert.False(t, banner.Sticky)

	// Retry after the backend recovers.
	backend.createErr = nil
	require.NoError(t, ed.Submit(context.Background(), validSkill()))
	assert.Equal(t, Viewing, ed.Mode())
	assert.Len(t, ed.Records(), 4)
}

func TestSubmit_WithoutForm(t *testing.T) {
	ed := loadedEditor(t, seededBackend())
	assert.ErrorIs(t, ed.Submit(context.Background(), validSkill()), ErrNoForm)
}

func TestCancel_DiscardsForm(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	_, err := ed.BeginEdit("s1")
	require.NoError(t, err)
	ed.Cancel()

	assert.Equal(t, Viewing, ed.Mode())
	assert.Empty(t, ed.EditingID())
	assert.Zero(t, backend.updateCalls)
}

func TestDelete_RemovesInPlace(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	require.NoError(t, ed.Delete(context.Background(), "s2", true))

	records := ed.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "s1", records[0].ID)
	assert.Equal(t, "s3", records[1].ID)

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, "skill deleted successfully", banner.Message)
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	assert.ErrorIs(t, ed.Delete(context.Background(), "s2", false), ErrNotConfirmed)
	assert.Zero(t, backend.deleteCalls)
	assert.Len(t, ed.Records(), 3)
}

func TestDelete_RejectedOutsideViewing(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	require.NoError(t, ed.BeginAdd())
	err := ed.Delete(context.Background(), "s2", true)
	assert.Error(t, err)
	assert.Zero(t, backend.deleteCalls)
}

func TestDelete_UnknownID(t *testing.T) {
	ed := loadedEditor(t, seededBackend())
	assert.ErrorIs(t, ed.Delete(context.Background(), "missing", true), ErrUnknownID)
}

func TestDelete_APIFailureLeavesCollectionIntact(t *testing.T) {
	backend := seededBackend()
	backend.deleteErr = assert.AnError
	ed := loadedEditor(t, backend)

	require.Error(t, ed.Delete(context.Background(), "s2", true))
	assert.Len(t, ed.Records(), 3)
}

func TestSubmit_BusyRejectsConcurrentMutation(t *testing.T) {
	backend := seededBackend()

	// Simulate a second mutation arriving while the first one's request is
	// still on the wire.
	var ed *Editor[types.Skill]
	var racedErr error
	desc := backend.descriptor()
	desc.Create = func(ctx context.Context, s types.Skill) (types.Skill, error) {
		racedErr = ed.Submit(ctx, s)
		return backend.create(ctx, s)
	}
	ed = New(desc, zerolog.Nop())
	require.NoError(t, ed.Load(context.Background()))

	require.NoError(t, ed.BeginAdd())
	require.NoError(t, ed.Submit(context.Background(), validSkill()))
	assert.ErrorIs(t, racedErr, ErrBusy)
}

func TestBanner_ExpiresAfterTTL(t *testing.T) {
	backend := seededBackend()
	ed := loadedEditor(t, backend)

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ed.SetClock(func() time.Time { return current })

	require.NoError(t, ed.BeginAdd())
	require.NoError(t, ed.Submit(context.Background(), validSkill()))
	require.NotNil(t, ed.Banner())

	current = current.Add(BannerTTL - time.Millisecond)
	assert.NotNil(t, ed.Banner())

	current = current.Add(2 * time.Millisecond)
	assert.Nil(t, ed.Banner())
}

func TestBanner_StickySurvivesTTL(t *testing.T) {
	backend := &fakeBackend{fetchErr: assert.AnError}
	ed := New(backend.descriptor(), zerolog.Nop())

	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	ed.SetClock(func() time.Time { return current })

	require.Error(t, ed.Load(context.Background()))
	current = current.Add(time.Hour)

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.True(t, banner.Sticky)
}

func TestBanner_UsesAPIUserMessage(t *testing.T) {
	backend := seededBackend()
	backend.createErr = &userMessageErr{msg: "session expired, please log in"}
	ed := loadedEditor(t, backend)

	require.NoError(t, ed.BeginAdd())
	require.Error(t, ed.Submit(context.Background(), validSkill()))

	banner := ed.Banner()
	require.NotNil(t, banner)
	assert.Equal(t, "session expired, please log in", banner.Message)
}

// userMessageErr mimics the API error's user-facing message.
type userMessageErr struct{ msg string }

func (e *userMessageErr) Error() string       { return e.msg }
func (e *userMessageErr) UserMessage() string { return e.msg }

func TestBeginAdd_NilCreateRejected(t *testing.T) {
	desc := Descriptor[types.Profile]{
		Name: "profile",
		Fetch: func(_ context.Context) ([]types.Profile, error) {
			return []types.Profile{{ID: "p1", Name: "Jane", Title: "Engineer", Email: "jane@example.com"}}, nil
		},
	}
	ed := New(desc, zerolog.Nop())
	require.NoError(t, ed.Load(context.Background()))

	err := ed.BeginAdd()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not support create")
}

func TestDelete_NilDeleteRejected(t *testing.T) {
	desc := Descriptor[types.Profile]{
		Name: "profile",
		Fetch: func(_ context.Context) ([]types.Profile, error) {
			return []types.Profile{{ID: "p1", Name: "Jane", Title: "Engineer", Email: "jane@example.com"}}, nil
		},
	}
	ed := New(desc, zerolog.Nop())
	require.NoError(t, ed.Load(context.Background()))

	err := ed.Delete(context.Background(), "p1", true)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does not support delete")
}

func TestRecords_ReturnsCopy(t *testing.T) {
	ed := loadedEditor(t, seededBackend())

	records := ed.Records()
	records[0].Name = "mutated"

	assert.Equal(t, "Go", ed.Records()[0].Name)
}
