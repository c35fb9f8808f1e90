// Package editor implements the resource editor shared by all five
// portfolio resources. One generic implementation replaces five
// near-identical copies: a Descriptor supplies the resource-specific CRUD
// calls and validator, and Editor runs the Viewing/Adding/Editing state
// machine over them.
package editor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// BannerTTL is how long a transient success or error banner stays visible.
const BannerTTL = 3 * time.Second

// Record is any resource with an opaque, stable, server-assigned id.
type Record interface {
	RecordID() string
}

// Mode is the editor's main state.
type Mode int

const (
	// Viewing shows the list; the initial state.
	Viewing Mode = iota
	// Adding shows the create form.
	Adding
	// Editing shows the update form for one record.
	Editing
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Adding:
		return "adding"
	case Editing:
		return "editing"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// BannerKind distinguishes success from error banners.
type BannerKind int

const (
	// BannerSuccess reports a committed mutation.
	BannerSuccess BannerKind = iota
	// BannerError reports a failed operation.
	BannerError
)

// Banner is a transient message overlaid on the editor. Sticky banners do
// not auto-dismiss; they mark a failed initial load that blocks the editor
// until a reload succeeds.
type Banner struct {
	Kind    BannerKind
	Message string
	Sticky  bool

	expiresAt time.Time
}

// Editor state errors.
var (
	// ErrBusy rejects a mutation while another one is in flight.
	ErrBusy = errors.New("another request is in flight")
	// ErrNotLoaded rejects form entry before a successful load.
	ErrNotLoaded = errors.New("records are not loaded")
	// ErrUnknownID rejects edits of ids absent from the collection.
	ErrUnknownID = errors.New("no record with that id")
	// ErrNoForm rejects a submit outside Adding or Editing.
	ErrNoForm = errors.New("no form is open")
	// ErrNotConfirmed rejects a delete without explicit confirmation.
	ErrNotConfirmed = errors.New("delete requires confirmation")
	// ErrInvalid rejects a submit that failed client-side validation; the
	// per-field messages are available from FieldErrors.
	ErrInvalid = errors.New("validation failed")
)

// Descriptor wires an Editor to one resource type. Create and Delete may be
// nil for singleton resources (the profile), in which case the corresponding
// transitions are rejected.
type Descriptor[T Record] struct {
	// Name labels the resource in messages, e.g. "skill".
	Name string

	Fetch  func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, record T) (T, error)
	Update func(ctx context.Context, id string, record T) (T, error)
	Delete func(ctx context.Context, id string) error

	// Validate returns one message per invalid field; nil means valid.
	Validate func(record T) map[string]string
}

// Editor is the state machine for one resource collection. It is
// single-writer: the UI serializes operations, and the in-flight flag
// rejects a second concurrent mutation rather than queueing it.
type Editor[T Record] struct {
	desc        Descriptor[T]
	records     []T
	loaded      bool
	mode        Mode
	editingID   string
	banner      *Banner
	fieldErrors map[string]string
	inFlight    bool
	now         func() time.Time
	logger      zerolog.Logger
}

// New creates an editor in Viewing mode with an empty, unloaded collection.
func New[T Record](desc Descriptor[T], logger zerolog.Logger) *Editor[T] {
	return &Editor[T]{
		desc:   desc,
		now:    time.Now,
		logger: logger.With().Str("resource", desc.Name).Logger(),
	}
}

// SetClock replaces the banner clock. Tests use it to step time.
func (e *Editor[T]) SetClock(now func() time.Time) {
	e.now = now
}

// Mode returns the current main state.
func (e *Editor[T]) Mode() Mode { return e.mode }

// EditingID returns the id being edited, or "" outside Editing mode.
func (e *Editor[T]) EditingID() string { return e.editingID }

// Loaded reports whether the collection has been fetched successfully at
// least once.
func (e *Editor[T]) Loaded() bool { return e.loaded }

// Busy reports whether a request is in flight.
func (e *Editor[T]) Busy() bool { return e.inFlight }

// Records returns the collection in display order. The slice is a copy;
// insertion order is stable within a session.
func (e *Editor[T]) Records() []T {
	out := make([]T, len(e.records))
	copy(out, e.records)
	return out
}

// FieldErrors returns the per-field messages from the last failed
// validation, or nil.
func (e *Editor[T]) FieldErrors() map[string]string { return e.fieldErrors }

// Banner returns the active banner. Expired transient banners are dropped;
// sticky banners survive until a successful reload replaces them.
func (e *Editor[T]) Banner() *Banner {
	if e.banner == nil {
		return nil
	}
	if !e.banner.Sticky && e.now().After(e.banner.expiresAt) {
		e.banner = nil
		return nil
	}
	return e.banner
}

// Load fetches the collection. On failure with nothing loaded yet, the
// error banner is sticky and the editor stays unusable until a retry
// succeeds; on failure after a successful load, the old records remain
// visible and the banner auto-dismisses.
func (e *Editor[T]) Load(ctx context.Context) error {
	if e.inFlight {
		return ErrBusy
	}
	e.inFlight = true
	defer func() { e.inFlight = false }()

	records, err := e.desc.Fetch(ctx)
	if err != nil {
		e.logger.Debug().Err(err).Msg("load failed")
		e.setBanner(BannerError, messageFor(err, "failed to load "+e.desc.Name+" list"), !e.loaded)
		return err
	}

	e.records = records
	e.loaded = true
	e.banner = nil
	return nil
}

// BeginAdd opens the create form. Only valid from Viewing with a loaded
// collection.
func (e *Editor[T]) BeginAdd() error {
	if !e.loaded {
		return ErrNotLoaded
	}
	if e.desc.Create == nil {
		return fmt.Errorf("%s does not support create", e.desc.Name)
	}
	e.mode = Adding
	e.fieldErrors = nil
	return nil
}

// BeginEdit opens the update form for the record with the given id and
// returns a copy of its current field values for pre-population. The form
// is never opened empty: an unknown id is an error.
func (e *Editor[T]) BeginEdit(id string) (T, error) {
	var zero T
	if !e.loaded {
		return zero, ErrNotLoaded
	}
	for _, r := range e.records {
		if r.RecordID() == id {
			e.mode = Editing
			e.editingID = id
			e.fieldErrors = nil
			return r, nil
		}
	}
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownID, e.desc.Name, id)
}

// Cancel discards the open form without any API call.
func (e *Editor[T]) Cancel() {
	e.mode = Viewing
	e.editingID = ""
	e.fieldErrors = nil
}

// Submit commits the open form. Validation failures block the network call
// entirely and keep the form open with every invalid field annotated. API
// failures also keep the form open (and the caller's input) so the user can
// retry. On success the local collection is updated in place with the
// server's returned representation (append for create, replace-by-id for
// update) and the editor returns to Viewing.
func (e *Editor[T]) Submit(ctx context.Context, record T) error {
	if e.mode != Adding && e.mode != Editing {
		return ErrNoForm
	}
	if e.inFlight {
		return ErrBusy
	}

	if e.desc.Validate != nil {
		if fields := e.desc.Validate(record); len(fields) > 0 {
			e.fieldErrors = fields
			return fmt.Errorf("%w: %d invalid field(s)", ErrInvalid, len(fields))
		}
	}
	e.fieldErrors = nil

	e.inFlight = true
	defer func() { e.inFlight = false }()

	switch e.mode {
	case Adding:
		created, err := e.desc.Create(ctx, record)
		if err != nil {
			e.submitFailed(err)
			return err
		}
		e.records = append(e.records, created)
		e.setBanner(BannerSuccess, e.desc.Name+" added successfully", false)
	case Editing:
		updated, err := e.desc.Update(ctx, e.editingID, record)
		if err != nil {
			e.submitFailed(err)
			return err
		}
		for i, r := range e.records {
			if r.RecordID() == e.editingID {
				e.records[i] = updated
				break
			}
		}
		e.setBanner(BannerSuccess, e.desc.Name+" updated successfully", false)
	}

	e.mode = Viewing
	e.editingID = ""
	return nil
}

// Delete removes a record after explicit confirmation. Only valid from
// Viewing. On failure the collection is unchanged.
func (e *Editor[T]) Delete(ctx context.Context, id string, confirmed bool) error {
	if e.mode != Viewing {
		return fmt.Errorf("cannot delete while %s", e.mode)
	}
	if !e.loaded {
		return ErrNotLoaded
	}
	if e.desc.Delete == nil {
		return fmt.Errorf("%s does not support delete", e.desc.Name)
	}
	if !confirmed {
		return ErrNotConfirmed
	}
	if e.inFlight {
		return ErrBusy
	}

	idx := -1
	for i, r := range e.records {
		if r.RecordID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s %q", ErrUnknownID, e.desc.Name, id)
	}

	e.inFlight = true
	defer func() { e.inFlight = false }()

	if err := e.desc.Delete(ctx, id); err != nil {
		e.logger.Debug().Err(err).Str("id", id).Msg("delete failed")
		e.setBanner(BannerError, messageFor(err, "failed to delete "+e.desc.Name), false)
		return err
	}

	e.records = append(e.records[:idx], e.records[idx+1:]...)
	e.setBanner(BannerSuccess, e.desc.Name+" deleted successfully", false)
	return nil
}

// submitFailed records a failed submit: mode and form input are untouched,
// only the banner changes.
func (e *Editor[T]) submitFailed(err error) {
	e.logger.Debug().Err(err).Str("mode", e.mode.String()).Msg("submit failed")
	e.setBanner(BannerError, messageFor(err, "failed to save "+e.desc.Name), false)
}

func (e *Editor[T]) setBanner(kind BannerKind, message string, sticky bool) {
	e.banner = &Banner{
		Kind:      kind,
		Message:   message,
		Sticky:    sticky,
		expiresAt: e.now().Add(BannerTTL),
	}
}

// messageFor prefers the API error's user-facing message and falls back to
// a generic one.
func messageFor(err error, fallback string) string {
	var apiErr interface{ UserMessage() string }
	if errors.As(err, &apiErr) {
		return apiErr.UserMessage()
	}
	return fallback
}
