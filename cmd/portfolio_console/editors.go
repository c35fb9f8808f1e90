package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/bgv/portfolio-console/internal/editor"
	"github.com/bgv/portfolio-console/internal/guard"
)

// loadEditor builds an editor for one resource and performs the initial
// fetch. A failed initial load leaves the editor unusable, so it is
// surfaced as a hard error here.
func loadEditor[T editor.Record](ctx context.Context, env *appEnv, desc editor.Descriptor[T]) (*editor.Editor[T], error) {
	ed := editor.New(desc, env.logger)
	if err := ed.Load(ctx); err != nil {
		return nil, fmt.Errorf("failed to load %s list: %w", desc.Name, err)
	}
	return ed, nil
}

// requireAuth gates mutating commands on session state.
func requireAuth(env *appEnv) error {
	return guard.Check(env.store)
}

// finishSubmit reports the outcome of an editor submit: field errors one
// per line for validation failures, the banner message otherwise.
func finishSubmit[T editor.Record](ed *editor.Editor[T], err error) error {
	if err != nil {
		if errors.Is(err, editor.ErrInvalid) {
			printFieldErrors(ed.FieldErrors())
		}
		return err
	}
	if banner := ed.Banner(); banner != nil {
		_, _ = fmt.Fprintln(os.Stdout, banner.Message)
	}
	return nil
}

// finishDelete reports the outcome of an editor delete.
func finishDelete[T editor.Record](ed *editor.Editor[T], err error) error {
	if err != nil {
		if errors.Is(err, editor.ErrNotConfirmed) {
			return fmt.Errorf("refusing to delete without --yes")
		}
		return err
	}
	if banner := ed.Banner(); banner != nil {
		_, _ = fmt.Fprintln(os.Stdout, banner.Message)
	}
	return nil
}

// printFieldErrors writes one line per invalid field, in stable order.
func printFieldErrors(fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		_, _ = fmt.Fprintf(os.Stderr, "  %s: %s\n", name, fields[name])
	}
}
