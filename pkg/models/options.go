package models

import (
	"fmt"
	"strings"
)

// Frontend is the UI framework of the generated web app.
type Frontend string

const (
	FrontendReact  Frontend = "react"
	FrontendVue    Frontend = "vue"
	FrontendSvelte Frontend = "svelte"
	FrontendSolid  Frontend = "solid"
	FrontendPreact Frontend = "preact"
)

// Overlay is the styling layer applied on top of the frontend.
type Overlay string

const (
	OverlayNone     Overlay = "none"
	OverlayTailwind Overlay = "tailwind"
	OverlayDaisyUI  Overlay = "daisyui"
	OverlayPico     Overlay = "pico"
)

// Backend is the deployment target of the generated API.
type Backend string

const (
	BackendVercel Backend = "vercel"
)

// DB is the persistence provider wired into the generated app.
type DB string

const (
	DBMemory   DB = "memory"
	DBSQLite   DB = "sqlite"
	DBPostgres DB = "postgres"
	DBNeon     DB = "neon"
	DBSupabase DB = "supabase"
)

// DBFamily groups providers that share one adapter implementation.
type DBFamily string

const (
	FamilyMemory   DBFamily = "in-memory"
	FamilySQLite   DBFamily = "sqlite"
	FamilyPostgres DBFamily = "postgres"
)

// Defaults used when a choice is left empty.
const (
	DefaultFrontend = FrontendReact
	DefaultOverlay  = OverlayNone
	DefaultBackend  = BackendVercel
	DefaultDB       = DBMemory
)

// AllFrontends returns every frontend in menu order.
func AllFrontends() []Frontend {
	return []Frontend{FrontendReact, FrontendVue, FrontendSvelte, FrontendSolid, FrontendPreact}
}

// AllOverlays returns every overlay in menu order.
func AllOverlays() []Overlay {
	return []Overlay{OverlayNone, OverlayTailwind, OverlayDaisyUI, OverlayPico}
}

// AllBackends returns every backend in menu order.
func AllBackends() []Backend {
	return []Backend{BackendVercel}
}

// AllDBs returns every db provider in menu order.
func AllDBs() []DB {
	return []DB{DBMemory, DBSQLite, DBPostgres, DBNeon, DBSupabase}
}

// IsValid reports whether f is a member of the enumeration.
func (f Frontend) IsValid() bool {
	switch f {
	case FrontendReact, FrontendVue, FrontendSvelte, FrontendSolid, FrontendPreact:
		return true
	}
	return false
}

// IsValid reports whether o is a member of the enumeration.
func (o Overlay) IsValid() bool {
	switch o {
	case OverlayNone, OverlayTailwind, OverlayDaisyUI, OverlayPico:
		return true
	}
	return false
}

// IsValid reports whether b is a member of the enumeration.
func (b Backend) IsValid() bool {
	return b == BackendVercel
}

// IsValid reports whether d is a member of the enumeration.
func (d DB) IsValid() bool {
	switch d {
	case DBMemory, DBSQLite, DBPostgres, DBNeon, DBSupabase:
		return true
	}
	return false
}

// Family returns the adapter family shared by d.
func (d DB) Family() DBFamily {
	switch d {
	case DBSQLite:
		return FamilySQLite
	case DBPostgres, DBNeon, DBSupabase:
		return FamilyPostgres
	default:
		return FamilyMemory
	}
}

// IsPostgres reports whether d speaks the Postgres wire protocol.
func (d DB) IsPostgres() bool {
	return d.Family() == FamilyPostgres
}

// ParseFrontend converts s into a Frontend. Empty input yields the default.
func ParseFrontend(s string) (Frontend, error) {
	if s = normalizeChoice(s); s == "" {
		return DefaultFrontend, nil
	}
	f := Frontend(s)
	if !f.IsValid() {
		return "", fmt.Errorf("%w: frontend %q (valid: %s)", ErrUnknownOption, s, joinValues(AllFrontends()))
	}
	return f, nil
}

// ParseOverlay converts s into an Overlay. Empty input yields the default.
func ParseOverlay(s string) (Overlay, error) {
	if s = normalizeChoice(s); s == "" {
		return DefaultOverlay, nil
	}
	o := Overlay(s)
	if !o.IsValid() {
		return "", fmt.Errorf("%w: overlay %q (valid: %s)", ErrUnknownOption, s, joinValues(AllOverlays()))
	}
	return o, nil
}

// ParseBackend converts s into a Backend. Empty input yields the default.
func ParseBackend(s string) (Backend, error) {
	if s = normalizeChoice(s); s == "" {
		return DefaultBackend, nil
	}
	b := Backend(s)
	if !b.IsValid() {
		return "", fmt.Errorf("%w: backend %q (valid: %s)", ErrUnknownOption, s, joinValues(AllBackends()))
	}
	return b, nil
}

// ParseDB converts s into a DB. Empty input yields the default.
func ParseDB(s string) (DB, error) {
	if s = normalizeChoice(s); s == "" {
		return DefaultDB, nil
	}
	d := DB(s)
	if !d.IsValid() {
		return "", fmt.Errorf("%w: db %q (valid: %s)", ErrUnknownOption, s, joinValues(AllDBs()))
	}
	return d, nil
}

func normalizeChoice(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
