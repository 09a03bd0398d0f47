// Package models provides the option model shared by the generator, the
// CLI, and configuration loading.
//
// # Options
//
// A generation run is driven by an [OptionSet], built once with
// [NewOptionSet] and never mutated afterwards. Each choice is a closed
// enumeration backed by a string type:
//   - [Frontend]: react, vue, svelte, solid, preact
//   - [Overlay]: none, tailwind, daisyui, pico
//   - [Backend]: vercel
//   - [DB]: memory, sqlite, postgres, neon, supabase
//
// Parse user input with the Parse functions:
//
//	fe, err := models.ParseFrontend("vue")
//	if errors.Is(err, models.ErrUnknownOption) {
//	    // not a valid frontend
//	}
//
// # Project names
//
// Raw names are canonicalized with [NormalizeProjectName]:
//
//	name, _ := models.NormalizeProjectName("My App!!") // "my-app"
package models
