package types

import (
	"log/slog"

	"github.com/cottand/streamtype/ilerr"
	"github.com/cottand/streamtype/pos"
)

// Hooks are the capabilities that subsystems built on top of this package
// provide back to it. They are installed at start-up; until then each of them
// fails with an ilerr.HookNotInstalled error, or panics with one when its
// signature has no error result.
type Hooks struct {
	// Print renders a type for diagnostics
	Print func(t *Type) string
	// Logger returns the logger for a section
	Logger func(section string) *slog.Logger
	// FormatType resolves the type of an encoding format
	FormatType func(at pos.Range, format string) (*Type, error)
	// MakeEncoder builds an encoder from a format and its parameters
	MakeEncoder func(at pos.Range, format string, params map[string]any) (any, error)
	// IsFormat is true for types of encoding formats
	IsFormat func(t *Type) bool
	// LibsDir returns the directory of the standard library
	LibsDir func() (string, error)
	// CollectAfter runs f, possibly deferring cleanup of what f allocated
	// until it returns
	CollectAfter func(f func() error) error
}

func notInstalled(hook string) ilerr.IleError {
	return ilerr.New(ilerr.NewHookNotInstalled{Hook: hook})
}

// NotInstalled returns hooks which all fail when called
func NotInstalled() Hooks {
	return Hooks{
		Print: func(*Type) string {
			panic(notInstalled("print"))
		},
		Logger: func(string) *slog.Logger {
			panic(notInstalled("logger"))
		},
		FormatType: func(pos.Range, string) (*Type, error) {
			return nil, notInstalled("format_type")
		},
		MakeEncoder: func(pos.Range, string, map[string]any) (any, error) {
			return nil, notInstalled("make_encoder")
		},
		IsFormat: func(*Type) bool {
			panic(notInstalled("is_format"))
		},
		LibsDir: func() (string, error) {
			return "", notInstalled("libs_dir")
		},
		CollectAfter: func(func() error) error {
			return notInstalled("collect_after")
		},
	}
}

var installedHooks = NotInstalled()

// CurrentHooks returns the process-wide hooks
func CurrentHooks() Hooks {
	return installedHooks
}

// InstallHooks replaces the process-wide hooks which are set in h and keeps
// the others. It is not safe to call concurrently with anything using hooks.
func InstallHooks(h Hooks) {
	if h.Print != nil {
		installedHooks.Print = h.Print
	}
	if h.Logger != nil {
		installedHooks.Logger = h.Logger
	}
	if h.FormatType != nil {
		installedHooks.FormatType = h.FormatType
	}
	if h.MakeEncoder != nil {
		installedHooks.MakeEncoder = h.MakeEncoder
	}
	if h.IsFormat != nil {
		installedHooks.IsFormat = h.IsFormat
	}
	if h.LibsDir != nil {
		installedHooks.LibsDir = h.LibsDir
	}
	if h.CollectAfter != nil {
		installedHooks.CollectAfter = h.CollectAfter
	}
}

// ResetHooks uninstalls every hook
func ResetHooks() {
	installedHooks = NotInstalled()
}
