// Package output builds termenv outputs with a consistent color profile for
// the watch renderers and the log handler.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Plain reports whether color must be suppressed: NO_COLOR is set to any
// non-empty value or the terminal declares itself dumb.
func Plain() bool {
	return os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
}

// ColorProfile returns the profile for interactive terminals, detected from
// the environment unless Plain applies.
func ColorProfile() termenv.Profile {
	if Plain() {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// ColorProfileANSI returns the 16 color profile used for CI logs and other
// non-interactive output, unless Plain applies.
func ColorProfileANSI() termenv.Profile {
	if Plain() {
		return termenv.Ascii
	}
	return termenv.ANSI
}

// New creates a termenv.Output using ColorProfile.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates a termenv.Output whose profile comes from profileFn.
// A nil writer means stderr. The output always reports itself as a TTY so the
// chosen profile is honoured even when writing to a pipe.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	return termenv.NewOutput(w, append(opts,
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	)...)
}
