//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"
)

// Modes returns the sorted list of supported profiling modes.
var Modes = sync.OnceValue(
	func() []string {
		return slices.Sorted(maps.Keys(mode))
	},
)

var mode = map[string]func(*profile.Profile){
	"block":     profile.BlockProfile,
	"cpu":       profile.CPUProfile,
	"clock":     profile.ClockProfile,
	"goroutine": profile.GoroutineProfile,
	"mem":       profile.MemProfile,
	"allocs":    profile.MemProfileAllocs,
	"heap":      profile.MemProfileHeap,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// option appends zero or more settings to a profile configuration.
type option func([]func(*profile.Profile)) []func(*profile.Profile)

func apply(opts ...option) []func(*profile.Profile) {
	var settings []func(*profile.Profile)

	for _, opt := range opts {
		settings = opt(settings)
	}

	return settings
}

func start(p Profiler) Stopper {
	fn, ok := mode[p.Mode]
	if !ok {
		return ignore{}
	}

	return profile.Start(apply(withMode(fn), withPath(p.Path), withQuiet(p.Quiet), withNoShutdownHook())...)
}

func withMode(fn func(*profile.Profile)) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		return append(s, fn)
	}
}

func withPath(path string) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if path != "" {
			s = append(s, profile.ProfilePath(path))
		}

		return s
	}
}

func withQuiet(quiet bool) option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		if quiet {
			s = append(s, profile.Quiet)
		}

		return s
	}
}

// The CLI stops the profiler itself when the command returns.
func withNoShutdownHook() option {
	return func(s []func(*profile.Profile)) []func(*profile.Profile) {
		return append(s, profile.NoShutdownHook)
	}
}
