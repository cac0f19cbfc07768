// Package profile provides optional runtime profiling using
// [github.com/pkg/profile].
//
// Profiling must be enabled at build time with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag, [Profiler.Start] returns a no-op [Stopper] and [Modes]
// is empty.
//
// Supported modes are allocs, block, clock, cpu, goroutine, heap, mem,
// mutex, thread and trace:
//
//	p := profile.Profiler{Mode: "cpu", Path: "/tmp/argot"}
//	defer p.Start().Stop()
//
// Profile files are named after the mode (cpu.pprof, mem.pprof, ...) and are
// analyzed with go tool pprof:
//
//	go tool pprof -http=: /tmp/argot/cpu.pprof
package profile

// Tag is the build tag required to enable pprof profiling.
const Tag = `pprof`
