package runner

import (
	"path/filepath"
	"runtime"
	"strings"
)

// callSite walks the call stack and returns the first frame
// outside this package, as a short file name and line. It is
// best-effort diagnostic metadata only; a miss returns zero
// values without weakening any other contract.
func callSite() (string, int) {
	pcs := make([]uintptr, 16)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		if frame.Function == "" {
			break
		}
		// Skip this package's own frames, but not its tests:
		// an in-package test is a legitimate call site.
		internal := strings.Contains(
			frame.Function,
			"digital.vasic.facts/pkg/runner",
		) && !strings.HasSuffix(frame.File, "_test.go")
		if !internal {
			return filepath.Base(frame.File), frame.Line
		}
		if !more {
			break
		}
	}
	return "", 0
}
