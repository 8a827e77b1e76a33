// Package stacktrace trims goroutine dumps down to the frames of this module.
package stacktrace

import "strings"

const marker = "/internal/"

// InternalPaths returns the file:line locations under internal/ found in a
// stack produced by runtime/debug.Stack, innermost first.
func InternalPaths(stack []byte) []string {
	var paths []string

	for line := range strings.SplitSeq(string(stack), "\n") {
		// file locations are the tab-indented lines of a dump
		if !strings.HasPrefix(line, "\t") {
			continue
		}

		loc, _, _ := strings.Cut(strings.TrimSpace(line), " ")
		idx := strings.Index(loc, marker)
		if idx == -1 || !strings.Contains(loc, ".go:") {
			continue
		}

		paths = append(paths, loc[idx+1:])
	}

	return paths
}
