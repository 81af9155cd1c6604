// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package diff computes deterministic line-based differences between two
// plaintexts using Myers' O(ND) shortest-edit-script algorithm.
//
// It is exposed independently of the branch engine so any reporting or
// UI consumer can diff already-decrypted text directly. The package is
// pure: no I/O, no logging, identical inputs always produce identical
// output.
package diff

import (
	"strings"

	"github.com/MKhiriev/go-doc-vault/models"
)

// Lines computes the line diff between old text a and new text b.
// Lines are compared for exact textual equality; a trailing newline is
// treated as a line terminator, not as an extra empty line.
func Lines(a, b string) models.Diff {
	oldLines := splitLines(a)
	newLines := splitLines(b)

	if a == b {
		if len(oldLines) == 0 {
			return models.Diff{}
		}
		return models.Diff{Spans: []models.DiffSpan{{Op: models.DiffEqual, Lines: oldLines}}}
	}

	edits := backtrack(oldLines, newLines, shortestEditTrace(oldLines, newLines))
	return models.Diff{Spans: coalesce(edits)}
}

// splitLines splits s on newlines, dropping the empty remainder a
// trailing terminator produces.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// edit is a single-line step of the edit script.
type edit struct {
	op   models.DiffOp
	line string
}

// shortestEditTrace runs the forward pass of Myers' greedy algorithm,
// returning a snapshot of the furthest-reaching endpoints per depth d.
// trace[d][offset+k] holds the largest x reachable on diagonal k after
// d edit operations.
func shortestEditTrace(a, b []string) [][]int {
	n, m := len(a), len(b)
	max := n + m
	off := max

	v := make([]int, 2*max+2)
	trace := make([][]int, 0, max+1)

	for d := 0; d <= max; d++ {
		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[off+k-1] < v[off+k+1]) {
				x = v[off+k+1] // move down: take a line from b
			} else {
				x = v[off+k-1] + 1 // move right: drop a line from a
			}
			y := x - k

			// follow the diagonal while lines match
			for x < n && y < m && a[x] == b[y] {
				x, y = x+1, y+1
			}

			v[off+k] = x

			if x >= n && y >= m {
				trace = append(trace, append([]int(nil), v...))
				return trace
			}
		}
		trace = append(trace, append([]int(nil), v...))
	}

	return trace
}

// backtrack walks the trace from (len(a), len(b)) back to the origin and
// reconstructs the edit script in forward order.
func backtrack(a, b []string, trace [][]int) []edit {
	max := len(a) + len(b)
	off := max

	x, y := len(a), len(b)
	var reversed []edit

	for d := len(trace) - 1; d > 0; d-- {
		pv := trace[d-1]
		k := x - y

		var prevK int
		if k == -d || (k != d && pv[off+k-1] < pv[off+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}
		prevX := pv[off+prevK]
		prevY := prevX - prevK

		// undo the diagonal snake
		for x > prevX && y > prevY {
			x, y = x-1, y-1
			reversed = append(reversed, edit{op: models.DiffEqual, line: a[x]})
		}

		if prevK == k+1 {
			y--
			reversed = append(reversed, edit{op: models.DiffInsert, line: b[y]})
		} else {
			x--
			reversed = append(reversed, edit{op: models.DiffDelete, line: a[x]})
		}
	}

	// depth 0 holds only the leading common snake
	for x > 0 && y > 0 {
		x, y = x-1, y-1
		reversed = append(reversed, edit{op: models.DiffEqual, line: a[x]})
	}

	forward := make([]edit, len(reversed))
	for i, e := range reversed {
		forward[len(reversed)-1-i] = e
	}
	return forward
}

// coalesce groups consecutive same-op edits into spans. Inside a mixed
// change region deletions are emitted before insertions, the order
// review tools conventionally show.
func coalesce(edits []edit) []models.DiffSpan {
	var spans []models.DiffSpan
	for i := 0; i < len(edits); {
		j := i
		for j < len(edits) && edits[j].op == edits[i].op {
			j++
		}

		// swap an insert run that directly precedes a delete run so the
		// deletion is reported first
		if edits[i].op == models.DiffInsert {
			k := j
			for k < len(edits) && edits[k].op == models.DiffDelete {
				k++
			}
			if k > j {
				spans = append(spans, models.DiffSpan{Op: models.DiffDelete, Lines: lines(edits[j:k])})
				spans = append(spans, models.DiffSpan{Op: models.DiffInsert, Lines: lines(edits[i:j])})
				i = k
				continue
			}
		}

		spans = append(spans, models.DiffSpan{Op: edits[i].op, Lines: lines(edits[i:j])})
		i = j
	}
	return spans
}

func lines(edits []edit) []string {
	out := make([]string, len(edits))
	for i, e := range edits {
		out[i] = e.line
	}
	return out
}
