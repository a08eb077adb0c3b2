package generator

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Lipgloss styles for diff output
var (
	diffHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	hunkStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	addedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22"))
	removedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("52"))
)

const diffContextLines = 3

// GenerateDiff creates a unified, lipgloss-styled diff between two versions
// of a file. Returns "" when the contents are identical.
func GenerateDiff(path string, old, newer []byte) string {
	if isBinary(old) || isBinary(newer) {
		return "Binary files differ\n"
	}

	oldLines := splitLines(string(old))
	newLines := splitLines(string(newer))

	diffLines := computeEditScript(oldLines, newLines)
	hunks := buildHunks(diffLines, diffContextLines)
	if len(hunks) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString(diffHeaderStyle.Render("--- "+path) + "\n")
	buf.WriteString(diffHeaderStyle.Render("+++ "+path) + "\n")
	for _, h := range hunks {
		buf.WriteString(formatHunk(h))
	}
	return buf.String()
}

type diffOp int

const (
	opUnchanged diffOp = iota
	opAdded
	opRemoved
)

type diffLine struct {
	oldLineNum int // Line number in old file (0 if added)
	newLineNum int // Line number in new file (0 if removed)
	content    string
	op         diffOp
}

type hunk struct {
	oldStart int
	oldCount int
	newStart int
	newCount int
	lines    []diffLine
}

// computeEditScript implements the Myers shortest-edit-script algorithm
// ("An O(ND) Difference Algorithm and Its Variations", Myers 1986).
func computeEditScript(old, newer []string) []diffLine {
	n := len(old)
	m := len(newer)
	maxD := n + m

	v := map[int]int{1: 0}
	var trace []map[int]int

	for d := 0; d <= maxD; d++ {
		vcopy := make(map[int]int, len(v))
		for k, val := range v {
			vcopy[k] = val
		}
		trace = append(trace, vcopy)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[k-1] < v[k+1]) {
				x = v[k+1] // deletion in old
			} else {
				x = v[k-1] + 1 // insertion in new
			}
			y := x - k

			for x < n && y < m && old[x] == newer[y] {
				x++
				y++
			}
			v[k] = x

			if x >= n && y >= m {
				goto backtrack
			}
		}
	}

backtrack:
	var result []diffLine
	x, y := n, m

	for d := len(trace) - 1; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[k-1] < v[k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			result = append([]diffLine{{
				oldLineNum: x + 1,
				newLineNum: y + 1,
				content:    old[x],
				op:         opUnchanged,
			}}, result...)
		}

		if d > 0 {
			if x == prevX {
				y--
				result = append([]diffLine{{
					newLineNum: y + 1,
					content:    newer[y],
					op:         opAdded,
				}}, result...)
			} else {
				x--
				result = append([]diffLine{{
					oldLineNum: x + 1,
					content:    old[x],
					op:         opRemoved,
				}}, result...)
			}
		}
	}

	return result
}

// buildHunks groups diff lines into hunks with surrounding context
func buildHunks(lines []diffLine, contextLines int) []hunk {
	if len(lines) == 0 {
		return nil
	}

	var hunks []hunk
	var current *hunk

	for i, line := range lines {
		if line.op != opUnchanged {
			if current == nil {
				contextStart := i - contextLines
				if contextStart < 0 {
					contextStart = 0
				}
				current = &hunk{}
				current.lines = append(current.lines, lines[contextStart:i]...)
			}
			current.lines = append(current.lines, line)
			continue
		}

		if current == nil {
			continue
		}
		current.lines = append(current.lines, line)

		// Count consecutive context lines after the last change; close the
		// hunk when there's enough separation before the next change.
		contextAfter := 1
		for j := i + 1; j < len(lines) && lines[j].op == opUnchanged; j++ {
			contextAfter++
		}
		if contextAfter > contextLines*2 && i < len(lines)-1 {
			trim := contextAfter - contextLines
			if trim > 0 && trim <= len(current.lines) {
				current.lines = current.lines[:len(current.lines)-trim]
			}
			finalizeHunk(current)
			hunks = append(hunks, *current)
			current = nil
		}
	}

	if current != nil {
		finalizeHunk(current)
		hunks = append(hunks, *current)
	}

	return hunks
}

// finalizeHunk calculates the start and count values for a hunk
func finalizeHunk(h *hunk) {
	for _, line := range h.lines {
		if line.oldLineNum > 0 && (h.oldStart == 0 || line.oldLineNum < h.oldStart) {
			h.oldStart = line.oldLineNum
		}
		if line.newLineNum > 0 && (h.newStart == 0 || line.newLineNum < h.newStart) {
			h.newStart = line.newLineNum
		}
	}
	for _, line := range h.lines {
		if line.op == opRemoved || line.op == opUnchanged {
			h.oldCount++
		}
		if line.op == opAdded || line.op == opUnchanged {
			h.newCount++
		}
	}
}

// formatHunk formats a hunk as a unified diff string with styling
func formatHunk(h hunk) string {
	var buf strings.Builder

	header := fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.oldStart, h.oldCount, h.newStart, h.newCount)
	buf.WriteString(hunkStyle.Render(header) + "\n")

	for _, line := range h.lines {
		switch line.op {
		case opAdded:
			buf.WriteString(addedStyle.Render("+"+line.content) + "\n")
		case opRemoved:
			buf.WriteString(removedStyle.Render("-"+line.content) + "\n")
		default:
			buf.WriteString(" " + line.content + "\n")
		}
	}

	return buf.String()
}

// isBinary checks if content appears to be binary (contains null bytes)
func isBinary(data []byte) bool {
	checkLen := len(data)
	if checkLen > 8192 {
		checkLen = 8192
	}
	return bytes.IndexByte(data[:checkLen], 0) != -1
}

// splitLines splits content into lines, dropping the trailing empty line
// produced by a final newline.
func splitLines(s string) []string {
	if s == "" {
		return []string{}
	}
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
