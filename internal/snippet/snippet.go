package snippet

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/Sena-ops/reportguard/internal/logging"
	"github.com/Sena-ops/reportguard/internal/model"
)

const (
	// contextBefore lines above the target open the window; windowSize lines
	// are taken from the window start.
	contextBefore = 4
	windowSize    = 11

	// Lines longer than this in a script file mean minified/bundled content.
	minifiedLineLen = 200

	minifiedPlaceholder = "minified content, snippet omitted..."
)

var scriptExts = map[string]bool{
	".js":  true,
	".mjs": true,
	".cjs": true,
}

// Extract reads up to windowSize lines of path around the 1-based target
// line, numbered with their absolute file line numbers. Any open or read
// failure degrades to an empty result: a missing source file must not abort
// the batch.
func Extract(path string, line int) []model.SnippetLine {
	if line < 1 {
		return nil
	}

	start := line - contextBefore
	if start < 1 {
		// Near the top of the file the window starts at the target itself.
		start = line
	}

	f, err := os.Open(path)
	if err != nil {
		logging.Logger.Debugf("no snippet for %s: %v", path, err)
		return nil
	}
	defer f.Close()

	var out []model.SnippetLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	n := 0
	for scanner.Scan() {
		n++
		if n < start {
			continue
		}
		if n >= start+windowSize {
			break
		}
		out = append(out, model.SnippetLine{Number: n, Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		// A script line past the scanner cap can only be bundled/minified
		// content, which the heuristic suppresses anyway.
		if errors.Is(err, bufio.ErrTooLong) && isScript(path) {
			return []model.SnippetLine{{Number: start, Text: minifiedPlaceholder}}
		}
		logging.Logger.Debugf("no snippet for %s: %v", path, err)
		return nil
	}

	if isMinified(path, out) {
		return []model.SnippetLine{{Number: start, Text: minifiedPlaceholder}}
	}
	return out
}

func isScript(path string) bool {
	return scriptExts[strings.ToLower(filepath.Ext(path))]
}

func isMinified(path string, lines []model.SnippetLine) bool {
	if !isScript(path) {
		return false
	}
	for _, l := range lines {
		if len(l.Text) > minifiedLineLen {
			return true
		}
	}
	return false
}
