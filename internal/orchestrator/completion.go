package orchestrator

import (
	"regexp"
	"strings"

	"github.com/akravets/dbrain-bot/internal/domain"
	"github.com/akravets/dbrain-bot/internal/prompt"
)

// mapPathPattern matches a vault map path in processor output, e.g.
// "hypothesis/business/consulting-growth.md". The processor is told to emit
// an explicit marker, but it does not always comply; a written map path is
// accepted as equal evidence of completion.
var mapPathPattern = regexp.MustCompile(`hypothesis/(?:business|personal)/[\w-]+\.md`)

// isComplete reports whether a processor report signals that the map file
// was written and the session's goal is achieved. This is a string-matching
// heuristic over free-form output, isolated here so it can be swapped for a
// structured signal without touching the rest of the orchestrator. An error
// report never ends a session implicitly.
func isComplete(r domain.Report) bool {
	if !r.Ok() {
		return false
	}
	return strings.Contains(r.Text, prompt.CompletionMarker) || mapPathPattern.MatchString(r.Text)
}
