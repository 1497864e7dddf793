// Package prompt renders processor prompts for hypothesis map operations.
//
// All builders are pure functions of their inputs: the same arguments always
// produce the same prompt, which keeps continuation calls reproducible and
// testable. The processor itself is stateless across calls, so continuation
// prompts carry the full turn history every time.
package prompt

import (
	"fmt"
	"strings"

	"github.com/akravets/dbrain-bot/internal/domain"
)

// CompletionMarker is the sentinel the processor is instructed to emit once
// a map file has been written to the vault.
const CompletionMarker = "MAP_CREATED"

const baseContext = `You are the hypothesis-manager agent for hypothesis maps.

CONTEXT:
- Hypothesis maps live in vault/hypothesis/
- Schema in vault/hypothesis/_schema.md
- Rules in vault/.claude/rules/hypothesis-format.md
- Agent instructions in vault/.claude/agents/hypothesis-manager.md

CRITICAL OUTPUT FORMAT:
- Return ONLY raw HTML for Telegram (parse_mode=HTML)
- NO markdown: no **, no ##, no code fences, no tables
- Allowed tags: <b>, <i>, <code>, <s>, <u>
- Be concise - Telegram has a 4096 char limit
`

// Dashboard builds the prompt for a dashboard overview of all maps.
func Dashboard() string {
	return baseContext + `
TASK: Generate a dashboard of all hypothesis maps.

WORKFLOW:
1. Read vault/hypothesis/business/*.md (where status: active)
2. Read vault/hypothesis/personal/*.md (where status: active)
3. Read vault/hypothesis/archive/*.md for the archived count
4. Extract from each: status, goal, metrics, hypothesis counts
5. Generate an HTML dashboard listing active, paused and overdue maps
`
}

// Initial builds the opening prompt of a map creation session.
func Initial(d domain.MapDomain) string {
	return baseContext + fmt.Sprintf(`
TASK: Start creating a new hypothesis map for domain=%s.

Use the EKG technique (Express Map, 20-30 min), one step per exchange:
goal clarification, then metrics, then subject, then hypotheses.

STEP 1 - Goal Clarification:
Ask the user for the desired OUTCOME (not a task). Show one correct and one
incorrect example phrasing, then ask them to reply with their goal.

When, and only when, the map file has been written to
vault/hypothesis/%s/, include the literal token %s in your reply
together with the file path.
`, d, d, CompletionMarker)
}

// Continuation builds the next session prompt from the full turn history.
// History is rendered in order, each turn tagged with its role, so the
// stateless processor receives complete conversational context.
func Continuation(d domain.MapDomain, history []domain.Turn) string {
	var b strings.Builder
	b.WriteString(baseContext)
	fmt.Fprintf(&b, `
TASK: Continue the EKG session for a new hypothesis map (domain=%s).

CONVERSATION SO FAR:
`, d)
	for _, t := range history {
		fmt.Fprintf(&b, "[%s] %s\n", t.Role, t.Content)
	}
	fmt.Fprintf(&b, `
Pick up at the next EKG step. Once every step is complete, write the map
file to vault/hypothesis/%s/ and include the literal token %s in your
reply together with the file path.
`, d, CompletionMarker)
	return b.String()
}

// Review builds the prompt for reviewing a single map by name.
func Review(name string) string {
	return baseContext + fmt.Sprintf(`
TASK: Generate a review for hypothesis map "%s".

WORKFLOW:
1. Find the map by name (search business/ and personal/)
2. Read the map file
3. Analyze goal progress, hypothesis statuses, active experiments,
   collected evidence and blockers
4. Apply Red Path prioritization
5. Generate recommendations and the next review date
`, name)
}

// Validate builds the prompt for validating a single map by name.
func Validate(name string) string {
	return baseContext + fmt.Sprintf(`
TASK: Validate hypothesis map "%s" for errors.

WORKFLOW:
1. Find and read the map
2. Check frontmatter completeness and required sections
3. Run error detection patterns: task instead of goal, executor instead
   of subject, BECAUSE not about subject, premature specification,
   motivation not of subject, orphan tasks, stale hypotheses
4. Calculate a validation score out of 100 and list fixes
`, name)
}

// ForCommand builds the one-shot prompt matching a parsed command.
// SubcommandNew is not a one-shot and is handled by Initial/Continuation.
func ForCommand(cmd domain.ParsedCommand) string {
	switch cmd.Subcommand {
	case domain.SubcommandReview:
		return Review(cmd.Name)
	case domain.SubcommandValidate:
		return Validate(cmd.Name)
	default:
		return Dashboard()
	}
}
