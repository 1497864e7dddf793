// Package command parses raw /hypothesis arguments into structured commands.
package command

import (
	"strings"
	"unicode"

	"github.com/akravets/dbrain-bot/internal/domain"
)

// Parse maps raw command arguments to a ParsedCommand. It is total: every
// input, including the empty string, yields a valid command and unknown
// tokens silently degrade to the dashboard.
//
// Examples:
//
//	""                        -> dashboard
//	"new business"            -> new, domain=business
//	"new"                     -> new, domain=business (default)
//	"review consulting-growth" -> review, name=consulting-growth
//	"validate saas-monetization" -> validate, name=saas-monetization
func Parse(raw string) domain.ParsedCommand {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return domain.ParsedCommand{Subcommand: domain.SubcommandDashboard}
	}

	head, rest := raw, ""
	if i := strings.IndexFunc(raw, unicode.IsSpace); i >= 0 {
		head, rest = raw[:i], strings.TrimSpace(raw[i:])
	}

	switch strings.ToLower(head) {
	case "new":
		d := domain.MapDomain(strings.ToLower(rest))
		if d != domain.DomainBusiness && d != domain.DomainPersonal {
			// Invalid domain tokens fall back silently, not an error.
			d = domain.DomainBusiness
		}
		return domain.ParsedCommand{Subcommand: domain.SubcommandNew, Domain: d}
	case "review":
		return domain.ParsedCommand{Subcommand: domain.SubcommandReview, Name: rest}
	case "validate":
		return domain.ParsedCommand{Subcommand: domain.SubcommandValidate, Name: rest}
	}

	// Unknown subcommand - treat as dashboard.
	return domain.ParsedCommand{Subcommand: domain.SubcommandDashboard}
}
