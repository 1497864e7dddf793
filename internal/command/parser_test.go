package command

import (
	"testing"

	"github.com/akravets/dbrain-bot/internal/domain"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.ParsedCommand
	}{
		{
			name: "Empty args means dashboard",
			raw:  "",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandDashboard},
		},
		{
			name: "Whitespace only means dashboard",
			raw:  "   \t ",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandDashboard},
		},
		{
			name: "New with business domain",
			raw:  "new business",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandNew, Domain: domain.DomainBusiness},
		},
		{
			name: "New with personal domain",
			raw:  "new personal",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandNew, Domain: domain.DomainPersonal},
		},
		{
			name: "New without domain defaults to business",
			raw:  "new",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandNew, Domain: domain.DomainBusiness},
		},
		{
			name: "New with unknown domain defaults to business",
			raw:  "new france",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandNew, Domain: domain.DomainBusiness},
		},
		{
			name: "Review captures map name",
			raw:  "review consulting-growth",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandReview, Name: "consulting-growth"},
		},
		{
			name: "Review without name",
			raw:  "review",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandReview},
		},
		{
			name: "Validate captures map name",
			raw:  "validate saas-monetization",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandValidate, Name: "saas-monetization"},
		},
		{
			name: "Unknown subcommand degrades to dashboard",
			raw:  "bogus",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandDashboard},
		},
		{
			name: "Case insensitive subcommand",
			raw:  "NEW Personal",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandNew, Domain: domain.DomainPersonal},
		},
		{
			name: "Tabs and runs of spaces as separator",
			raw:  "review \t  consulting-growth",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandReview, Name: "consulting-growth"},
		},
		{
			name: "Name with spaces kept verbatim",
			raw:  "validate my map name",
			want: domain.ParsedCommand{Subcommand: domain.SubcommandValidate, Name: "my map name"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

// Parse must be total: arbitrary garbage still yields a usable command.
func TestParseNeverFails(t *testing.T) {
	inputs := []string{
		"", " ", "/", "new  ", "выгрузка", "new\tbusiness extra words",
		"REVIEW", "validate\n", "<b>html</b>", "😀 emoji args",
	}
	for _, raw := range inputs {
		got := Parse(raw)
		switch got.Subcommand {
		case domain.SubcommandDashboard, domain.SubcommandNew,
			domain.SubcommandReview, domain.SubcommandValidate:
		default:
			t.Errorf("Parse(%q) produced invalid subcommand %q", raw, got.Subcommand)
		}
	}
}
