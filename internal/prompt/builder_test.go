package prompt

import (
	"strings"
	"testing"

	"github.com/akravets/dbrain-bot/internal/domain"
)

func TestBuildersAreDeterministic(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleUser, Content: "double my revenue"},
		{Role: domain.RoleAssistant, Content: "what metric tracks that?"},
	}

	builders := map[string]func() string{
		"dashboard":    Dashboard,
		"initial":      func() string { return Initial(domain.DomainPersonal) },
		"continuation": func() string { return Continuation(domain.DomainBusiness, history) },
		"review":       func() string { return Review("consulting-growth") },
		"validate":     func() string { return Validate("consulting-growth") },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			if build() != build() {
				t.Error("same inputs produced different prompts")
			}
		})
	}
}

func TestContinuationRendersHistoryInOrder(t *testing.T) {
	history := []domain.Turn{
		{Role: domain.RoleUser, Content: "first"},
		{Role: domain.RoleAssistant, Content: "second"},
		{Role: domain.RoleUser, Content: "third"},
	}

	got := Continuation(domain.DomainBusiness, history)

	wantLines := []string{"[user] first", "[assistant] second", "[user] third"}
	last := -1
	for _, line := range wantLines {
		idx := strings.Index(got, line)
		if idx < 0 {
			t.Fatalf("prompt missing history line %q:\n%s", line, got)
		}
		if idx <= last {
			t.Errorf("history line %q out of order", line)
		}
		last = idx
	}
}

func TestContinuationCarriesDomainAndMarker(t *testing.T) {
	got := Continuation(domain.DomainPersonal, nil)
	if !strings.Contains(got, "domain=personal") {
		t.Error("prompt does not mention the map domain")
	}
	if !strings.Contains(got, CompletionMarker) {
		t.Error("prompt does not instruct the completion marker")
	}
}

func TestInitialMentionsMarkerAndDomain(t *testing.T) {
	for _, d := range []domain.MapDomain{domain.DomainBusiness, domain.DomainPersonal} {
		got := Initial(d)
		if !strings.Contains(got, string(d)) {
			t.Errorf("Initial(%s) does not mention the domain", d)
		}
		if !strings.Contains(got, CompletionMarker) {
			t.Errorf("Initial(%s) does not instruct the completion marker", d)
		}
	}
}

func TestForCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  domain.ParsedCommand
		want string
	}{
		{
			name: "Dashboard",
			cmd:  domain.ParsedCommand{Subcommand: domain.SubcommandDashboard},
			want: Dashboard(),
		},
		{
			name: "Review",
			cmd:  domain.ParsedCommand{Subcommand: domain.SubcommandReview, Name: "x"},
			want: Review("x"),
		},
		{
			name: "Validate",
			cmd:  domain.ParsedCommand{Subcommand: domain.SubcommandValidate, Name: "x"},
			want: Validate("x"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ForCommand(tt.cmd); got != tt.want {
				t.Errorf("ForCommand(%+v) returned unexpected prompt", tt.cmd)
			}
		})
	}
}
