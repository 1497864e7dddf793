package format

import (
	"strings"
	"testing"

	"github.com/akravets/dbrain-bot/internal/domain"
)

func TestReportOkPassesTextThrough(t *testing.T) {
	r := domain.OkReport("  <b>Dashboard</b>\nline two  ")
	got := Report(r)
	if got != "<b>Dashboard</b>\nline two" {
		t.Errorf("Report() = %q", got)
	}
}

func TestReportErrorIsWrappedAndEscaped(t *testing.T) {
	r := domain.ErrReport(`rpc error: <nil> & timeout`)
	got := Report(r)

	if !strings.Contains(got, "Processing failed") {
		t.Errorf("error report missing header: %q", got)
	}
	if !strings.Contains(got, "&lt;nil&gt; &amp; timeout") {
		t.Errorf("error text not escaped: %q", got)
	}
	if strings.Contains(got, "<nil>") {
		t.Errorf("raw angle brackets leaked into HTML output: %q", got)
	}
}

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "Strips allowed tags",
			in:   "<b>Goal:</b> grow <i>revenue</i>",
			want: "Goal: grow revenue",
		},
		{
			name: "Strips tags with attributes",
			in:   `<a href="https://example.com">link</a>`,
			want: "link",
		},
		{
			name: "Unescapes entities",
			in:   "a &lt; b &amp;&amp; c &gt; d",
			want: "a < b && c > d",
		},
		{
			name: "Plain text untouched",
			in:   "no markup here",
			want: "no markup here",
		},
		{
			name: "Content never dropped",
			in:   "<code>x = 1</code>",
			want: "x = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Plain(tt.in); got != tt.want {
				t.Errorf("Plain(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestEscapeHTML(t *testing.T) {
	if got := EscapeHTML(`<b> & "x"`); got != `&lt;b&gt; &amp; "x"` {
		t.Errorf("EscapeHTML() = %q", got)
	}
}
