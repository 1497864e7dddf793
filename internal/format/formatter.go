// Package format renders processor reports for the chat transport.
package format

import (
	"regexp"
	"strings"

	"github.com/akravets/dbrain-bot/internal/domain"
)

// Telegram accepts only a small tag set in HTML parse mode; anything else
// the processor emits is left for the transport to reject, at which point
// the caller falls back to Plain.
var htmlTagPattern = regexp.MustCompile(`</?(?:b|i|code|s|u|pre|a)(?:\s[^>]*)?>`)

// Report renders a processor report as Telegram HTML. Error text is
// surfaced verbatim, wrapped in a short header.
func Report(r domain.Report) string {
	if !r.Ok() {
		return "⚠️ <b>Processing failed</b>\n<code>" + EscapeHTML(r.ErrText) + "</code>"
	}
	return strings.TrimSpace(r.Text)
}

// Plain strips HTML markup so a message rejected by the transport can be
// resent without parse mode. The content is never dropped, only degraded.
func Plain(s string) string {
	s = htmlTagPattern.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "&lt;", "<")
	s = strings.ReplaceAll(s, "&gt;", ">")
	s = strings.ReplaceAll(s, "&quot;", `"`)
	s = strings.ReplaceAll(s, "&amp;", "&")
	return strings.TrimSpace(s)
}

// EscapeHTML escapes the characters Telegram requires escaping inside HTML
// parse mode text.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}
