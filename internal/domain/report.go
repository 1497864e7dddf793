package domain

// Report is the external processor's result: either text or an error
// message, never both.
type Report struct {
	Text    string
	ErrText string
}

// OkReport wraps successful processor output.
func OkReport(text string) Report {
	return Report{Text: text}
}

// ErrReport wraps a processor failure message.
func ErrReport(message string) Report {
	return Report{ErrText: message}
}

// Ok reports whether the processor call succeeded.
func (r Report) Ok() bool {
	return r.ErrText == ""
}
