// Package domain contains core domain types for the dbrain bot.
package domain

// Subcommand identifies a /hypothesis subcommand.
type Subcommand string

const (
	// SubcommandDashboard renders an overview of all hypothesis maps.
	SubcommandDashboard Subcommand = "dashboard"
	// SubcommandNew starts an interactive map creation session.
	SubcommandNew Subcommand = "new"
	// SubcommandReview analyzes a single map by name.
	SubcommandReview Subcommand = "review"
	// SubcommandValidate checks a single map for structural errors.
	SubcommandValidate Subcommand = "validate"
)

// MapDomain is the coarse category a hypothesis map belongs to.
type MapDomain string

const (
	// DomainBusiness scopes a map to business goals.
	DomainBusiness MapDomain = "business"
	// DomainPersonal scopes a map to personal goals.
	DomainPersonal MapDomain = "personal"
)

// ParsedCommand is the structured form of raw /hypothesis arguments.
// It is produced once per inbound command and never mutated.
type ParsedCommand struct {
	Subcommand Subcommand
	Domain     MapDomain // set only for SubcommandNew
	Name       string    // set only for SubcommandReview / SubcommandValidate
}
