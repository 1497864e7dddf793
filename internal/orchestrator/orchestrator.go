// Package orchestrator drives the hypothesis command flow: command parsing,
// session state, slow processor calls with progress updates, completion
// detection and the vault commit that follows it.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akravets/dbrain-bot/internal/command"
	"github.com/akravets/dbrain-bot/internal/domain"
	"github.com/akravets/dbrain-bot/internal/format"
	"github.com/akravets/dbrain-bot/internal/prompt"
	"github.com/akravets/dbrain-bot/internal/session"
	"github.com/akravets/dbrain-bot/internal/store"
)

// MessageRef identifies a sent chat message so it can be edited in place.
type MessageRef struct {
	ChatID    int64
	MessageID int64
}

// Valid reports whether the ref points at a real message.
func (r MessageRef) Valid() bool {
	return r.MessageID != 0
}

// Transport is the chat surface the orchestrator speaks through. Send and
// Edit use rich (HTML) mode; the Plain variants are the degradation path
// when the transport rejects markup.
type Transport interface {
	Send(ctx context.Context, chatID int64, text string) (MessageRef, error)
	SendPlain(ctx context.Context, chatID int64, text string) (MessageRef, error)
	Edit(ctx context.Context, ref MessageRef, text string) error
	EditPlain(ctx context.Context, ref MessageRef, text string) error
}

// Processor is the external reasoning service. Execute may take minutes.
type Processor interface {
	Execute(ctx context.Context, prompt, userID string) (domain.Report, error)
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}

// Committer persists vault changes after a completed session.
type Committer interface {
	CommitAndPush(ctx context.Context, message string) error
}

// Config holds orchestrator tunables.
type Config struct {
	// HeartbeatInterval is the cadence of progress edits while a
	// processor call is outstanding.
	HeartbeatInterval time.Duration

	// CancelInFlight makes /cancel also cancel the context of an
	// outstanding processor call. When false (the historical behavior)
	// the call keeps running and its result is discarded.
	CancelInFlight bool

	// CommitMessage is used for the vault commit on session completion.
	CommitMessage string
}

// DefaultConfig returns default orchestrator configuration.
func DefaultConfig() Config {
	return Config{
		HeartbeatInterval: 30 * time.Second,
		CommitMessage:     "feat: create hypothesis map",
	}
}

// Orchestrator ties the session store, processor gateway, vault and chat
// transport together. All dependencies are injected; the archive repo may
// be nil, in which case completed sessions are simply not archived.
type Orchestrator struct {
	cfg       Config
	sessions  *session.Store
	processor Processor
	transport Transport
	vault     Committer
	repo      store.Repository
	progress  progressRunner
	logger    *slog.Logger
}

// New creates an orchestrator.
func New(cfg Config, sessions *session.Store, proc Processor, transport Transport, vault Committer, repo store.Repository, logger *slog.Logger) *Orchestrator {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = DefaultConfig().HeartbeatInterval
	}
	if cfg.CommitMessage == "" {
		cfg.CommitMessage = DefaultConfig().CommitMessage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		cfg:       cfg,
		sessions:  sessions,
		processor: proc,
		transport: transport,
		vault:     vault,
		repo:      repo,
		progress:  progressRunner{interval: cfg.HeartbeatInterval},
		logger:    logger,
	}
}

// Sessions exposes the session store for status reporting.
func (o *Orchestrator) Sessions() *session.Store {
	return o.sessions
}

var statusMessages = map[domain.Subcommand]string{
	domain.SubcommandDashboard: "⏳ Loading hypothesis maps...",
	domain.SubcommandNew:       "⏳ Preparing hypothesis map creation...",
	domain.SubcommandReview:    "⏳ Analyzing hypothesis map...",
	domain.SubcommandValidate:  "⏳ Checking hypothesis map...",
}

const turnStatus = "⏳ Processing your answer..."

// HandleCommand processes a /hypothesis command with raw arguments.
func (o *Orchestrator) HandleCommand(ctx context.Context, chatID int64, args string) {
	parsed := command.Parse(args)
	o.logger.Info("Hypothesis command", "user_id", chatID, "subcommand", parsed.Subcommand, "args", args)

	if parsed.Subcommand == domain.SubcommandNew {
		o.startSession(ctx, chatID, parsed.Domain)
		return
	}
	o.runOneShot(ctx, chatID, parsed)
}

// HandleText routes a plain text message into the user's open session.
// It reports false, without side effects, when no session is open.
func (o *Orchestrator) HandleText(ctx context.Context, chatID int64, text string) bool {
	if _, ok := o.sessions.Get(chatID); !ok {
		return false
	}
	o.handleTurn(ctx, chatID, text)
	return true
}

// HandleVoice transcribes a voice note and feeds it into the open session.
// A failed transcription aborts the current turn with a user-facing message
// and leaves session state untouched, so the user can retry.
func (o *Orchestrator) HandleVoice(ctx context.Context, chatID int64, audio []byte, mimeType string) {
	text, err := o.processor.Transcribe(ctx, audio, mimeType)
	if err != nil {
		o.logger.Warn("Transcription failed", "user_id", chatID, "error", err)
		o.reply(ctx, chatID, "⚠️ Could not transcribe the voice note, please try again or type your answer.")
		return
	}
	if !o.HandleText(ctx, chatID, text) {
		o.reply(ctx, chatID, "No active session. Start one with /hypothesis new")
	}
}

// HandleCancel clears the user's session. Whether an in-flight processor
// call is cancelled too depends on Config.CancelInFlight; either way its
// eventual result is discarded because the session context is gone.
func (o *Orchestrator) HandleCancel(ctx context.Context, chatID int64) {
	if o.sessions.Clear(chatID) {
		o.reply(ctx, chatID, "Session cancelled.")
		return
	}
	o.reply(ctx, chatID, "Nothing to cancel.")
}

// startSession begins a new map creation session, replacing any open one.
func (o *Orchestrator) startSession(ctx context.Context, chatID int64, d domain.MapDomain) {
	release := o.sessions.Acquire(chatID)
	defer release()

	o.sessions.Create(chatID, d)

	ref := o.sendStatus(ctx, chatID, statusMessages[domain.SubcommandNew])
	report := o.execute(ctx, chatID, prompt.Initial(d), statusMessages[domain.SubcommandNew], ref, true)
	o.finishTurn(ctx, chatID, ref, report)
}

// handleTurn appends a user turn, runs the continuation call and applies
// the result. The caller-independent per-user lock spans the whole
// exchange so history always reflects arrival order.
func (o *Orchestrator) handleTurn(ctx context.Context, chatID int64, text string) {
	release := o.sessions.Acquire(chatID)
	defer release()

	// The session may have been cancelled while this event waited on the
	// lock; that is a normal race, not an error.
	sess, ok := o.sessions.Get(chatID)
	if !ok {
		o.logger.Info("Turn dropped, session gone", "user_id", chatID)
		return
	}

	o.sessions.AppendTurn(chatID, domain.Turn{Role: domain.RoleUser, Content: text})
	history := append(sess.History, domain.Turn{Role: domain.RoleUser, Content: text})

	ref := o.sendStatus(ctx, chatID, turnStatus)
	report := o.execute(ctx, chatID, prompt.Continuation(sess.Domain, history), turnStatus, ref, true)
	o.finishTurn(ctx, chatID, ref, report)
}

// runOneShot runs a dashboard/review/validate command. One-shots share the
// progress machinery but never touch the session store.
func (o *Orchestrator) runOneShot(ctx context.Context, chatID int64, parsed domain.ParsedCommand) {
	status := statusMessages[parsed.Subcommand]
	ref := o.sendStatus(ctx, chatID, status)
	report := o.execute(ctx, chatID, prompt.ForCommand(parsed), status, ref, false)
	o.deliver(ctx, chatID, ref, format.Report(report))
}

// execute runs one processor call under the progress runner, editing the
// status message with elapsed time on every heartbeat. Gateway failures are
// translated into an error report; they never propagate as errors.
//
// Session-store bookkeeping (processing state, the in-flight cancel func)
// applies only when sessionCall is set. One-shots must leave the store
// alone: a dashboard running concurrently with a session turn would
// otherwise clobber the turn's registered cancel func and break /cancel.
func (o *Orchestrator) execute(ctx context.Context, chatID int64, promptText, status string, ref MessageRef, sessionCall bool) domain.Report {
	runCtx := ctx
	if sessionCall {
		if o.cfg.CancelInFlight {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithCancel(ctx)
			defer cancel()
			o.sessions.SetInFlight(chatID, cancel)
			defer o.sessions.ClearInFlight(chatID)
		}
		o.sessions.SetState(chatID, domain.StateProcessing)
		defer o.sessions.SetState(chatID, domain.StateActive)
	}

	call := func(callCtx context.Context) domain.Report {
		report, err := o.processor.Execute(callCtx, promptText, fmt.Sprint(chatID))
		if err != nil {
			o.logger.Error("Processor call failed", "user_id", chatID, "error", err)
			return domain.ErrReport(err.Error())
		}
		return report
	}

	onHeartbeat := func(elapsed time.Duration) error {
		if !ref.Valid() {
			return nil
		}
		sec := int(elapsed.Seconds())
		return o.transport.Edit(ctx, ref, fmt.Sprintf("%s (%dm %ds)", status, sec/60, sec%60))
	}

	return o.progress.run(runCtx, call, onHeartbeat)
}

// finishTurn applies a session call's result: error reports are surfaced
// without terminating the session, non-terminal results extend the history,
// and a detected completion clears the session, commits the vault exactly
// once and archives the transcript.
func (o *Orchestrator) finishTurn(ctx context.Context, chatID int64, ref MessageRef, report domain.Report) {
	sess, ok := o.sessions.Get(chatID)
	if !ok {
		// Cancelled while the call was in flight; the result is discarded.
		o.logger.Info("Result discarded, session gone", "user_id", chatID)
		return
	}

	if !report.Ok() {
		o.deliver(ctx, chatID, ref, format.Report(report))
		return
	}

	o.sessions.AppendTurn(chatID, domain.Turn{Role: domain.RoleAssistant, Content: report.Text})
	sess.History = append(sess.History, domain.Turn{Role: domain.RoleAssistant, Content: report.Text})

	if isComplete(report) && o.sessions.Clear(chatID) {
		// Terminal transition: commit before the final edit, exactly once.
		// Failure is logged and does not alter the outcome shown to the user.
		if err := o.vault.CommitAndPush(ctx, o.cfg.CommitMessage); err != nil {
			o.logger.Warn("Failed to commit hypothesis map", "user_id", chatID, "error", err)
		}
		o.archive(ctx, sess)
	}

	o.deliver(ctx, chatID, ref, format.Report(report))
}

// archive records a completed session transcript, best effort.
func (o *Orchestrator) archive(ctx context.Context, sess domain.Session) {
	if o.repo == nil {
		return
	}
	rec := store.SessionRecord{
		UserID:      sess.UserID,
		Domain:      sess.Domain,
		Transcript:  sess.History,
		CompletedAt: time.Now(),
	}
	if err := o.repo.ArchiveSession(ctx, rec); err != nil {
		o.logger.Warn("Failed to archive session", "user_id", sess.UserID, "error", err)
	}
}

// deliver edits the status message into the final text, degrading from HTML
// edit to plain edit to a fresh plain message. The response is never
// silently dropped.
func (o *Orchestrator) deliver(ctx context.Context, chatID int64, ref MessageRef, text string) {
	if ref.Valid() {
		err := o.transport.Edit(ctx, ref, text)
		if err == nil {
			return
		}
		o.logger.Warn("Rich edit rejected, falling back to plain", "user_id", chatID, "error", err)
		if err := o.transport.EditPlain(ctx, ref, format.Plain(text)); err == nil {
			return
		}
	}
	if _, err := o.transport.Send(ctx, chatID, text); err == nil {
		return
	}
	if _, err := o.transport.SendPlain(ctx, chatID, format.Plain(text)); err != nil {
		o.logger.Error("Failed to deliver response", "user_id", chatID, "error", err)
	}
}

// sendStatus posts the initial status message. A failed send is tolerated:
// heartbeats become no-ops and delivery falls back to a fresh message.
func (o *Orchestrator) sendStatus(ctx context.Context, chatID int64, status string) MessageRef {
	ref, err := o.transport.Send(ctx, chatID, status)
	if err != nil {
		o.logger.Warn("Failed to send status message", "user_id", chatID, "error", err)
		return MessageRef{}
	}
	return ref
}

// reply sends a short service message, degrading to plain on failure.
func (o *Orchestrator) reply(ctx context.Context, chatID int64, text string) {
	if _, err := o.transport.Send(ctx, chatID, text); err != nil {
		if _, err := o.transport.SendPlain(ctx, chatID, format.Plain(text)); err != nil {
			o.logger.Error("Failed to send reply", "user_id", chatID, "error", err)
		}
	}
}
