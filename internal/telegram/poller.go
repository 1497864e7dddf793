package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/akravets/dbrain-bot/internal/orchestrator"
	"github.com/akravets/dbrain-bot/internal/store"
)

const helpText = `<b>Hypothesis bot</b>

/hypothesis — dashboard of your hypothesis maps
/hypothesis new [business|personal] — start a new map session
/hypothesis review &lt;name&gt; — review an existing map
/hypothesis validate &lt;name&gt; — validate an existing map
/cancel — abandon the current session

During a session just answer in text or send a voice note.`

// PollerConfig holds update loop settings.
type PollerConfig struct {
	// PollTimeout is the long-poll timeout passed to getUpdates.
	PollTimeout time.Duration

	// AllowedUserIDs is the access allow-list. With AllowAllUsers unset,
	// an empty list denies everyone.
	AllowedUserIDs []int64
	AllowAllUsers  bool
}

// Poller runs the getUpdates loop and routes messages to the orchestrator.
type Poller struct {
	cfg     PollerConfig
	client  *Client
	orch    *orchestrator.Orchestrator
	repo    store.Repository
	allowed map[int64]struct{}
	logger  *slog.Logger
}

// NewPoller creates a poller. The repository persists the update offset so
// a restart does not replay already-handled updates.
func NewPoller(cfg PollerConfig, client *Client, orch *orchestrator.Orchestrator, repo store.Repository, logger *slog.Logger) *Poller {
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	allowed := make(map[int64]struct{}, len(cfg.AllowedUserIDs))
	for _, id := range cfg.AllowedUserIDs {
		allowed[id] = struct{}{}
	}
	return &Poller{
		cfg:     cfg,
		client:  client,
		orch:    orch,
		repo:    repo,
		allowed: allowed,
		logger:  logger,
	}
}

// Run polls for updates until the context is cancelled. Poll failures are
// logged and retried after a short backoff.
func (p *Poller) Run(ctx context.Context) error {
	offset, err := p.repo.GetUpdateOffset(ctx)
	if err != nil {
		return fmt.Errorf("load update offset: %w", err)
	}
	p.logger.Info("Polling for updates", "offset", offset, "timeout", p.cfg.PollTimeout)

	for {
		updates, err := p.client.GetUpdates(ctx, offset, p.cfg.PollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			p.logger.Warn("getUpdates failed, retrying", "error", err)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(3 * time.Second):
			}
			continue
		}

		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			p.dispatch(ctx, u)
		}

		if len(updates) > 0 {
			if err := p.repo.SetUpdateOffset(ctx, offset); err != nil {
				p.logger.Warn("Failed to persist update offset", "offset", offset, "error", err)
			}
		}
	}
}

// dispatch hands one update to its own goroutine. The orchestrator's
// per-user lock serializes updates from the same user; different users
// proceed in parallel, which matters with multi-minute processor calls.
// Within one user, "arrival order" means lock-acquisition order:
// sync.Mutex is not FIFO, so two messages landing in the same getUpdates
// batch could in principle swap. In practice a session turn holds the
// lock for the full processor call, so later messages queue behind it
// and the window for a swap is two messages arriving within one poll
// cycle while no call is in flight.
func (p *Poller) dispatch(ctx context.Context, u Update) {
	msg := u.Message
	if msg == nil || msg.From == nil || msg.From.IsBot {
		return
	}
	if !p.authorized(msg.From.ID) {
		p.logger.Warn("Unauthorized user", "user_id", msg.From.ID, "username", msg.From.Username)
		return
	}

	go func() {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("Panic while handling update", "update_id", u.UpdateID, "panic", r)
			}
		}()
		p.handle(ctx, msg)
	}()
}

func (p *Poller) authorized(userID int64) bool {
	if p.cfg.AllowAllUsers {
		return true
	}
	_, ok := p.allowed[userID]
	return ok
}

func (p *Poller) handle(ctx context.Context, msg *Message) {
	chatID := msg.Chat.ID

	if msg.Voice != nil {
		p.handleVoice(ctx, chatID, msg.Voice)
		return
	}

	cmd, args, isCmd := splitCommand(msg.Text)
	if !isCmd {
		if msg.Text == "" {
			return
		}
		if !p.orch.HandleText(ctx, chatID, msg.Text) {
			p.send(ctx, chatID, "No active session. Start one with /hypothesis new, or see /help")
		}
		return
	}

	switch cmd {
	case "hypothesis":
		p.orch.HandleCommand(ctx, chatID, args)
	case "cancel":
		p.orch.HandleCancel(ctx, chatID)
	case "start", "help":
		p.send(ctx, chatID, helpText)
	default:
		p.send(ctx, chatID, "Unknown command, see /help")
	}
}

func (p *Poller) handleVoice(ctx context.Context, chatID int64, voice *Voice) {
	audio, err := p.client.DownloadVoice(ctx, voice.FileID)
	if err != nil {
		p.logger.Warn("Failed to download voice note", "user_id", chatID, "error", err)
		p.send(ctx, chatID, "⚠️ Could not download the voice note, please try again.")
		return
	}
	p.orch.HandleVoice(ctx, chatID, audio, voice.MimeType)
}

func (p *Poller) send(ctx context.Context, chatID int64, text string) {
	if _, err := p.client.Send(ctx, chatID, text); err != nil {
		p.logger.Error("Failed to send message", "user_id", chatID, "error", err)
	}
}

// splitCommand parses "/cmd@BotName args" into its command and argument
// parts, splitting on the first whitespace run so newlines and tabs work
// as separators too. Non-command text returns isCmd false.
func splitCommand(text string) (cmd, args string, isCmd bool) {
	if !strings.HasPrefix(text, "/") {
		return "", "", false
	}
	head, rest := text[1:], ""
	if i := strings.IndexFunc(head, unicode.IsSpace); i >= 0 {
		head, rest = head[:i], strings.TrimSpace(head[i:])
	}
	if head == "" {
		return "", "", false
	}
	// Inline @mention form used in group chats.
	if at := strings.IndexByte(head, '@'); at >= 0 {
		head = head[:at]
	}
	return strings.ToLower(head), rest, true
}
