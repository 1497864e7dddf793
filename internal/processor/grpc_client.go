// Package processor implements the gateway to the external reasoning service.
package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/akravets/dbrain-bot/internal/domain"
	"github.com/akravets/dbrain-bot/internal/proto/processor"
	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

var (
	errConnectionShutdown       = errors.New("connection shutdown")
	errConnectionStateUnchanged = errors.New("connection state did not change")
	// ErrTranscriptionFailed is returned when the service could not produce
	// text for a voice note. Callers surface it to the user and abort the
	// current turn; it never terminates a session.
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// GrpcClient is a gRPC client to the Python processor service.
type GrpcClient struct {
	conn   *grpc.ClientConn
	client processor.ProcessorServiceClient
	addr   string
	logger *slog.Logger
}

// GrpcClientConfig holds configuration for the gRPC client.
type GrpcClientConfig struct {
	Address          string
	ConnectTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

// DefaultGrpcClientConfig returns default configuration.
func DefaultGrpcClientConfig() GrpcClientConfig {
	return GrpcClientConfig{
		Address:          "localhost:50051",
		ConnectTimeout:   5 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// NewGrpcClient creates a new gRPC client to the processor service.
func NewGrpcClient(addr string, logger *slog.Logger) (*GrpcClient, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cfg := DefaultGrpcClientConfig()
	if addr != "" {
		cfg.Address = addr
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	// Build client connection (no network I/O yet).
	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to processor at %s: %w", cfg.Address, err)
	}

	// Force a connection attempt during startup so we fail fast on bad endpoints.
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()
	if err := waitForReady(connectCtx, conn); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			logger.Warn("failed to close gRPC connection after readiness failure", "error", closeErr)
		}
		return nil, fmt.Errorf("processor at %s not ready: %w", cfg.Address, err)
	}

	logger.Info("Connected to processor service", "address", cfg.Address)

	return &GrpcClient{
		conn:   conn,
		client: processor.NewProcessorServiceClient(conn),
		addr:   cfg.Address,
		logger: logger,
	}, nil
}

func waitForReady(ctx context.Context, conn *grpc.ClientConn) error {
	for {
		state := conn.GetState()
		switch state {
		case connectivity.Ready:
			return nil
		case connectivity.Idle:
			conn.Connect()
		case connectivity.Shutdown:
			return errConnectionShutdown
		}

		if !conn.WaitForStateChange(ctx, state) {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("%w from %s", errConnectionStateUnchanged, state)
		}
	}
}

// Close closes the gRPC connection.
func (c *GrpcClient) Close() {
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("failed to close gRPC connection", "error", err)
		}
	}
}

// Execute runs a fully rendered prompt through the processor. The call can
// take minutes; no deadline is imposed here beyond the caller's ctx, and no
// retry is performed - one failed call yields one error.
func (c *GrpcClient) Execute(ctx context.Context, prompt, userID string) (domain.Report, error) {
	resp, err := c.client.Execute(ctx, &processor.ExecuteRequest{
		Prompt: prompt,
		UserId: userID,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("execute prompt: %w", err)
	}
	if resp.GetError() != "" {
		return domain.ErrReport(resp.GetError()), nil
	}
	return domain.OkReport(resp.GetReport()), nil
}

// Transcribe converts a voice note to text. A failed or empty transcription
// returns ErrTranscriptionFailed.
func (c *GrpcClient) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	resp, err := c.client.Transcribe(ctx, &processor.TranscribeRequest{
		Audio:    audio,
		MimeType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	if !resp.GetOk() || resp.GetText() == "" {
		return "", ErrTranscriptionFailed
	}
	return resp.GetText(), nil
}

// Health checks whether the processor service is reachable.
func (c *GrpcClient) Health(ctx context.Context) error {
	if _, err := c.client.Health(ctx, &processor.HealthRequest{}); err != nil {
		return fmt.Errorf("processor health check: %w", err)
	}
	return nil
}
