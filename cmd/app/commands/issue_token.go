package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	voiceDomain "github.com/allisson/voice-token-server/internal/voice/domain"
	voiceUseCase "github.com/allisson/voice-token-server/internal/voice/usecase"
)

// RunIssueToken issues an access token for an identity and writes it to the output.
// An empty identity resolves to the configured default. The token itself is only
// written to the output writer, never to the logger.
func RunIssueToken(
	ctx context.Context,
	tokenUseCase voiceUseCase.TokenUseCase,
	logger *slog.Logger,
	identity string,
	format string,
	io IOTuple,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	accessToken, err := tokenUseCase.Issue(ctx, &voiceDomain.IssueTokenInput{Identity: identity})
	if err != nil {
		return fmt.Errorf("failed to issue access token: %w", err)
	}

	logger.Info("access token issued", slog.Time("expires_at", accessToken.ExpiresAt))

	if format == formatJSON {
		return writeJSON(io.Writer, map[string]string{
			"token":      accessToken.Token,
			"identity":   accessToken.Identity,
			"expires_at": accessToken.ExpiresAt.UTC().Format(time.RFC3339),
		})
	}

	outputTokenText(accessToken, io.Writer)
	return nil
}

// outputTokenText outputs the access token in human-readable text format.
func outputTokenText(accessToken *voiceDomain.AccessToken, writer io.Writer) {
	_, _ = fmt.Fprintln(writer, "\nAccess token issued successfully!")
	_, _ = fmt.Fprintf(writer, "Identity: %s\n", accessToken.Identity)
	_, _ = fmt.Fprintf(writer, "Expires At: %s\n", accessToken.ExpiresAt.UTC().Format(time.RFC3339))
	_, _ = fmt.Fprintf(writer, "Token: %s\n", accessToken.Token)
}
