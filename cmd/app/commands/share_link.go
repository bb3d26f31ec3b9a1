package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	sharelinkDomain "github.com/allisson/leadlink/internal/sharelink/domain"
	sharelinkUseCase "github.com/allisson/leadlink/internal/sharelink/usecase"
)

// RunShareLink prints the realtor's current share link, issuing one if none exists.
func RunShareLink(
	ctx context.Context,
	useCase sharelinkUseCase.ShareLinkUseCase,
	logger *slog.Logger,
	realtorID string,
	format string,
	writer io.Writer,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	link, err := useCase.GetOrCreate(ctx, realtorID)
	if err != nil {
		return fmt.Errorf("failed to get share link: %w", err)
	}

	logger.Info("share link fetched", slog.String("realtor_id", realtorID))
	return printShareLink(link, format, writer)
}

// RunRegenerateShareLink replaces the realtor's share link. The previous URL stops
// matching the stored record.
func RunRegenerateShareLink(
	ctx context.Context,
	useCase sharelinkUseCase.ShareLinkUseCase,
	logger *slog.Logger,
	realtorID string,
	format string,
	writer io.Writer,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	link, err := useCase.Regenerate(ctx, realtorID)
	if err != nil {
		return fmt.Errorf("failed to regenerate share link: %w", err)
	}

	logger.Info("share link regenerated", slog.String("realtor_id", realtorID))
	return printShareLink(link, format, writer)
}

func printShareLink(link *sharelinkDomain.ShareLink, format string, writer io.Writer) error {
	written, err := writeStructured(writer, format, map[string]any{
		"token":       link.Record.Token,
		"url":         link.URL,
		"preview_url": link.PreviewURL,
		"active":      link.Record.Active,
		"created_at":  link.Record.CreatedAt.UTC().Format(sharelinkDomain.TimestampLayout),
		"realtor_id":  link.Record.Metadata.RealtorID,
	})
	if written || err != nil {
		return err
	}

	_, _ = fmt.Fprintf(writer, "Token: %s\n", link.Record.Token)
	_, _ = fmt.Fprintf(writer, "URL: %s\n", link.URL)
	_, _ = fmt.Fprintf(writer, "Preview URL: %s\n", link.PreviewURL)
	_, _ = fmt.Fprintf(writer, "Created At: %s\n", link.Record.CreatedAt.UTC().Format(sharelinkDomain.TimestampLayout))
	return nil
}
