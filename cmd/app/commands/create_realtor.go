package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	realtorUseCase "github.com/allisson/leadlink/internal/realtor/usecase"
)

// RunCreateRealtor registers a realtor and prints the issued id.
//
// Requirements: Database must be migrated and accessible.
func RunCreateRealtor(
	ctx context.Context,
	useCase realtorUseCase.RealtorUseCase,
	logger *slog.Logger,
	input realtorUseCase.CreateRealtorInput,
	format string,
	writer io.Writer,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Info("creating realtor", slog.String("email", input.Email))

	realtor, err := useCase.Create(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to create realtor: %w", err)
	}

	written, err := writeStructured(writer, format, realtorOutput(realtor))
	if err != nil {
		return err
	}
	if !written {
		_, _ = fmt.Fprintln(writer, "Realtor created successfully!")
		_, _ = fmt.Fprintf(writer, "Realtor ID: %s\n", realtor.ID)
		_, _ = fmt.Fprintf(writer, "Name: %s\n", realtor.Name)
		_, _ = fmt.Fprintf(writer, "Email: %s\n", realtor.Email)
	}

	logger.Info("realtor created", slog.String("realtor_id", realtor.ID))
	return nil
}

func realtorOutput(realtor *realtorDomain.Realtor) map[string]string {
	return map[string]string{
		"realtor_id": realtor.ID,
		"name":       realtor.Name,
		"email":      realtor.Email,
		"company":    realtor.Company,
	}
}
