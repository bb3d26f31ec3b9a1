package usecase

import (
	"context"
	"strings"

	validation "github.com/jellydator/validation"

	"github.com/allisson/leadlink/internal/database"
	outboxDomain "github.com/allisson/leadlink/internal/outbox/domain"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	appValidation "github.com/allisson/leadlink/internal/validation"
)

// EventRealtorRegistered is the outbox event type written on registration.
const EventRealtorRegistered = "realtor.registered"

type realtorUseCase struct {
	txManager   database.TxManager
	realtorRepo RealtorRepository
	outboxRepo  OutboxEventRepository
}

// NewRealtorUseCase creates a new RealtorUseCase.
func NewRealtorUseCase(
	txManager database.TxManager,
	realtorRepo RealtorRepository,
	outboxRepo OutboxEventRepository,
) RealtorUseCase {
	return &realtorUseCase{
		txManager:   txManager,
		realtorRepo: realtorRepo,
		outboxRepo:  outboxRepo,
	}
}

func normalizeCreateRealtorInput(input CreateRealtorInput) CreateRealtorInput {
	return CreateRealtorInput{
		Name:     strings.TrimSpace(input.Name),
		Email:    strings.ToLower(strings.TrimSpace(input.Email)),
		Company:  strings.TrimSpace(input.Company),
		Phone:    strings.TrimSpace(input.Phone),
		License:  strings.TrimSpace(input.License),
		PhotoURL: strings.TrimSpace(input.PhotoURL),
	}
}

func validateCreateRealtorInput(input CreateRealtorInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.Name,
			validation.Required.Error("name is required"),
			appValidation.NotBlank,
			validation.Length(1, 255).Error("name must be between 1 and 255 characters"),
		),
		validation.Field(&input.Email,
			validation.Required.Error("email is required"),
			appValidation.Email,
			validation.Length(5, 255).Error("email must be between 5 and 255 characters"),
		),
		validation.Field(&input.Company, validation.Length(0, 255)),
		validation.Field(&input.Phone, appValidation.Phone),
		validation.Field(&input.License, validation.Length(0, 64)),
		validation.Field(&input.PhotoURL, appValidation.HTTPURL),
	)
	return appValidation.WrapValidationError(err)
}

func validateCustomizationInput(input UpdateCustomizationInput) error {
	err := validation.ValidateStruct(&input,
		validation.Field(&input.WelcomeMessage, validation.Length(0, 1000)),
		validation.Field(&input.CustomTitle,
			validation.Required.Error("custom title is required"),
			appValidation.NotBlank,
			validation.Length(1, 255),
		),
		validation.Field(&input.PrimaryColor,
			validation.Required.Error("primary color is required"),
			appValidation.HexColor,
		),
		validation.Field(&input.CompanyLogoURL, appValidation.HTTPURL),
	)
	return appValidation.WrapValidationError(err)
}

func (uc *realtorUseCase) Create(ctx context.Context, input CreateRealtorInput) (*realtorDomain.Realtor, error) {
	input = normalizeCreateRealtorInput(input)
	if err := validateCreateRealtorInput(input); err != nil {
		return nil, err
	}

	realtor := &realtorDomain.Realtor{
		ID:            realtorDomain.NewID(),
		Name:          input.Name,
		Email:         input.Email,
		Company:       input.Company,
		Phone:         input.Phone,
		License:       input.License,
		PhotoURL:      input.PhotoURL,
		Customization: realtorDomain.DefaultFormCustomization(),
	}

	err := uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := uc.realtorRepo.Create(ctx, realtor); err != nil {
			return err
		}

		event, err := outboxDomain.NewOutboxEvent(EventRealtorRegistered, map[string]any{
			"realtor_id": realtor.ID,
			"name":       realtor.Name,
			"email":      realtor.Email,
		})
		if err != nil {
			return err
		}
		return uc.outboxRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return realtor, nil
}

func (uc *realtorUseCase) Get(ctx context.Context, id string) (*realtorDomain.Realtor, error) {
	return uc.realtorRepo.GetByID(ctx, id)
}

func (uc *realtorUseCase) UpdateCustomization(
	ctx context.Context,
	id string,
	input UpdateCustomizationInput,
) (*realtorDomain.Realtor, error) {
	if err := validateCustomizationInput(input); err != nil {
		return nil, err
	}

	customization := realtorDomain.FormCustomization{
		WelcomeMessage:  strings.TrimSpace(input.WelcomeMessage),
		CustomTitle:     strings.TrimSpace(input.CustomTitle),
		PrimaryColor:    strings.ToLower(input.PrimaryColor),
		CompanyLogoURL:  strings.TrimSpace(input.CompanyLogoURL),
		ShowPhoto:       input.ShowPhoto,
		ShowContactInfo: input.ShowContactInfo,
	}

	if err := uc.realtorRepo.UpdateCustomization(ctx, id, customization); err != nil {
		return nil, err
	}

	return uc.realtorRepo.GetByID(ctx, id)
}
