package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	"github.com/allisson/leadlink/internal/database"
	leadDomain "github.com/allisson/leadlink/internal/lead/domain"
	outboxDomain "github.com/allisson/leadlink/internal/outbox/domain"
	appValidation "github.com/allisson/leadlink/internal/validation"
)

// EventLeadCaptured is the outbox event type written for every accepted lead.
const EventLeadCaptured = "lead.captured"

type leadUseCase struct {
	txManager  database.TxManager
	leadRepo   LeadRepository
	outboxRepo OutboxEventRepository
	tokens     TokenResolver
	realtors   RealtorReader
}

// NewLeadUseCase creates a new LeadUseCase.
func NewLeadUseCase(
	txManager database.TxManager,
	leadRepo LeadRepository,
	outboxRepo OutboxEventRepository,
	tokens TokenResolver,
	realtors RealtorReader,
) LeadUseCase {
	return &leadUseCase{
		txManager:  txManager,
		leadRepo:   leadRepo,
		outboxRepo: outboxRepo,
		tokens:     tokens,
		realtors:   realtors,
	}
}

func toAny[T any](values []T) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

var (
	propertyTypes    = toAny(leadDomain.PropertyTypes)
	sellingTimelines = toAny(leadDomain.SellingTimelines)
)

func normalizeSubmitLeadInput(input SubmitLeadInput) SubmitLeadInput {
	return SubmitLeadInput{
		FullName:        strings.TrimSpace(input.FullName),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:           strings.TrimSpace(input.Phone),
		PropertyAddress: strings.TrimSpace(input.PropertyAddress),
		City:            strings.TrimSpace(input.City),
		PropertyType:    input.PropertyType,
		SellingTimeline: input.SellingTimeline,
		EstimatedValue:  strings.TrimSpace(input.EstimatedValue),
		Notes:           strings.TrimSpace(input.Notes),
	}
}

func validateSubmitLeadInput(input SubmitLeadInput) error {
	propertyType := leadDomain.PropertyType(input.PropertyType)
	sellingTimeline := leadDomain.SellingTimeline(input.SellingTimeline)

	err := validation.Errors{
		"full_name": validation.Validate(input.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 255),
		),
		"email": validation.Validate(input.Email,
			validation.Required.Error("email address is required"),
			appValidation.LeadEmail.Error("invalid email address"),
			validation.Length(5, 255),
		),
		"phone": validation.Validate(input.Phone,
			validation.Required.Error("phone number is required"),
			appValidation.Phone.Error("please enter a valid phone number"),
		),
		"property_address": validation.Validate(input.PropertyAddress,
			validation.Required.Error("property address is required"),
			validation.Length(1, 500),
		),
		"city": validation.Validate(input.City,
			validation.Required.Error("city is required"),
			validation.Length(1, 255),
		),
		"property_type": validation.Validate(propertyType,
			validation.Required.Error("property type is required"),
			validation.In(propertyTypes...).Error("property type is not supported"),
		),
		"selling_timeline": validation.Validate(sellingTimeline,
			validation.Required.Error("selling timeline is required"),
			validation.In(sellingTimelines...).Error("selling timeline is not supported"),
		),
		"estimated_value": validation.Validate(input.EstimatedValue, validation.Length(0, 64)),
		"notes":           validation.Validate(input.Notes, validation.Length(0, 2000)),
	}.Filter()
	return appValidation.WrapValidationError(err)
}

func (uc *leadUseCase) Submit(
	ctx context.Context,
	token string,
	preview bool,
	input SubmitLeadInput,
) (*leadDomain.Lead, error) {
	resolution, err := uc.tokens.Resolve(ctx, token, preview)
	if err != nil {
		return nil, err
	}
	if resolution.Preview {
		return nil, leadDomain.ErrPreviewSubmission
	}

	input = normalizeSubmitLeadInput(input)
	if err := validateSubmitLeadInput(input); err != nil {
		return nil, err
	}

	lead := &leadDomain.Lead{
		ID:              uuid.Must(uuid.NewV7()),
		RealtorID:       resolution.Realtor.ID,
		Token:           resolution.Token,
		FullName:        input.FullName,
		Email:           input.Email,
		Phone:           leadDomain.FormatPhone(input.Phone),
		PropertyAddress: input.PropertyAddress,
		City:            input.City,
		PropertyType:    leadDomain.PropertyType(input.PropertyType),
		SellingTimeline: leadDomain.SellingTimeline(input.SellingTimeline),
		EstimatedValue:  input.EstimatedValue,
		Notes:           input.Notes,
		Source:          leadDomain.SourcePublicForm,
		SubmittedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		duplicate, err := uc.leadRepo.ExistsByEmail(ctx, lead.RealtorID, lead.Email)
		if err != nil {
			return err
		}
		lead.IsDuplicate = duplicate

		if err := uc.leadRepo.Create(ctx, lead); err != nil {
			return err
		}

		event, err := outboxDomain.NewOutboxEvent(EventLeadCaptured, map[string]any{
			"lead_id":          lead.ID.String(),
			"realtor_id":       lead.RealtorID,
			"full_name":        lead.FullName,
			"email":            lead.Email,
			"phone":            lead.Phone,
			"property_type":    lead.PropertyType,
			"selling_timeline": lead.SellingTimeline,
			"is_duplicate":     lead.IsDuplicate,
			"submitted_at":     lead.SubmittedAt,
		})
		if err != nil {
			return err
		}
		return uc.outboxRepo.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}

	return lead, nil
}

func (uc *leadUseCase) ListByRealtor(
	ctx context.Context,
	realtorID string,
	offset, limit int,
) ([]*leadDomain.Lead, error) {
	if _, err := uc.realtors.Get(ctx, realtorID); err != nil {
		return nil, err
	}
	return uc.leadRepo.ListByRealtor(ctx, realtorID, offset, limit)
}
