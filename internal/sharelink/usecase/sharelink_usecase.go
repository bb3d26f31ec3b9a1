package usecase

import (
	"context"
	"time"

	"github.com/allisson/leadlink/internal/database"
	apperrors "github.com/allisson/leadlink/internal/errors"
	realtorDomain "github.com/allisson/leadlink/internal/realtor/domain"
	"github.com/allisson/leadlink/internal/sharelink/domain"
	"github.com/allisson/leadlink/internal/sharelink/service"
)

type shareLinkUseCase struct {
	config    Config
	txManager database.TxManager
	generator service.TokenGenerator
	repo      ShareLinkRepository
	realtors  RealtorReader
}

// NewShareLinkUseCase creates a new ShareLinkUseCase.
func NewShareLinkUseCase(
	config Config,
	txManager database.TxManager,
	generator service.TokenGenerator,
	repo ShareLinkRepository,
	realtors RealtorReader,
) ShareLinkUseCase {
	return &shareLinkUseCase{
		config:    config,
		txManager: txManager,
		generator: generator,
		repo:      repo,
		realtors:  realtors,
	}
}

func (uc *shareLinkUseCase) GetOrCreate(ctx context.Context, realtorID string) (*domain.ShareLink, error) {
	link, _, err := uc.getOrCreate(ctx, realtorID)
	return link, err
}

func (uc *shareLinkUseCase) getOrCreate(
	ctx context.Context,
	realtorID string,
) (*domain.ShareLink, *realtorDomain.Realtor, error) {
	realtor, err := uc.realtors.Get(ctx, realtorID)
	if err != nil {
		return nil, nil, err
	}

	var record *domain.TokenRecord
	err = uc.txManager.WithTx(ctx, func(ctx context.Context) error {
		stored, err := uc.repo.Get(ctx, realtor.ID)
		if err == nil {
			record = stored
			return nil
		}
		if !apperrors.Is(err, domain.ErrShareTokenNotFound) {
			return err
		}

		record, err = uc.issue(ctx, realtor)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return uc.link(record), realtor, nil
}

func (uc *shareLinkUseCase) Regenerate(ctx context.Context, realtorID string) (*domain.ShareLink, error) {
	realtor, err := uc.realtors.Get(ctx, realtorID)
	if err != nil {
		return nil, err
	}

	record, err := uc.issue(ctx, realtor)
	if err != nil {
		return nil, err
	}

	return uc.link(record), nil
}

func (uc *shareLinkUseCase) Resolve(ctx context.Context, token string, preview bool) (*domain.Resolution, error) {
	if token == "" {
		return nil, domain.ErrTokenMissing
	}

	realtorID, ok := service.ExtractRealtorID(token)
	if !ok {
		return nil, domain.ErrInvalidTokenFormat
	}

	realtor, err := uc.realtors.Get(ctx, realtorID)
	if err != nil {
		return nil, err
	}

	if uc.config.StrictResolve {
		if err := uc.checkIssued(ctx, realtorID, token); err != nil {
			return nil, err
		}
	}

	return &domain.Resolution{
		Token:   token,
		Realtor: realtor,
		Preview: preview,
	}, nil
}

func (uc *shareLinkUseCase) checkIssued(ctx context.Context, realtorID, token string) error {
	record, err := uc.repo.Get(ctx, realtorID)
	if err != nil {
		if apperrors.Is(err, domain.ErrShareTokenNotFound) {
			return domain.ErrShareTokenNotIssued
		}
		return err
	}

	if record.Token != token {
		return domain.ErrShareTokenNotIssued
	}
	if !record.IsUsable(time.Now()) {
		return domain.ErrShareTokenInactive
	}
	return nil
}

func (uc *shareLinkUseCase) ShareKit(ctx context.Context, realtorID string) (*domain.ShareKit, error) {
	link, realtor, err := uc.getOrCreate(ctx, realtorID)
	if err != nil {
		return nil, err
	}

	return service.RenderShareKit(realtor.Name, link), nil
}

func (uc *shareLinkUseCase) issue(ctx context.Context, realtor *realtorDomain.Realtor) (*domain.TokenRecord, error) {
	record, err := uc.generator.Generate(realtor.ID, realtor.Name)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (uc *shareLinkUseCase) link(record *domain.TokenRecord) *domain.ShareLink {
	return &domain.ShareLink{
		Record:     record,
		URL:        service.BuildShareableURL(record.Token, uc.config.BaseURL),
		PreviewURL: service.BuildPreviewURL(record.Token, uc.config.BaseURL),
	}
}
