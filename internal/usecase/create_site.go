package usecase

import (
	"context"

	"github.com/zapcapta/zapcapta-api/internal/entity"
)

type CreateSiteUseCase struct {
	SiteRepo   SiteRepositoryInterface
	ClientRepo ClientRepositoryInterface
	PlanRepo   PlanRepositoryInterface
}

func NewCreateSiteUseCase(
	siteRepo SiteRepositoryInterface,
	clientRepo ClientRepositoryInterface,
	planRepo PlanRepositoryInterface,
) *CreateSiteUseCase {
	return &CreateSiteUseCase{
		SiteRepo:   siteRepo,
		ClientRepo: clientRepo,
		PlanRepo:   planRepo,
	}
}

func (uc *CreateSiteUseCase) Execute(ctx context.Context, input CreateSiteInput) (*entity.Site, error) {
	client, err := uc.ClientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		return nil, &DomainError{
			Code:    "CLIENT_NOT_FOUND",
			Message: "cliente inválido: " + err.Error(),
		}
	}

	plan, err := uc.PlanRepo.FindByID(ctx, client.PlanID)
	if err != nil {
		return nil, &DomainError{
			Code:    "PLAN_NOT_FOUND",
			Message: "plano inválido: " + err.Error(),
		}
	}

	existing, err := uc.SiteRepo.ListByClient(ctx, client.ID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to list sites: " + err.Error(),
		}
	}
	if !plan.AllowsSites(len(existing)) {
		return nil, &DomainError{
			Code:    "PLAN_LIMIT_REACHED",
			Message: "limite de sites do plano atingido",
		}
	}

	site, err := entity.NewSite(client.ID, input.Name, input.Domain, input.WhatsAppNumber, entity.WidgetConfig{
		ButtonColor:    input.ButtonColor,
		Position:       input.Position,
		WelcomeMessage: input.WelcomeMessage,
	})
	if err != nil {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: err.Error(),
		}
	}

	if err := uc.SiteRepo.Create(ctx, site); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to create site: " + err.Error(),
		}
	}

	return site, nil
}
