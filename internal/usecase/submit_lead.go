package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zapcapta/zapcapta-api/internal/entity"
	"github.com/zapcapta/zapcapta-api/internal/infra/queue"
	"github.com/zapcapta/zapcapta-api/internal/origin"
)

// SubmitLeadUseCase recebe o POST do widget embutido: valida, classifica a
// origem de tráfego, checa o limite do plano e persiste o lead, publicando o
// evento que dispara a notificação por e-mail.
type SubmitLeadUseCase struct {
	LeadRepo   entity.LeadRepositoryInterface
	SiteRepo   SiteRepositoryInterface
	ClientRepo ClientRepositoryInterface
	PlanRepo   PlanRepositoryInterface
	Queue      QueueProducerInterface
}

func NewSubmitLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	siteRepo SiteRepositoryInterface,
	clientRepo ClientRepositoryInterface,
	planRepo PlanRepositoryInterface,
	producer QueueProducerInterface,
) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{
		LeadRepo:   leadRepo,
		SiteRepo:   siteRepo,
		ClientRepo: clientRepo,
		PlanRepo:   planRepo,
		Queue:      producer,
	}
}

func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*SubmitLeadOutput, error) {
	validationErrors := ValidateSubmitLeadInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	site, err := uc.SiteRepo.FindByID(ctx, input.SiteID)
	if err != nil {
		return nil, &DomainError{
			Code:    "SITE_NOT_FOUND",
			Message: "site inválido: " + err.Error(),
		}
	}
	if !site.Active {
		return nil, &DomainError{
			Code:    "SITE_INACTIVE",
			Message: "site desativado não recebe leads",
		}
	}

	client, err := uc.ClientRepo.FindByID(ctx, site.ClientID)
	if err != nil {
		return nil, &DomainError{
			Code:    "CLIENT_NOT_FOUND",
			Message: "conta do site não encontrada: " + err.Error(),
		}
	}

	// Limite mensal do plano. Plano não encontrado não derruba a captura:
	// lead vale mais que consistência do cadastro de planos.
	if plan, perr := uc.PlanRepo.FindByID(ctx, client.PlanID); perr == nil {
		monthStart := startOfMonth(time.Now())
		count, cerr := uc.LeadRepo.CountByClientSince(ctx, client.ID, monthStart)
		if cerr == nil && !plan.AllowsLeads(count) {
			return nil, &DomainError{
				Code:    "PLAN_LIMIT_REACHED",
				Message: "limite de leads do plano atingido neste mês",
			}
		}
	}

	classification := origin.ClassifyWithReferrer(input.PageURL, input.ReferrerURL)

	lead := &entity.Lead{
		ID:        uuid.New().String(),
		ClientID:  client.ID,
		SiteID:    site.ID,
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		URL:       input.PageURL,
		Origin:    classification.Origin,
		Campaign:  classification.Campaign,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	txn := NewTransaction()

	txn.AddOperation("insert_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Insert(ctx, lead)
	})

	txn.AddCompensation("delete_lead", func(ctx context.Context) error {
		return uc.LeadRepo.Delete(ctx, lead.ID)
	})

	// Publicação faz parte da unidade: lead gravado sem evento é lead que o
	// cliente nunca fica sabendo.
	txn.AddOperation("publish_lead_captured", func(ctx context.Context) error {
		return uc.Queue.PublishLeadCaptured(ctx, queue.LeadCapturedPayload{
			LeadID:   lead.ID,
			ClientID: client.ID,
			SiteID:   site.ID,
			SiteName: site.Name,
			Name:     lead.Name,
			Email:    lead.Email,
			Phone:    lead.Phone,
			Message:  lead.Message,
			Origin:   lead.Origin,
			Campaign: lead.Campaign,
		})
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "LEAD_PERSIST_ERROR",
			Message: "failed to persist lead: " + err.Error(),
		}
	}

	return &SubmitLeadOutput{
		ID:       lead.ID,
		Origin:   lead.Origin,
		Campaign: lead.Campaign,
		Msg:      "Lead capturado com sucesso!",
	}, nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
