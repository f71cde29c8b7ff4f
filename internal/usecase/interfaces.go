package usecase

import (
	"context"

	"github.com/zapcapta/zapcapta-api/internal/entity"
	"github.com/zapcapta/zapcapta-api/internal/infra/queue"
)

type ProfileRepositoryInterface interface {
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)
}

type ClientRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Client, error)
	FindByProfileID(ctx context.Context, profileID string) (*entity.Client, error)
}

type SiteRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Site, error)
	ListByClient(ctx context.Context, clientID string) ([]*entity.Site, error)
	Create(ctx context.Context, site *entity.Site) error
}

type PlanRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Plan, error)
}

type QueueProducerInterface interface {
	PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error
}
