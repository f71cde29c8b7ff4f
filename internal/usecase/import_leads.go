package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/zapcapta/zapcapta-api/internal/entity"
	"github.com/zapcapta/zapcapta-api/internal/importer"
)

// ImportLeadsUseCase liga a esteira de importação aos repositórios reais.
// Os dois modos (arquivo e texto colado) compartilham a mesma resolução de
// tenant usada na captura via widget.
type ImportLeadsUseCase struct {
	ProfileRepo ProfileRepositoryInterface
	ClientRepo  ClientRepositoryInterface
	LeadRepo    entity.LeadRepositoryInterface
	RowTimeout  time.Duration
}

func NewImportLeadsUseCase(
	profileRepo ProfileRepositoryInterface,
	clientRepo ClientRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
) *ImportLeadsUseCase {
	return &ImportLeadsUseCase{
		ProfileRepo: profileRepo,
		ClientRepo:  clientRepo,
		LeadRepo:    leadRepo,
		RowTimeout:  10 * time.Second,
	}
}

// ImportFile processa um arquivo CSV enviado (modo estrito).
func (uc *ImportLeadsUseCase) ImportFile(ctx context.Context, raw string, progress func(float64)) (*importer.Result, error) {
	return uc.run(ctx, raw, importer.FilePolicy, progress)
}

// ImportPasted processa texto colado no dashboard (modo tolerante).
func (uc *ImportLeadsUseCase) ImportPasted(ctx context.Context, raw string, progress func(float64)) (*importer.Result, error) {
	return uc.run(ctx, raw, importer.PastePolicy, progress)
}

func (uc *ImportLeadsUseCase) run(ctx context.Context, raw string, policy *importer.Policy, progress func(float64)) (*importer.Result, error) {
	pipeline := &importer.Pipeline{
		Directory:  &repoDirectory{profiles: uc.ProfileRepo, clients: uc.ClientRepo},
		Store:      &repoLeadStore{leads: uc.LeadRepo},
		Policy:     policy,
		RowTimeout: uc.RowTimeout,
		Progress:   progress,
	}
	return pipeline.Run(ctx, raw)
}

// repoDirectory adapta os repositórios ao contrato do importer.
type repoDirectory struct {
	profiles ProfileRepositoryInterface
	clients  ClientRepositoryInterface
}

func (d *repoDirectory) FindTenantByEmail(ctx context.Context, email string) (string, error) {
	profile, err := d.profiles.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}

func (d *repoDirectory) FindClientByTenant(ctx context.Context, tenantID string) (string, error) {
	client, err := d.clients.FindByProfileID(ctx, tenantID)
	if err != nil {
		return "", err
	}
	return client.ID, nil
}

type repoLeadStore struct {
	leads entity.LeadRepositoryInterface
}

func (s *repoLeadStore) InsertLead(ctx context.Context, lead importer.Lead) error {
	return s.leads.Insert(ctx, &entity.Lead{
		ID:        uuid.New().String(),
		ClientID:  lead.ClientID,
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Message:   lead.Message,
		URL:       lead.URL,
		Origin:    lead.Origin,
		Campaign:  lead.Campaign,
		CreatedAt: lead.CreatedAt,
		UpdatedAt: time.Now(),
	})
}
