package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zapcapta/zapcapta-api/internal/entity"
	"github.com/zapcapta/zapcapta-api/internal/infra/queue"
	"github.com/zapcapta/zapcapta-api/internal/origin"
	"github.com/zapcapta/zapcapta-api/internal/usecase"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLeadRepository) ListByClient(ctx context.Context, clientID string, filter entity.LeadFilter) ([]*entity.Lead, error) {
	args := m.Called(ctx, clientID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) CountByClientSince(ctx context.Context, clientID string, since time.Time) (int, error) {
	args := m.Called(ctx, clientID, since)
	return args.Int(0), args.Error(1)
}

// MockSiteRepository
type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) FindByID(ctx context.Context, id string) (*entity.Site, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Site), args.Error(1)
}

func (m *MockSiteRepository) ListByClient(ctx context.Context, clientID string) ([]*entity.Site, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Site), args.Error(1)
}

func (m *MockSiteRepository) Create(ctx context.Context, site *entity.Site) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

// MockClientRepository
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindByID(ctx context.Context, id string) (*entity.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

func (m *MockClientRepository) FindByProfileID(ctx context.Context, profileID string) (*entity.Client, error) {
	args := m.Called(ctx, profileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Client), args.Error(1)
}

// MockPlanRepository
type MockPlanRepository struct {
	mock.Mock
}

func (m *MockPlanRepository) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Plan), args.Error(1)
}

// MockProducer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishLeadCaptured(ctx context.Context, payload queue.LeadCapturedPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func validInput() usecase.SubmitLeadInput {
	return usecase.SubmitLeadInput{
		SiteID:      "site-1",
		Name:        "João Silva",
		Email:       "joao@exemplo.com",
		Phone:       "11999998888",
		Message:     "Quero um orçamento",
		PageURL:     "https://cliente.com/lp?utm_source=google&utm_medium=cpc&utm_campaign=promo",
		ReferrerURL: "https://www.google.com/",
	}
}

func activeSite() *entity.Site {
	return &entity.Site{
		ID:       "site-1",
		ClientID: "client-1",
		Name:     "LP Principal",
		Active:   true,
	}
}

func activeClient() *entity.Client {
	return &entity.Client{
		ID:        "client-1",
		ProfileID: "profile-1",
		PlanID:    "plan-basic",
		Status:    "ACTIVE",
	}
}

func newSubmitUC(leadRepo *MockLeadRepository, siteRepo *MockSiteRepository, clientRepo *MockClientRepository, planRepo *MockPlanRepository, producer *MockProducer) *usecase.SubmitLeadUseCase {
	return usecase.NewSubmitLeadUseCase(leadRepo, siteRepo, clientRepo, planRepo, producer)
}

func TestSubmitLead_Sucesso(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	siteRepo := new(MockSiteRepository)
	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)
	producer := new(MockProducer)

	siteRepo.On("FindByID", mock.Anything, "site-1").Return(activeSite(), nil)
	clientRepo.On("FindByID", mock.Anything, "client-1").Return(activeClient(), nil)
	planRepo.On("FindByID", mock.Anything, "plan-basic").Return(&entity.Plan{ID: "plan-basic", MaxLeadsPerMonth: 100}, nil)
	leadRepo.On("CountByClientSince", mock.Anything, "client-1", mock.Anything).Return(10, nil)
	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(nil)

	uc := newSubmitUC(leadRepo, siteRepo, clientRepo, planRepo, producer)
	output, err := uc.Execute(context.Background(), validInput())

	require.NoError(t, err)
	assert.NotEmpty(t, output.ID)
	assert.Equal(t, origin.GoogleAds, output.Origin)
	assert.Equal(t, "promo", output.Campaign)

	leadRepo.AssertCalled(t, "Insert", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Origin == origin.GoogleAds && l.Campaign == "promo" && l.ClientID == "client-1"
	}))
	producer.AssertNumberOfCalls(t, "PublishLeadCaptured", 1)
}

func TestSubmitLead_ValidacaoFalha(t *testing.T) {
	uc := newSubmitUC(new(MockLeadRepository), new(MockSiteRepository), new(MockClientRepository), new(MockPlanRepository), new(MockProducer))

	input := validInput()
	input.Email = "não-é-email"
	input.Phone = "123"

	output, err := uc.Execute(context.Background(), input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))

	var domainErr *usecase.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
}

func TestSubmitLead_SiteInativo(t *testing.T) {
	siteRepo := new(MockSiteRepository)
	site := activeSite()
	site.Active = false
	siteRepo.On("FindByID", mock.Anything, "site-1").Return(site, nil)

	uc := newSubmitUC(new(MockLeadRepository), siteRepo, new(MockClientRepository), new(MockPlanRepository), new(MockProducer))
	output, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, output)
	var domainErr *usecase.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SITE_INACTIVE", domainErr.Code)
}

func TestSubmitLead_LimiteDoPlano(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	siteRepo := new(MockSiteRepository)
	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)

	siteRepo.On("FindByID", mock.Anything, "site-1").Return(activeSite(), nil)
	clientRepo.On("FindByID", mock.Anything, "client-1").Return(activeClient(), nil)
	planRepo.On("FindByID", mock.Anything, "plan-basic").Return(&entity.Plan{ID: "plan-basic", MaxLeadsPerMonth: 50}, nil)
	leadRepo.On("CountByClientSince", mock.Anything, "client-1", mock.Anything).Return(50, nil)

	uc := newSubmitUC(leadRepo, siteRepo, clientRepo, planRepo, new(MockProducer))
	output, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, output)
	var domainErr *usecase.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "PLAN_LIMIT_REACHED", domainErr.Code)
	leadRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestSubmitLead_PublishFalhaCompensaInsercao(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	siteRepo := new(MockSiteRepository)
	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)
	producer := new(MockProducer)

	siteRepo.On("FindByID", mock.Anything, "site-1").Return(activeSite(), nil)
	clientRepo.On("FindByID", mock.Anything, "client-1").Return(activeClient(), nil)
	planRepo.On("FindByID", mock.Anything, "plan-basic").Return(&entity.Plan{ID: "plan-basic"}, nil)
	leadRepo.On("CountByClientSince", mock.Anything, "client-1", mock.Anything).Return(0, nil)
	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	leadRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(errors.New("broker fora do ar"))

	uc := newSubmitUC(leadRepo, siteRepo, clientRepo, planRepo, producer)
	output, err := uc.Execute(context.Background(), validInput())

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, usecase.IsTechnicalError(err))
	leadRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSubmitLead_SemReferrerClassificaDireto(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	siteRepo := new(MockSiteRepository)
	clientRepo := new(MockClientRepository)
	planRepo := new(MockPlanRepository)
	producer := new(MockProducer)

	siteRepo.On("FindByID", mock.Anything, "site-1").Return(activeSite(), nil)
	clientRepo.On("FindByID", mock.Anything, "client-1").Return(activeClient(), nil)
	planRepo.On("FindByID", mock.Anything, "plan-basic").Return(&entity.Plan{ID: "plan-basic"}, nil)
	leadRepo.On("CountByClientSince", mock.Anything, "client-1", mock.Anything).Return(0, nil)
	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.PageURL = "https://cliente.com/contato"
	input.ReferrerURL = ""

	uc := newSubmitUC(leadRepo, siteRepo, clientRepo, planRepo, producer)
	output, err := uc.Execute(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, origin.Direct, output.Origin)
	assert.Equal(t, origin.CampaignNotInformed, output.Campaign)
}
