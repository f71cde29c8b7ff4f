package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var (
	ErrProfileNotFound = errors.New("perfil não encontrado")
	ErrClientNotFound  = errors.New("cliente não encontrado")
)

// Profile é a identidade de login do tenant (resolvida por e-mail).
type Profile struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // ADMIN, CLIENT
}

// Entidade: Client — a conta dona dos sites e leads.
type Client struct {
	ID          string    `json:"id"`
	ProfileID   string    `json:"profile_id"`
	CompanyName string    `json:"company_name"`
	PlanID      string    `json:"plan_id"`
	Status      string    `json:"status"` // ACTIVE, SUSPENDED
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Factory
func NewClient(profileID, companyName, planID string) (*Client, error) {
	client := &Client{
		ID:          uuid.New().String(),
		ProfileID:   profileID,
		CompanyName: companyName,
		PlanID:      planID,
		Status:      "ACTIVE",
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := client.Validate(); err != nil {
		return nil, err
	}

	return client, nil
}

func (c *Client) Validate() error {
	if c.ProfileID == "" {
		return errors.New("profile_id is required")
	}
	if c.CompanyName == "" {
		return errors.New("company_name is required")
	}
	return nil
}
