package entity

import (
	"context"
	"time"
)

type Lead struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"client_id"`
	SiteID    string    `json:"site_id,omitempty"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message,omitempty"`
	URL       string    `json:"url,omitempty"`
	Origin    string    `json:"origin"`
	Campaign  string    `json:"campaign"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadFilter restringe listagem e exportação por origem e período.
type LeadFilter struct {
	Origin string
	Since  time.Time
	Until  time.Time
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) error
	Delete(ctx context.Context, id string) error
	ListByClient(ctx context.Context, clientID string, filter LeadFilter) ([]*Lead, error)
	CountByClientSince(ctx context.Context, clientID string, since time.Time) (int, error)
}
