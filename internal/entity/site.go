package entity

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var ErrSiteNotFound = errors.New("site não encontrado")

// Value Object: WidgetConfig — aparência e comportamento do botão embutido.
type WidgetConfig struct {
	ButtonColor    string `json:"button_color"`
	Position       string `json:"position"` // bottom-right, bottom-left
	WelcomeMessage string `json:"welcome_message"`
}

// Entidade: Site — uma instalação do widget em um domínio do cliente.
type Site struct {
	ID             string       `json:"id"`
	ClientID       string       `json:"client_id"`
	Name           string       `json:"name"`
	Domain         string       `json:"domain"`
	WhatsAppNumber string       `json:"whatsapp_number"`
	Widget         WidgetConfig `json:"widget"`
	Active         bool         `json:"active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// Factory
func NewSite(clientID, name, domain, whatsappNumber string, widget WidgetConfig) (*Site, error) {
	if widget.Position == "" {
		widget.Position = "bottom-right"
	}
	if widget.ButtonColor == "" {
		widget.ButtonColor = "#25D366"
	}

	site := &Site{
		ID:             uuid.New().String(),
		ClientID:       clientID,
		Name:           name,
		Domain:         domain,
		WhatsAppNumber: whatsappNumber,
		Widget:         widget,
		Active:         true,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := site.Validate(); err != nil {
		return nil, err
	}

	return site, nil
}

func (s *Site) Validate() error {
	if s.ClientID == "" {
		return errors.New("client_id is required")
	}
	if s.Name == "" {
		return errors.New("name is required")
	}
	if s.Domain == "" {
		return errors.New("domain is required")
	}
	if !isValidWhatsAppNumber(s.WhatsAppNumber) {
		return errors.New("whatsapp_number must have 10 to 13 digits")
	}
	if s.Widget.Position != "bottom-right" && s.Widget.Position != "bottom-left" {
		return errors.New("widget position must be bottom-right or bottom-left")
	}
	return nil
}

func isValidWhatsAppNumber(number string) bool {
	cleaned := regexp.MustCompile(`\D`).ReplaceAllString(number, "")
	return len(cleaned) >= 10 && len(cleaned) <= 13
}
