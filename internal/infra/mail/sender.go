package mail

import (
	"bytes"
	"fmt"
	"path/filepath"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/zapcapta/zapcapta-api/internal/infra/queue"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendLeadNotification avisa o dono do site que chegou lead novo.
func (s *EmailSender) SendLeadNotification(to string, payload queue.LeadCapturedPayload) error {
	data := LeadNotificationData{
		SiteName: payload.SiteName,
		Name:     payload.Name,
		Email:    payload.Email,
		Phone:    payload.Phone,
		Message:  payload.Message,
		Origin:   payload.Origin,
		Campaign: payload.Campaign,
	}

	tmplPath := filepath.Join("templates", "lead_notification.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return fmt.Errorf("erro ao ler template de email: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Lead novo no site %s! 🎉", payload.SiteName))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
