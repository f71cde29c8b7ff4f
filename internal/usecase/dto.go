package usecase

type SubmitLeadInput struct {
	SiteID      string `json:"site_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Message     string `json:"message"`
	PageURL     string `json:"page_url"`
	ReferrerURL string `json:"referrer_url"`
}

type SubmitLeadOutput struct {
	ID       string `json:"id"`
	Origin   string `json:"origin"`
	Campaign string `json:"campaign"`
	Msg      string `json:"msg"`
}

type CreateSiteInput struct {
	ClientID       string `json:"client_id"`
	Name           string `json:"name"`
	Domain         string `json:"domain"`
	WhatsAppNumber string `json:"whatsapp_number"`
	ButtonColor    string `json:"button_color"`
	Position       string `json:"position"`
	WelcomeMessage string `json:"welcome_message"`
}
