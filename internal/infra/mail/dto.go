package mail

type LeadNotificationData struct {
	SiteName string
	Name     string
	Email    string
	Phone    string
	Message  string
	Origin   string
	Campaign string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}
