package config

// Mail transport constants
const (
	MailTransportSMTP = "smtp"
	MailTransportLog  = "log"
)

// DefaultMailSender is used when no default_sender is configured
const DefaultMailSender = "noreply@contact-web.local"

// Defaults applied when a Gmail credentials file is used
const (
	GmailSMTPServer = "smtp.gmail.com"
	GmailSMTPPort   = 587
)
