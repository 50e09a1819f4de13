package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/rsfinance/rsfinance-service/internal/models"
	"github.com/rsfinance/rsfinance-service/pkg/logger"
	"gorm.io/gorm"
)

// EmailService delivers applicant and back-office notifications over SMTP.
// Connection parameters live in system_configs so staff can change them
// without a restart.
type EmailService struct {
	db *gorm.DB
}

type EmailConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Username    string
	Password    string
	From        string
	UseTLS      bool
	NotifyInbox string
}

func NewEmailService(db *gorm.DB) *EmailService {
	return &EmailService{db: db}
}

func (s *EmailService) GetConfig() *EmailConfig {
	config := &EmailConfig{}

	var configs []models.SystemConfig
	s.db.Where("config_group = ?", "email").Find(&configs)

	for _, c := range configs {
		switch c.Key {
		case "email_enabled":
			config.Enabled = c.Value == "true"
		case "email_host":
			config.Host = c.Value
		case "email_port":
			if port, err := strconv.Atoi(c.Value); err == nil {
				config.Port = port
			}
		case "email_username":
			config.Username = c.Value
		case "email_password":
			config.Password = c.Value
		case "email_from":
			config.From = c.Value
		case "email_use_tls":
			config.UseTLS = c.Value == "true"
		case "notify_inbox":
			config.NotifyInbox = c.Value
		}
	}

	if config.Port == 0 {
		config.Port = 587
	}

	return config
}

// ProcessNotification is the task-queue processor: it loads the referenced
// row and sends the emails for the task's kind. Safe to retry; a deleted
// row simply ends the task.
func (s *EmailService) ProcessNotification(ctx context.Context, task *NotificationTask) error {
	switch task.Kind {
	case NotifyApplicationSubmitted:
		var app models.LoanApplication
		if err := s.db.First(&app, task.ApplicationID).Error; err != nil {
			logger.Infof("[Email] application %d no longer exists, dropping notification", task.ApplicationID)
			return nil
		}
		if err := s.SendApplicationConfirmation(&app); err != nil {
			return err
		}
		return s.SendNewApplicationNotification(&app)

	case NotifyStatusChanged:
		var app models.LoanApplication
		if err := s.db.First(&app, task.ApplicationID).Error; err != nil {
			logger.Infof("[Email] application %d no longer exists, dropping notification", task.ApplicationID)
			return nil
		}
		return s.SendStatusUpdateNotification(&app)

	case NotifyContactReceived:
		var msg models.ContactMessage
		if err := s.db.First(&msg, task.ContactMessageID).Error; err != nil {
			logger.Infof("[Email] contact message %d no longer exists, dropping notification", task.ContactMessageID)
			return nil
		}
		if err := s.SendContactConfirmation(&msg); err != nil {
			return err
		}
		return s.SendContactNotification(&msg)
	}

	logger.Infof("[Email] unknown notification kind %q, dropping", task.Kind)
	return nil
}

// SendApplicationConfirmation tells the applicant their submission was
// received and which identifier to quote when checking status.
func (s *EmailService) SendApplicationConfirmation(app *models.LoanApplication) error {
	config := s.GetConfig()
	if !config.Enabled || config.Host == "" {
		return nil
	}

	subject := fmt.Sprintf("Loan Application Received - %s", app.ApplicationID)
	body := s.buildApplicationBody(app,
		"Thank you for applying. Your application has been received and is pending review.",
		"You can check its status any time using the application ID above.")

	return s.sendEmail(config, []string{app.Email}, subject, body)
}

// SendNewApplicationNotification alerts the back-office inbox about a new
// submission.
func (s *EmailService) SendNewApplicationNotification(app *models.LoanApplication) error {
	config := s.GetConfig()
	if !config.Enabled || config.Host == "" || config.NotifyInbox == "" {
		return nil
	}

	subject := fmt.Sprintf("New Loan Application - %s", app.ApplicationID)
	body := s.buildApplicationBody(app,
		"A new loan application has been submitted and is awaiting review.", "")

	return s.sendEmail(config, []string{config.NotifyInbox}, subject, body)
}

// SendStatusUpdateNotification tells the applicant their status changed.
func (s *EmailService) SendStatusUpdateNotification(app *models.LoanApplication) error {
	config := s.GetConfig()
	if !config.Enabled || config.Host == "" {
		return nil
	}

	subject := fmt.Sprintf("Loan Application %s - %s", app.ApplicationID, app.Status)
	note := ""
	if app.ReviewComments != "" {
		note = "Reviewer comments: " + app.ReviewComments
	}
	body := s.buildApplicationBody(app,
		fmt.Sprintf("The status of your loan application is now %s.", app.Status), note)

	return s.sendEmail(config, []string{app.Email}, subject, body)
}

// SendContactConfirmation acknowledges a contact-page inquiry.
func (s *EmailService) SendContactConfirmation(msg *models.ContactMessage) error {
	config := s.GetConfig()
	if !config.Enabled || config.Host == "" {
		return nil
	}

	subject := "We received your message - " + msg.Subject
	body := fmt.Sprintf(
		"<html><body style=\"font-family: Arial, sans-serif;\"><p>Dear %s,</p><p>Thank you for contacting us. We have received your message and will get back to you shortly.</p><p style=\"color: #888;\">Your message: %s</p></body></html>",
		msg.Name, msg.Message)

	return s.sendEmail(config, []string{msg.Email}, subject, body)
}

// SendContactNotification forwards a contact-page inquiry to the
// back-office inbox.
func (s *EmailService) SendContactNotification(msg *models.ContactMessage) error {
	config := s.GetConfig()
	if !config.Enabled || config.Host == "" || config.NotifyInbox == "" {
		return nil
	}

	subject := "New Contact Message - " + msg.Subject
	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h3>New contact message</h3>")
	sb.WriteString(detailTable([]detailRow{
		{"Name", msg.Name},
		{"Email", msg.Email},
		{"Phone", msg.Phone},
		{"Subject", msg.Subject},
	}))
	sb.WriteString(fmt.Sprintf("<p style=\"white-space: pre-wrap;\">%s</p>", msg.Message))
	sb.WriteString("</body></html>")

	return s.sendEmail(config, []string{config.NotifyInbox}, subject, sb.String())
}

// SendDailyDigest mails aggregate application counts to the back-office
// inbox.
func (s *EmailService) SendDailyDigest(stats *ApplicationStats) error {
	config := s.GetConfig()
	if !config.Enabled || config.Host == "" || config.NotifyInbox == "" {
		return nil
	}

	subject := fmt.Sprintf("Daily Application Digest - %d new today", stats.Today)
	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h3>Application summary</h3>")
	sb.WriteString(detailTable([]detailRow{
		{"Submitted today", strconv.FormatInt(stats.Today, 10)},
		{"Pending", strconv.FormatInt(stats.Pending, 10)},
		{"Under review", strconv.FormatInt(stats.UnderReview, 10)},
		{"Approved", strconv.FormatInt(stats.Approved, 10)},
		{"Rejected", strconv.FormatInt(stats.Rejected, 10)},
		{"Total", strconv.FormatInt(stats.Total, 10)},
	}))
	sb.WriteString("</body></html>")

	return s.sendEmail(config, []string{config.NotifyInbox}, subject, sb.String())
}

type detailRow struct{ label, value string }

func detailTable(rows []detailRow) string {
	var sb strings.Builder
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", r.label, r.value))
	}
	sb.WriteString("</table>")
	return sb.String()
}

func (s *EmailService) buildApplicationBody(app *models.LoanApplication, lead, note string) string {
	var sb strings.Builder

	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<p>Dear %s %s,</p>", app.FirstName, app.LastName))
	sb.WriteString(fmt.Sprintf("<p>%s</p>", lead))
	sb.WriteString(detailTable([]detailRow{
		{"Application ID", app.ApplicationID},
		{"Loan Type", app.LoanType},
		{"Amount", app.LoanAmount.StringFixed(2)},
		{"Tenure (months)", strconv.Itoa(app.PreferredTenure)},
		{"Status", app.Status},
	}))
	if note != "" {
		sb.WriteString(fmt.Sprintf("<p>%s</p>", note))
	}
	sb.WriteString("<hr><p style=\"color: #888; font-size: 12px;\">RS Finance Service</p>")
	sb.WriteString("</body></html>")

	return sb.String()
}

func (s *EmailService) sendEmail(config *EmailConfig, to []string, subject, body string) error {
	from := config.From
	if from == "" {
		from = config.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(to, ",")
	headers["Subject"] = subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)

	var auth smtp.Auth
	if config.Username != "" && config.Password != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	var err error
	if config.UseTLS {
		err = s.sendEmailTLS(config, addr, auth, from, to, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, to, []byte(message.String()))
	}

	if err != nil {
		logger.Infof("[Email] Failed to send email: %v", err)
		return err
	}

	logger.Infof("[Email] Sent notification to %v", to)
	return nil
}

func (s *EmailService) sendEmailTLS(config *EmailConfig, addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: config.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, config.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, addr := range to {
		if err := client.Rcpt(addr); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	_, err = w.Write([]byte(message))
	if err != nil {
		return err
	}

	return w.Close()
}
