package service

import (
	"crypto/tls"
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"

	"github.com/streamlinelabs/backend/internal/config"
	"github.com/streamlinelabs/backend/internal/logging"
	"github.com/streamlinelabs/backend/internal/models"
)

// Excerpt length for the auto-reply message summary
const excerptLimit = 200

// Mailer sends notification emails for new contact messages
type Mailer interface {
	SendContactNotification(msg *models.ContactMessage) error
}

// MailService sends notifications over SMTP.
// With no credentials configured it logs instead of sending, so local
// development works without a mail account.
type MailService struct {
	cfg *config.Config
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config) *MailService {
	return &MailService{cfg: cfg}
}

var _ Mailer = (*MailService)(nil)

// SendContactNotification sends two emails for a persisted contact message:
// a notification to the admin address, then an auto-reply to the submitter.
// Both sends are synchronous and single-attempt.
func (s *MailService) SendContactNotification(msg *models.ContactMessage) error {
	logger := logging.GetLogger()

	if !s.cfg.MailEnabled() {
		logger.Info("Mail disabled, skipping notification for message id=%d from %s", msg.ID, msg.Email)
		return nil
	}

	adminSubject := fmt.Sprintf("New Contact Form Submission - %s", msg.Name)
	if err := s.send(s.cfg.AdminEmail, adminSubject, buildAdminBody(msg)); err != nil {
		return fmt.Errorf("admin notification: %w", err)
	}

	if err := s.send(msg.Email, "Thank you for contacting Streamline Labs", buildAutoReplyBody(msg)); err != nil {
		return fmt.Errorf("auto-reply: %w", err)
	}

	return nil
}

// send delivers one HTML email over SMTP with STARTTLS and SASL PLAIN auth
func (s *MailService) send(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.MailServer, s.cfg.MailPort)

	client, err := smtp.DialStartTLS(addr, &tls.Config{ServerName: s.cfg.MailServer})
	if err != nil {
		return fmt.Errorf("SMTP dial failed: %w", err)
	}
	defer client.Close()

	auth := sasl.NewPlainClient("", s.cfg.MailUsername, s.cfg.MailPassword)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("SMTP auth failed: %w", err)
	}

	if err := client.Mail(s.cfg.MailUsername, nil); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to, nil); err != nil {
		return fmt.Errorf("RCPT TO %q failed: %w", to, err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := writer.Write(buildRawMessage(s.cfg.MailUsername, to, subject, htmlBody)); err != nil {
		return fmt.Errorf("writing message failed: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing message failed: %w", err)
	}

	if err := client.Quit(); err != nil {
		return fmt.Errorf("QUIT failed: %w", err)
	}
	return nil
}

func buildRawMessage(from, to, subject, htmlBody string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(htmlBody)
	b.WriteString("\r\n")
	return []byte(b.String())
}

// buildAdminBody renders the admin-facing notification email
func buildAdminBody(msg *models.ContactMessage) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
            <div style="background: linear-gradient(135deg, #2563eb, #06b6d4); padding: 30px; text-align: center; color: white;">
                <h2 style="margin: 0;">New Contact Message</h2>
                <p style="margin: 10px 0 0 0; opacity: 0.9;">Streamline Labs Website</p>
            </div>

            <div style="padding: 30px; background: #f8fafc;">
                <div style="background: white; padding: 25px; border-radius: 10px; margin-bottom: 20px;">
                    <h3 style="color: #2563eb; margin-bottom: 15px;">Contact Details</h3>
                    <p><strong>Name:</strong> %s</p>
                    <p><strong>Email:</strong> %s</p>
                    <p><strong>Date:</strong> %s</p>
                    <p><strong>IP Address:</strong> %s</p>
                </div>

                <div style="background: white; padding: 25px; border-radius: 10px;">
                    <h3 style="color: #2563eb; margin-bottom: 15px;">Message</h3>
                    <div style="background: #f1f5f9; padding: 20px; border-radius: 8px; line-height: 1.6;">
                        %s
                    </div>
                </div>

                <div style="text-align: center; margin-top: 25px;">
                    <a href="mailto:%s"
                       style="background: linear-gradient(135deg, #2563eb, #06b6d4);
                              color: white;
                              padding: 12px 25px;
                              text-decoration: none;
                              border-radius: 25px;
                              font-weight: bold;">
                        Reply to %s
                    </a>
                </div>
            </div>

            <div style="text-align: center; padding: 20px; color: #64748b; font-size: 14px;">
                <p>This message was sent from your Streamline Labs website contact form.</p>
            </div>
        </div>`,
		msg.Name,
		msg.Email,
		msg.CreatedAt.Format("January 02, 2006 at 03:04 PM"),
		ipOrUnknown(msg.IPAddress),
		msg.Message,
		msg.Email,
		msg.Name,
	)
}

// buildAutoReplyBody renders the submitter-facing acknowledgment email
func buildAutoReplyBody(msg *models.ContactMessage) string {
	return fmt.Sprintf(`
        <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
            <div style="background: linear-gradient(135deg, #2563eb, #06b6d4); padding: 30px; text-align: center; color: white;">
                <h2 style="margin: 0;">Thank You, %s!</h2>
                <p style="margin: 10px 0 0 0; opacity: 0.9;">We've received your message</p>
            </div>

            <div style="padding: 30px; background: #f8fafc;">
                <div style="background: white; padding: 25px; border-radius: 10px; margin-bottom: 20px;">
                    <h3 style="color: #2563eb; margin-bottom: 15px;">What's Next?</h3>
                    <p style="line-height: 1.6; margin-bottom: 15px;">
                        Thank you for reaching out to Streamline Labs! We're excited to learn about your business needs.
                    </p>
                    <p style="line-height: 1.6; margin-bottom: 15px;">
                        Our team will review your message and get back to you within <strong>24 hours</strong> with:
                    </p>
                    <ul style="color: #64748b; line-height: 1.8; margin-left: 20px;">
                        <li>A personalized response to your inquiry</li>
                        <li>Relevant solutions for your business</li>
                        <li>Next steps to get started</li>
                    </ul>
                </div>

                <div style="background: white; padding: 25px; border-radius: 10px; margin-bottom: 20px;">
                    <h3 style="color: #2563eb; margin-bottom: 15px;">Your Message Summary</h3>
                    <div style="background: #f1f5f9; padding: 15px; border-radius: 8px; font-style: italic; color: #475569;">
                        "%s"
                    </div>
                </div>

                <div style="background: white; padding: 25px; border-radius: 10px; text-align: center;">
                    <h3 style="color: #2563eb; margin-bottom: 15px;">Need Immediate Help?</h3>
                    <p style="margin-bottom: 15px;">Feel free to call us directly:</p>
                    <p style="font-size: 18px; font-weight: bold; color: #06b6d4;">0114404621</p>
                    <p style="color: #64748b; font-size: 14px;">Business hours: 8 AM - 6 PM, Monday - Friday</p>
                </div>
            </div>

            <div style="text-align: center; padding: 20px; color: #64748b; font-size: 14px;">
                <p><strong>Streamline Labs</strong> - Helping businesses work smarter, not hard</p>
                <p>Kasarani Road, Nairobi | infostreamlinelabs@gmail.com</p>
            </div>
        </div>`,
		msg.Name,
		excerpt(msg.Message, excerptLimit),
	)
}

// excerpt truncates a message for the auto-reply summary, appending an
// ellipsis marker when the original exceeds the limit
func excerpt(message string, limit int) string {
	runes := []rune(message)
	if len(runes) <= limit {
		return message
	}
	return string(runes[:limit]) + "..."
}

func ipOrUnknown(ip *string) string {
	if ip == nil || *ip == "" {
		return "Unknown"
	}
	return *ip
}
