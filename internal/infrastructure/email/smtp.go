package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"gopkg.in/gomail.v2"

	"subcommerce/internal/application/payment/usecases"
	"subcommerce/internal/shared/config"
)

// Sender delivers composed messages. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPNotifier struct {
	fromAddress string
	fromName    string
	frontendURL string
	sender      Sender
}

func NewSMTPNotifier(cfg config.EmailConfig) *SMTPNotifier {
	return NewSMTPNotifierWithSender(cfg, gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword))
}

func NewSMTPNotifierWithSender(cfg config.EmailConfig, sender Sender) *SMTPNotifier {
	return &SMTPNotifier{
		fromAddress: cfg.FromAddress,
		fromName:    cfg.FromName,
		frontendURL: strings.TrimRight(cfg.FrontendURL, "/"),
		sender:      sender,
	}
}

var activatedHTML = template.Must(template.New("activated").Parse(`<html>
<body>
	<h2>Your subscription is active</h2>
	<p>Hi {{.UserName}},</p>
	<p>Thanks for your payment of {{.Amount}} {{.Currency}}.</p>
	<p>Your <strong>{{.ProductTitle}}</strong> subscription is active.</p>
	<p>It runs until {{.ExpiresAt}}.</p>
	<p><a href="{{.URL}}">View your subscriptions</a></p>
</body>
</html>`))

type activatedView struct {
	UserName     string
	ProductTitle string
	Amount       string
	Currency     string
	ExpiresAt    string
	URL          string
}

func (s *SMTPNotifier) NotifySubscriptionActivated(ctx context.Context, n usecases.SubscriptionActivatedNotification) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	view := activatedView{
		UserName:     n.UserName,
		ProductTitle: n.ProductTitle,
		Amount:       n.Amount,
		Currency:     strings.ToUpper(n.Currency),
		ExpiresAt:    n.ExpiresAt.UTC().Format("2006-01-02 15:04 UTC"),
		URL:          fmt.Sprintf("%s/subscriptions/%d", s.frontendURL, n.SubscriptionID),
	}

	var html bytes.Buffer
	if err := activatedHTML.Execute(&html, view); err != nil {
		return fmt.Errorf("failed to render activation email: %w", err)
	}

	plain := fmt.Sprintf(`Hi %s,

Thanks for your payment of %s %s.
Your %s subscription is active until %s.

View your subscriptions: %s
`, view.UserName, view.Amount, view.Currency, view.ProductTitle, view.ExpiresAt, view.URL)

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromAddress, s.fromName)
	m.SetHeader("To", n.UserEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your %s subscription is active", n.ProductTitle))
	m.SetBody("text/plain", plain)
	m.AddAlternative("text/html", html.String())

	if err := s.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

var _ usecases.SubscriptionNotifier = (*SMTPNotifier)(nil)
