package mail

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gomail "gopkg.in/gomail.v2"

	"agrovista.dev/agro-telemetry-service/pkg/common"
)

// OutboundMail mirrors the notification payload. The destination address
// doubles as the sender address.
type OutboundMail struct {
	Destination string
	Title       string
	Message     string
}

type Dispatcher interface {
	Send(ctx context.Context, mail OutboundMail) error
}

type Config struct {
	Host              string
	Port              int
	Username          string
	Password          string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthRefreshToken string
	SendTimeout       time.Duration
}

const DefaultSendTimeout = 10 * time.Second

// SMTPDispatcher talks to a mail relay over SMTP. When OAuth credentials are
// configured the dialer authenticates with XOAUTH2 instead of a password.
type SMTPDispatcher struct {
	cfg    Config
	tokens oauth2.TokenSource
}

func NewSMTPDispatcher(cfg Config) *SMTPDispatcher {
	if cfg.SendTimeout == 0 {
		cfg.SendTimeout = DefaultSendTimeout
	}

	d := &SMTPDispatcher{cfg: cfg}

	if cfg.OAuthClientID != "" {
		oauthCfg := &oauth2.Config{
			ClientID:     cfg.OAuthClientID,
			ClientSecret: cfg.OAuthClientSecret,
			Endpoint:     google.Endpoint,
		}
		d.tokens = oauthCfg.TokenSource(context.Background(), &oauth2.Token{
			RefreshToken: cfg.OAuthRefreshToken,
		})
	}

	return d
}

func (d *SMTPDispatcher) Send(ctx context.Context, mail OutboundMail) error {
	logger := common.GetLoggerWith(common.LoggerNameMailer)

	message := ComposeMessage(mail)

	dialer := gomail.NewDialer(d.cfg.Host, d.cfg.Port, d.cfg.Username, d.cfg.Password)
	if d.tokens != nil {
		token, err := d.tokens.Token()
		if err != nil {
			return fmt.Errorf("refresh oauth token: %w", err)
		}
		dialer.Auth = NewXOAuth2Auth(d.cfg.Username, token.AccessToken)
	}

	done := make(chan error, 1)
	go func() { done <- dialer.DialAndSend(message) }()

	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-time.After(d.cfg.SendTimeout):
		return fmt.Errorf("mail send timed out after %s", d.cfg.SendTimeout)
	case <-ctx.Done():
		return ctx.Err()
	}

	logger.Info("Email sent",
		zap.String("destination", mail.Destination),
		zap.String("title", mail.Title))

	return nil
}

func ComposeMessage(mail OutboundMail) *gomail.Message {
	message := gomail.NewMessage()
	message.SetHeader("From", mail.Destination)
	message.SetHeader("To", mail.Destination)
	message.SetHeader("Subject", mail.Title)
	message.SetBody("text/plain", mail.Message)
	return message
}
