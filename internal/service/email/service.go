package email

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v3"

	"social-account/internal/config"
	"social-account/internal/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

type Service interface {
	SendConfirmEmail(ctx context.Context, toEmail string, v *domain.EmailVerification) error
}

type service struct {
	client    *resend.Client
	config    *config.Config
	templates *template.Template
}

func NewService(cfg *config.Config) (Service, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &service{
		client:    resend.NewClient(cfg.ResendAPIKey),
		config:    cfg,
		templates: tmpl,
	}, nil
}

func (s *service) render(templateName string, data interface{}) (string, error) {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}
	return body.String(), nil
}

func (s *service) sendEmail(ctx context.Context, toEmail, subject, templateName string, data interface{}) error {
	html, err := s.render(templateName, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("Account <%s>", s.config.FromEmail),
		To:      []string{toEmail},
		Html:    html,
		Subject: subject,
	}

	_, err = s.client.Emails.SendWithContext(ctx, params)
	return err
}

type confirmEmailData struct {
	Title string
	Email string
	Link  string
}

func (s *service) confirmEmailData(v *domain.EmailVerification) confirmEmailData {
	return confirmEmailData{
		Title: "Confirm your email",
		Email: v.Email,
		Link: fmt.Sprintf("https://%s/api/v1/account/confirm-email/%s/%s",
			s.config.Domain, v.UserToken, v.RandomToken),
	}
}

func (s *service) SendConfirmEmail(ctx context.Context, toEmail string, v *domain.EmailVerification) error {
	return s.sendEmail(ctx, toEmail, "Confirm your email address", "confirm_email.html", s.confirmEmailData(v))
}
