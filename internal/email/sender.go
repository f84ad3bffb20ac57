package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"rishta_backend/internal/config"
)

// GomailSender is the SMTP-backed Provider used in production.
type GomailSender struct {
	cfg       *config.Config
	templates *TemplateManager
	baseURL   string
}

func NewGomailSender(cfg *config.Config) (*GomailSender, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}
	return &GomailSender{
		cfg:       cfg,
		templates: tm,
		baseURL:   "https://rishta.app",
	}, nil
}

func (s *GomailSender) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Email.FromEmail, s.cfg.Email.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (s *GomailSender) sendTemplate(to, subject, templateName string, data interface{}) error {
	body, err := s.templates.Render(templateName, data)
	if err != nil {
		return err
	}
	return s.send(to, subject, body)
}

func (s *GomailSender) SendWelcome(to, name string) error {
	data := TemplateData{
		UserName:   name,
		Subject:    "Welcome to Rishta",
		ActionURL:  s.baseURL + "/profile",
		ActionText: "Complete your profile",
	}
	return s.sendTemplate(to, "Welcome to Rishta", "welcome", data)
}

func (s *GomailSender) SendVerification(to, token string) error {
	data := TemplateData{
		Subject:    "Confirm your email",
		ActionURL:  fmt.Sprintf("%s/verify?token=%s", s.baseURL, token),
		ActionText: "Confirm email",
	}
	return s.sendTemplate(to, "Confirm your email", "verification", data)
}

func (s *GomailSender) SendPasswordReset(to, token string) error {
	data := TemplateData{
		Subject:    "Reset your password",
		ActionURL:  fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token),
		ActionText: "Reset password",
	}
	return s.sendTemplate(to, "Reset your password", "password_reset", data)
}

func (s *GomailSender) SendMatchNotification(to, name, matchName string) error {
	data := MatchData{
		TemplateData: TemplateData{UserName: name, Subject: "You have a new match"},
		MatchName:    matchName,
	}
	return s.sendTemplate(to, "You have a new match", "new_match", data)
}

func (s *GomailSender) SendReferralReward(to, name string, rewardDays int) error {
	data := ReferralRewardData{
		TemplateData: TemplateData{UserName: name, Subject: "Your referral reward"},
		RewardDays:   rewardDays,
	}
	return s.sendTemplate(to, "Your referral reward", "referral_reward", data)
}

func (s *GomailSender) SendNotification(to, subject, message string) error {
	data := TemplateData{Subject: subject, Message: message}
	return s.sendTemplate(to, subject, "notification", data)
}
