package emails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	gomail "github.com/go-mail/mail"
)

// Sender sends transactional emails. All sends are best-effort from the
// caller's point of view: services log failures but do not fail the request.
type Sender interface {
	SendWelcome(ctx context.Context, toEmail, name string) error
	SendAccountInvite(ctx context.Context, toEmail, name, link, role, message string) error
	SendAttendanceInvite(ctx context.Context, toEmail, name, link, message string) error
	SendAbstractDecision(ctx context.Context, toEmail, name, title, status, note string) error
}

const brevoAPI = "https://api.brevo.com/v3/smtp/email"
const defaultFrom = "noreply@confera.app"

// brevoSendRequest matches Brevo API v3 send transactional email body.
type brevoSendRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type brevoAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// BrevoClient sends emails through the Brevo transactional API.
type BrevoClient struct {
	APIKey   string
	MailFrom string
	Client   *http.Client
}

func (c *BrevoClient) from() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return defaultFrom
}

func (c *BrevoClient) send(ctx context.Context, toEmail, subject, html string) error {
	if c.APIKey == "" {
		return nil
	}
	body, err := json.Marshal(brevoSendRequest{
		Sender:      brevoAddress{Email: c.from(), Name: "Confera"},
		To:          []brevoAddress{{Email: toEmail}},
		Subject:     subject,
		HTMLContent: html,
	})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoAPI, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("api-key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Client == nil {
		c.Client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: status %d", resp.StatusCode)
	}
	return nil
}

func (c *BrevoClient) SendWelcome(ctx context.Context, toEmail, name string) error {
	return c.send(ctx, toEmail, "Welcome to Confera", Layout(welcomeContent(name)))
}

func (c *BrevoClient) SendAccountInvite(ctx context.Context, toEmail, name, link, role, message string) error {
	return c.send(ctx, toEmail, "You have been invited to Confera", Layout(accountInviteContent(name, link, role, message)))
}

func (c *BrevoClient) SendAttendanceInvite(ctx context.Context, toEmail, name, link, message string) error {
	return c.send(ctx, toEmail, "Please confirm your attendance", Layout(attendanceInviteContent(name, link, message)))
}

func (c *BrevoClient) SendAbstractDecision(ctx context.Context, toEmail, name, title, status, note string) error {
	return c.send(ctx, toEmail, "Your abstract has been "+status, Layout(abstractDecisionContent(name, title, status, note)))
}

// SMTPClient sends the same emails over plain SMTP for deployments without a
// Brevo account (e.g. a university relay).
type SMTPClient struct {
	Host     string
	Port     int
	Username string
	Password string
	MailFrom string
}

func (c *SMTPClient) from() string {
	if c.MailFrom != "" {
		return c.MailFrom
	}
	return defaultFrom
}

func (c *SMTPClient) send(toEmail, subject, html string) error {
	if c.Host == "" {
		return nil
	}
	m := gomail.NewMessage()
	m.SetHeader("From", c.from())
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := gomail.NewDialer(c.Host, c.Port, c.Username, c.Password)
	return d.DialAndSend(m)
}

func (c *SMTPClient) SendWelcome(ctx context.Context, toEmail, name string) error {
	return c.send(toEmail, "Welcome to Confera", Layout(welcomeContent(name)))
}

func (c *SMTPClient) SendAccountInvite(ctx context.Context, toEmail, name, link, role, message string) error {
	return c.send(toEmail, "You have been invited to Confera", Layout(accountInviteContent(name, link, role, message)))
}

func (c *SMTPClient) SendAttendanceInvite(ctx context.Context, toEmail, name, link, message string) error {
	return c.send(toEmail, "Please confirm your attendance", Layout(attendanceInviteContent(name, link, message)))
}

func (c *SMTPClient) SendAbstractDecision(ctx context.Context, toEmail, name, title, status, note string) error {
	return c.send(toEmail, "Your abstract has been "+status, Layout(abstractDecisionContent(name, title, status, note)))
}
