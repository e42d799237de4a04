package mailer

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Message is a single outbound email. Exactly one of Text or HTML is
// expected to be set.
type Message struct {
	From    string
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message through a mail transport.
type Sender interface {
	Send(msg Message) error
}

// SMTPSender delivers messages over SMTP using gomail.
type SMTPSender struct {
	dialer *gomail.Dialer
}

// NewSMTPSender creates an SMTP transport for the given server and credentials.
func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{dialer: gomail.NewDialer(host, port, username, password)}
}

// Send dials the SMTP server and delivers one message.
func (s *SMTPSender) Send(msg Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", msg.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.HTML != "" {
		m.SetBody("text/html", msg.HTML)
	} else {
		m.SetBody("text/plain", msg.Text)
	}
	return s.dialer.DialAndSend(m)
}

// Mailer builds and dispatches the application's transactional and
// broadcast email through an injected Sender.
type Mailer struct {
	sender Sender
	from   string
	site   string
	author string
	log    *logrus.Logger

	wg sync.WaitGroup
}

// New creates a Mailer that sends as from on behalf of the named site and author.
func New(sender Sender, from, site, author string, log *logrus.Logger) *Mailer {
	if log == nil {
		log = logrus.New()
	}
	return &Mailer{sender: sender, from: from, site: site, author: author, log: log}
}

// SendConfirmation sends the subscription welcome email to a single address.
func (m *Mailer) SendConfirmation(email string) error {
	return m.sender.Send(Message{
		From:    m.from,
		To:      email,
		Subject: fmt.Sprintf("Welcome to %s with %s! 🌍", m.site, m.author),
		Text:    m.confirmationBody(),
	})
}

// SendContact relays a contact-form submission to the operator inbox.
// The From header carries the submitter's address so replies reach them.
func (m *Mailer) SendContact(inbox, name, email, subject, message string) error {
	return m.sender.Send(Message{
		From:    email,
		To:      inbox,
		Subject: fmt.Sprintf("New Contact Form Submission: %s", subject),
		Text:    fmt.Sprintf("Name: %s\nEmail: %s\nMessage: %s", name, email, message),
	})
}

// BroadcastArticle sends the new-article announcement to every recipient.
// Each recipient gets its own independently built message in its own
// goroutine; a failed send is logged and never affects the others.
// Wait drains in-flight sends.
func (m *Mailer) BroadcastArticle(recipients []string, article ArticleAnnouncement) {
	html, err := renderAnnouncement(article, m.author, m.site)
	if err != nil {
		m.log.WithError(err).Error("failed to render broadcast body")
		return
	}

	for _, recipient := range recipients {
		msg := Message{
			From:    m.from,
			To:      recipient,
			Subject: article.Title,
			HTML:    html,
		}

		m.wg.Add(1)
		go func(msg Message) {
			defer m.wg.Done()
			if err := m.sender.Send(msg); err != nil {
				m.log.WithError(err).WithField("to", msg.To).Error("failed to send broadcast email")
				return
			}
			m.log.WithField("to", msg.To).Info("broadcast email sent")
		}(msg)
	}
}

// Wait blocks until all in-flight broadcast sends have finished.
func (m *Mailer) Wait() {
	m.wg.Wait()
}
