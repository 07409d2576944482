package notify

import (
	"fmt"
	"log/slog"
	"net/smtp"
)

const (
	otpSubject = "Your One Time Password"

	// queueDepth bounds the outbound backlog. When the mail server falls
	// behind we shed new notifications rather than stall OTP issuance.
	queueDepth = 256
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Configured reports whether enough SMTP settings are present to deliver.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

type message struct {
	to   string
	code string
}

// Mailer delivers OTP emails through a background worker reading from a
// buffered queue. Start it once during boot, Stop it during shutdown.
type Mailer struct {
	cfg    SMTPConfig
	logger *slog.Logger

	queue  chan message
	stopCh chan struct{}
	doneCh chan struct{}

	// deliver is swapped out in tests.
	deliver func(msg message) error
}

func NewMailer(cfg SMTPConfig, logger *slog.Logger) *Mailer {
	m := &Mailer{
		cfg:    cfg,
		logger: logger,
		queue:  make(chan message, queueDepth),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
	m.deliver = m.sendSMTP
	return m
}

// EnqueueOtp queues a passcode email. It never blocks: when the queue is
// full the notification is dropped with a warning and the caller's request
// still succeeds.
func (m *Mailer) EnqueueOtp(emailAddress, code string) {
	select {
	case m.queue <- message{to: emailAddress, code: code}:
	default:
		m.logger.Warn("otp mail queue full, dropping notification",
			slog.String("email", emailAddress),
		)
	}
}

// Start begins the background delivery worker.
func (m *Mailer) Start() {
	go m.run()
	m.logger.Info("mailer started", "smtp_host", m.cfg.Host)
}

// Stop drains nothing and exits promptly; queued mail that has not been
// picked up yet is abandoned. Blocks until the worker has finished any
// in-flight delivery.
func (m *Mailer) Stop() {
	close(m.stopCh)
	<-m.doneCh
	m.logger.Info("mailer stopped")
}

func (m *Mailer) run() {
	defer close(m.doneCh)

	for {
		select {
		case msg := <-m.queue:
			if err := m.deliver(msg); err != nil {
				// Delivery failure is logged and swallowed; the OTP flow
				// already answered the client.
				m.logger.Error("otp mail delivery failed",
					slog.String("email", msg.to),
					slog.Any("error", err),
				)
			}
		case <-m.stopCh:
			return
		}
	}
}

func (m *Mailer) sendSMTP(msg message) error {
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	body := []byte(
		"From: " + m.cfg.From + "\r\n" +
			"To: " + msg.to + "\r\n" +
			"Subject: " + otpSubject + "\r\n" +
			"Content-Type: text/plain; charset=\"utf-8\"\r\n" +
			"\r\n" +
			"Your one time password is " + msg.code + ". It expires in 10 minutes.\r\n")

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	return smtp.SendMail(addr, auth, m.cfg.From, []string{msg.to}, body)
}
