package payment

import (
	"context"
	"strings"
)

const (
	StatusPaid = "paid"

	metaScholarshipID = "scholarshipId"
	metaStudentEmail  = "studentEmail"

	sessionPlaceholder = "{CHECKOUT_SESSION_ID}"
)

type Config struct {
	Currency   string
	SuccessURL string
	CancelURL  string
}

type Service struct {
	cfg          Config
	provider     Provider
	scholarships Scholarships
	applications Applications
	pub          EventPublisher
	clock        Clock
	audit        AuditFunc
}

func New(cfg Config, provider Provider, scholarships Scholarships, applications Applications, pub EventPublisher, clock Clock) *Service {
	cfg.Currency = strings.ToLower(strings.TrimSpace(cfg.Currency))
	if cfg.Currency == "" {
		cfg.Currency = "usd"
	}
	return &Service{
		cfg:          cfg,
		provider:     provider,
		scholarships: scholarships,
		applications: applications,
		pub:          pub,
		clock:        clock,
		audit:        func(context.Context, string, map[string]string) {},
	}
}

func (s *Service) WithAudit(fn AuditFunc) *Service {
	if fn != nil {
		s.audit = fn
	}
	return s
}

// successURL appends the provider placeholder so the redirect carries the session id as successId.
func successURL(base string) string {
	if strings.Contains(base, sessionPlaceholder) {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "successId=" + sessionPlaceholder
}
