package audit

import (
	"context"
	"sort"
	"strings"

	reqctx "github.com/elevatescholar/scholarship-api/internal/pkg/context"
	"github.com/rs/zerolog"
)

// Logger provides structured audit logging for privileged actions
type Logger struct {
	log zerolog.Logger
}

// New creates a new audit logger
func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// emailKeys are masked before they reach the log.
var emailKeys = map[string]bool{
	"actor":   true,
	"target":  true,
	"author":  true,
	"student": true,
}

// Record writes one audit line. Its signature matches the services' AuditFunc.
func (l *Logger) Record(ctx context.Context, action string, fields map[string]string) {
	ev := l.log.Warn()
	if strings.HasPrefix(action, "payment.") {
		ev = l.log.Info()
	}
	ev = ev.Str("action", action)

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		v := fields[k]
		if emailKeys[k] {
			v = maskEmail(v)
		}
		ev = ev.Str(k, v)
	}

	ev.Str("request_id", reqctx.GetRequestID(ctx)).Msg("audit")
}

// maskEmail partially masks email for privacy in logs
func maskEmail(email string) string {
	if len(email) < 5 {
		return "***"
	}
	at := strings.IndexByte(email, '@')
	if at < 0 {
		return email[:2] + "***"
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
