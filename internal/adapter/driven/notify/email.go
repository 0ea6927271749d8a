package notify

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/diillson/runway-dashboard-go/internal/domain/repository"
	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/go-mail/mail/v2"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether address looks like a deliverable email address.
func ValidEmail(address string) bool {
	return emailPattern.MatchString(strings.TrimSpace(address))
}

// sender is the part of *mail.Dialer used here.
type sender interface {
	DialAndSend(m ...*mail.Message) error
}

// EmailRepository envia relatórios por SMTP.
type EmailRepository struct {
	sender  sender
	from    string
	enabled bool
}

// NewEmailRepository creates an SMTP-backed NotificationRepository.
func NewEmailRepository(cfg types.EmailConfig) repository.NotificationRepository {
	d := mail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
	}

	from := cfg.From
	if from == "" {
		from = cfg.User
	}

	return &EmailRepository{sender: d, from: from, enabled: cfg.Enabled}
}

// SendReport emails the report summary to every recipient with the exported files attached.
func (r *EmailRepository) SendReport(ctx context.Context, recipients []string, report entity.Report, attachments []string) error {
	if !r.enabled {
		return types.ErrEmailDisabled
	}
	if len(recipients) == 0 {
		return types.ErrNoRecipients
	}

	to := make([]string, 0, len(recipients))
	for _, rcpt := range recipients {
		rcpt = strings.TrimSpace(rcpt)
		if !ValidEmail(rcpt) {
			return fmt.Errorf("%w: %q", types.ErrInvalidEmail, rcpt)
		}
		to = append(to, rcpt)
	}

	body, err := renderBody(report)
	if err != nil {
		return err
	}

	m := mail.NewMessage()
	m.SetHeader("From", r.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject(report))
	m.SetBody("text/plain", plainBody(report))
	m.AddAlternative("text/html", body)
	for _, path := range attachments {
		m.Attach(path)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := r.sender.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func subject(report entity.Report) string {
	return fmt.Sprintf("Burn Rate Analysis: runway %s", report.RunwayLabel())
}

func plainBody(report entity.Report) string {
	var b strings.Builder
	b.WriteString("BURN RATE ANALYSIS REPORT\n\n")
	for _, row := range report.SummaryRows() {
		fmt.Fprintf(&b, "%s: %s\n", row.Metric, row.Value)
	}
	b.WriteString("\n")
	b.WriteString(report.Narrative())
	b.WriteString("\n")
	return b.String()
}

var bodyTemplate = template.Must(template.New("report").Parse(`
<h1 style="color:#245e4f">Burn Rate Analysis Report</h1>
<p>Generated on <strong>{{.GeneratedOn}}</strong></p>
<table cellpadding="6" style="border-collapse:collapse">
  <tr style="background:#245e4f;color:#ffffff"><th align="left">Metric</th><th align="left">Value</th></tr>
  {{- range .Rows}}
  <tr><td>{{.Metric}}</td><td><strong>{{.Value}}</strong></td></tr>
  {{- end}}
</table>
<h2>What This Means For Your Business</h2>
{{- range .Paragraphs}}
<p>{{.}}</p>
{{- end}}
<small>This is an automated message from the Burn Rate Analysis Tool.</small>
`))

func renderBody(report entity.Report) (string, error) {
	data := struct {
		GeneratedOn string
		Rows        []entity.SummaryRow
		Paragraphs  []string
	}{
		GeneratedOn: report.GeneratedAt.Format("January 2, 2006"),
		Rows:        report.SummaryRows(),
		Paragraphs:  strings.Split(report.Narrative(), "\n\n"),
	}

	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("error rendering email body: %w", err)
	}
	return buf.String(), nil
}
