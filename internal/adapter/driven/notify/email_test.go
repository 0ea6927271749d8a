package notify

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/diillson/runway-dashboard-go/internal/domain/entity"
	"github.com/diillson/runway-dashboard-go/internal/shared/types"
	"github.com/go-mail/mail/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent []*mail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func testReport() entity.Report {
	breakEven := 0
	return entity.Report{
		ID:          "report-1",
		GeneratedAt: time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC),
		Currency:    "USD",
		Inputs:      entity.ProjectionInputs{TotalCash: 100_000, MonthlyExpenses: 5_000, MonthlyRevenue: 8_000},
		Result: entity.ProjectionResult{
			Runway:         entity.InfiniteRunway(),
			RunwayMonths:   []int{1},
			CashRemaining:  []float64{100_000},
			BreakEvenPoint: &breakEven,
		},
	}
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("cfo@example.com"))
	assert.True(t, ValidEmail(" a.b@c.io "))
	assert.False(t, ValidEmail("cfo@example"))
	assert.False(t, ValidEmail("cfo example.com"))
	assert.False(t, ValidEmail("@example.com"))
	assert.False(t, ValidEmail(""))
}

func TestSendReport(t *testing.T) {
	attachment := filepath.Join(t.TempDir(), "runway_20261019_000000.csv")
	require.NoError(t, os.WriteFile(attachment, []byte("Month,Cash Remaining\n"), 0o644))

	fake := &fakeSender{}
	repo := &EmailRepository{sender: fake, from: "reports@example.com", enabled: true}

	err := repo.SendReport(context.Background(), []string{"cfo@example.com", " ceo@example.com"}, testReport(), []string{attachment})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	m := fake.sent[0]
	assert.Equal(t, []string{"reports@example.com"}, m.GetHeader("From"))
	assert.Equal(t, []string{"cfo@example.com", "ceo@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Burn Rate Analysis: runway Infinite"}, m.GetHeader("Subject"))

	var raw bytes.Buffer
	_, err = m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "runway_20261019_000000.csv")
	assert.Contains(t, raw.String(), "text/html")
}

func TestSendReport_Rejections(t *testing.T) {
	fake := &fakeSender{}
	ctx := context.Background()

	disabled := &EmailRepository{sender: fake}
	assert.ErrorIs(t, disabled.SendReport(ctx, []string{"cfo@example.com"}, testReport(), nil), types.ErrEmailDisabled)

	repo := &EmailRepository{sender: fake, enabled: true}
	assert.ErrorIs(t, repo.SendReport(ctx, nil, testReport(), nil), types.ErrNoRecipients)
	assert.ErrorIs(t, repo.SendReport(ctx, []string{"not-an-email"}, testReport(), nil), types.ErrInvalidEmail)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	assert.ErrorIs(t, repo.SendReport(cancelled, []string{"cfo@example.com"}, testReport(), nil), context.Canceled)

	assert.Empty(t, fake.sent)
}

func TestSendReport_DialError(t *testing.T) {
	repo := &EmailRepository{sender: &fakeSender{err: errors.New("connection refused")}, enabled: true}

	err := repo.SendReport(context.Background(), []string{"cfo@example.com"}, testReport(), nil)
	assert.ErrorContains(t, err, "failed to send email: connection refused")
}

func TestRenderBody(t *testing.T) {
	body, err := renderBody(testReport())
	require.NoError(t, err)

	assert.Contains(t, body, "Burn Rate Analysis Report")
	assert.Contains(t, body, "<td>Estimated Runway</td><td><strong>Infinite</strong></td>")
	assert.Contains(t, body, "not burning cash")
}

func TestNewEmailRepository_FromFallsBackToUser(t *testing.T) {
	repo := NewEmailRepository(types.EmailConfig{Host: "smtp.example.com", Port: 587, User: "bot@example.com", Enabled: true})

	impl, ok := repo.(*EmailRepository)
	require.True(t, ok)
	assert.Equal(t, "bot@example.com", impl.from)
	assert.True(t, impl.enabled)
}
