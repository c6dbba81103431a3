package mail

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"authcore/config"
	deliverycontext "authcore/internal/delivery/context"
	"authcore/internal/domain/entity"
	"authcore/internal/domain/service"
	mockSvc "authcore/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(provider string) *config.Config {
	return &config.Config{
		OTP: &config.OTPConfig{TTL: 10 * time.Minute},
		Mail: &config.MailConfig{
			Provider: provider,
			AppName:  "Acme",
			SMTP: &config.SMTPConfig{
				Host: "smtp.example.com",
				Port: 2525,
				From: "no-reply@example.com",
			},
		},
	}
}

func TestRenderOtpMessage(t *testing.T) {
	msg, err := RenderOtpMessage("Acme", "jane@example.com", "123456", entity.OtpPurposeSignup, 10*time.Minute)

	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", msg.To)
	assert.Equal(t, "[Acme] Verify your email", msg.Subject)
	assert.Contains(t, msg.Body, "123456")
	assert.Contains(t, msg.Body, "expires in 10 minutes")

	mailMsg, err := msg.Msg("no-reply@example.com")
	require.NoError(t, err)
	raw := writeMsg(t, mailMsg)
	assert.Contains(t, raw, "From: <no-reply@example.com>")
	assert.Contains(t, raw, "To: <jane@example.com>")
	assert.Contains(t, raw, "Subject: [Acme] Verify your email")
	assert.Contains(t, raw, "123456")
}

func TestMessage_RejectsBadRecipient(t *testing.T) {
	msg, err := RenderOtpMessage("Acme", "not an address", "123456", entity.OtpPurposeSignup, time.Minute)
	require.NoError(t, err)

	_, err = msg.Msg("no-reply@example.com")

	assert.ErrorContains(t, err, "invalid recipient address")
}

func writeMsg(t *testing.T, msg *gomail.Msg) string {
	t.Helper()

	var buf bytes.Buffer
	_, err := msg.WriteTo(&buf)
	require.NoError(t, err)

	return buf.String()
}

func TestRenderOtpMessage_PurposeSubjects(t *testing.T) {
	login, err := RenderOtpMessage("", "a@b.c", "1", entity.OtpPurposeLogin, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "[Auth] Your sign-in code", login.Subject)

	reset, err := RenderOtpMessage("Acme", "a@b.c", "1", entity.OtpPurposePasswordReset, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, "[Acme] Your password reset code", reset.Subject)
}

type relayFunc func(ctx context.Context, messages ...*gomail.Msg) error

func (f relayFunc) DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error {
	return f(ctx, messages...)
}

func newTestSMTPSender(t *testing.T, relay relayFunc) *smtpSender {
	t.Helper()

	sender, err := NewSMTPSender(testConfig("smtp"), discardLogger())
	require.NoError(t, err)
	impl := sender.(*smtpSender)
	impl.relay = relay

	return impl
}

func TestSMTPSender_SendOtpEmail(t *testing.T) {
	var sent []*gomail.Msg
	var deadlineSet bool
	sender := newTestSMTPSender(t, func(ctx context.Context, messages ...*gomail.Msg) error {
		_, deadlineSet = ctx.Deadline()
		sent = messages

		return nil
	})

	err := sender.SendOtpEmail(context.Background(), "jane@example.com", "654321", entity.OtpPurposeSignup)

	require.NoError(t, err)
	assert.True(t, deadlineSet)
	require.Len(t, sent, 1)
	recipients, err := sent[0].GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"jane@example.com"}, recipients)
	raw := writeMsg(t, sent[0])
	assert.Contains(t, raw, "From: <no-reply@example.com>")
	assert.Contains(t, raw, "654321")
}

func TestSMTPSender_RelayFailure(t *testing.T) {
	sender := newTestSMTPSender(t, func(context.Context, ...*gomail.Msg) error {
		return errors.New("connection refused")
	})

	err := sender.SendOtpEmail(context.Background(), "jane@example.com", "654321", entity.OtpPurposeSignup)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPSender_StalledRelayTimesOut(t *testing.T) {
	sender := newTestSMTPSender(t, func(ctx context.Context, _ ...*gomail.Msg) error {
		<-ctx.Done()

		return ctx.Err()
	})
	sender.timeout = 20 * time.Millisecond

	err := sender.SendOtpEmail(context.Background(), "jane@example.com", "654321", entity.OtpPurposeSignup)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewSMTPSender_RequiresHost(t *testing.T) {
	cfg := testConfig("smtp")
	cfg.Mail.SMTP.Host = ""

	_, err := NewSMTPSender(cfg, discardLogger())

	require.Error(t, err)
}

func TestPubSubSender_PublishesEvent(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	sender := NewPubSubSender(testConfig("pubsub"), publisher, discardLogger())
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishOtpEmailEvent(ctx, mock.MatchedBy(func(event *service.OtpEmailEvent) bool {
			return event.Email == "jane@example.com" &&
				event.Code == "111222" &&
				event.Purpose == "verification" &&
				event.RequestID == "req-42" &&
				event.ExpiresInMinutes == 10 &&
				event.EventID != ""
		})).
		Return(nil)

	err := sender.SendOtpEmail(ctx, "jane@example.com", "111222", entity.OtpPurposeSignup)

	require.NoError(t, err)
}

func TestPubSubSender_PublishFailure(t *testing.T) {
	publisher := mockSvc.NewMockEventPublisher(t)
	sender := NewPubSubSender(testConfig("pubsub"), publisher, discardLogger())
	ctx := context.Background()

	publisher.EXPECT().PublishOtpEmailEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	err := sender.SendOtpEmail(ctx, "jane@example.com", "111222", entity.OtpPurposeSignup)

	require.Error(t, err)
}

func TestNewEmailSender(t *testing.T) {
	tests := []struct {
		name      string
		provider  string
		publisher service.EventPublisher
		wantType  any
		wantErr   bool
	}{
		{name: "default is noop", provider: "", wantType: &noopSender{}},
		{name: "noop", provider: "noop", wantType: &noopSender{}},
		{name: "smtp", provider: "smtp", wantType: &smtpSender{}},
		{name: "pubsub", provider: "pubsub", publisher: mockSvc.NewMockEventPublisher(t), wantType: &pubsubSender{}},
		{name: "pubsub without publisher", provider: "pubsub", wantErr: true},
		{name: "unknown", provider: "carrier-pigeon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender, err := NewEmailSender(SenderParams{
				Config:    testConfig(tt.provider),
				Logger:    discardLogger(),
				Publisher: tt.publisher,
			})

			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, sender)
		})
	}
}

func TestNewDeliverySender(t *testing.T) {
	t.Run("pubsub provider delivers over smtp", func(t *testing.T) {
		sender, err := NewDeliverySender(SenderParams{Config: testConfig("pubsub"), Logger: discardLogger()})

		require.NoError(t, err)
		assert.IsType(t, &smtpSender{}, sender)
	})

	t.Run("noop stays noop", func(t *testing.T) {
		sender, err := NewDeliverySender(SenderParams{Config: testConfig("noop"), Logger: discardLogger()})

		require.NoError(t, err)
		assert.IsType(t, &noopSender{}, sender)
	})
}
