package mail

import (
	"bytes"
	"fmt"
	"text/template"
	"time"

	"authcore/internal/domain/entity"

	"github.com/pkg/errors"
	gomail "github.com/wneessen/go-mail"
)

// Message is a rendered plain-text email
type Message struct {
	To      string
	Subject string
	Body    string
}

var bodyTemplate = template.Must(template.New("otp").Parse(`Hello,

{{.Intro}}

    {{.Code}}

This code expires in {{.ExpiresInMinutes}} minutes. If you did not request it, you can ignore this email.

{{.AppName}}
`))

type bodyData struct {
	Intro            string
	Code             string
	ExpiresInMinutes int
	AppName          string
}

// RenderOtpMessage builds the subject and body for a one-time code
func RenderOtpMessage(appName, to, code string, purpose entity.OtpPurpose, expiresIn time.Duration) (*Message, error) {
	if appName == "" {
		appName = "Auth"
	}

	subject, intro := purposeCopy(purpose)

	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, bodyData{
		Intro:            intro,
		Code:             code,
		ExpiresInMinutes: int(expiresIn.Minutes()),
		AppName:          appName,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to render otp email")
	}

	return &Message{
		To:      to,
		Subject: fmt.Sprintf("[%s] %s", appName, subject),
		Body:    body.String(),
	}, nil
}

func purposeCopy(purpose entity.OtpPurpose) (subject, intro string) {
	switch purpose {
	case entity.OtpPurposeLogin:
		return "Your sign-in code", "Use the following code to sign in:"
	case entity.OtpPurposePasswordReset:
		return "Your password reset code", "Use the following code to reset your password:"
	default:
		return "Verify your email", "Use the following code to verify your email address:"
	}
}

// Msg builds the plain-text mail for the relay
func (m *Message) Msg(from string) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return nil, errors.Wrap(err, "invalid sender address")
	}
	if err := msg.To(m.To); err != nil {
		return nil, errors.Wrap(err, "invalid recipient address")
	}
	msg.Subject(m.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, m.Body)

	return msg, nil
}
