// Package email sends transactional email over SMTP using embedded
// templates.
package email

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/gitCabezas/PontoJovem/internal/logging"
)

type EmailTemplate int8

const (
	EmailTemplatePasswordReset EmailTemplate = iota
)

var emailTemplateNames = map[EmailTemplate]string{
	EmailTemplatePasswordReset: "passwordreset",
}

var emailTemplateSubjects = map[EmailTemplate]string{
	EmailTemplatePasswordReset: "Recuperação de Senha - Ponto Mobile",
}

var (
	// AppDomain is the base URL links in emails point to.
	AppDomain    = "http://localhost:3000"
	FromAddress  = "noreply@pontojovem.app"
	FromName     = "Ponto Mobile"
	SMTPServer   = os.Getenv("PONTO_SMTP_SERVER")
	SMTPPort     = 465
	SMTPUsername = os.Getenv("PONTO_SMTP_USERNAME")
	SMTPPassword = os.Getenv("PONTO_SMTP_PASSWORD")

	// TestMode skips the SMTP round trip and records the rendered data so
	// tests can inspect what would have been sent.
	TestMode     = false
	TestDataSent = []map[string]interface{}{}

	ErrUnknownTemplate = errors.New("unknown template")
	ErrNotConfigured   = errors.New("email sending not configured")
)

func IsConfigured() bool {
	return len(SMTPServer) > 0
}

// SendTemplate renders the plain and html bodies of template with data and
// sends the result to address.
func SendTemplate(name, address string, template EmailTemplate, data map[string]interface{}) error {
	if TestMode {
		logging.Debugf("sent email to %q: %+v", address, data)
		TestDataSent = append(TestDataSent, data)
		return nil // quietly return
	}

	if !IsConfigured() {
		return ErrNotConfigured
	}

	templateName, ok := emailTemplateNames[template]
	if !ok {
		return ErrUnknownTemplate
	}

	plain := &bytes.Buffer{}
	if err := textTemplateList.ExecuteTemplate(plain, templateName+".text.plain", data); err != nil {
		return fmt.Errorf("rendering plain body: %w", err)
	}

	html := &bytes.Buffer{}
	if err := htmlTemplateList.ExecuteTemplate(html, templateName+".text.html", data); err != nil {
		return fmt.Errorf("rendering html body: %w", err)
	}

	return SendSMTP(Message{
		FromName:    FromName,
		FromAddress: FromAddress,
		ToName:      name,
		ToAddress:   address,
		Subject:     emailTemplateSubjects[template],
		PlainBody:   plain.Bytes(),
		HTMLBody:    html.Bytes(),
	})
}
