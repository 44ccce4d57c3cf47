package email

import (
	"bytes"
	"testing"

	"gotest.tools/v3/assert"
)

func TestSendPasswordReset_TestMode(t *testing.T) {
	TestMode = true
	TestDataSent = nil
	t.Cleanup(func() {
		TestMode = false
		TestDataSent = nil
	})

	err := SendPasswordReset("Ana", "ana@example.com", PasswordResetData{
		Name: "Ana",
		Link: "http://localhost:3000/bk-mobile/redefinir-senha?token=abc123",
	})
	assert.NilError(t, err)

	assert.Equal(t, len(TestDataSent), 1)
	assert.Equal(t, TestDataSent[0]["link"], "http://localhost:3000/bk-mobile/redefinir-senha?token=abc123")
}

func TestTemplatesRender(t *testing.T) {
	data := map[string]interface{}{
		"name": "Ana",
		"link": "http://localhost:3000/bk-mobile/redefinir-senha?token=abc123",
	}

	plain := &bytes.Buffer{}
	err := textTemplateList.ExecuteTemplate(plain, "passwordreset.text.plain", data)
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(plain.Bytes(), []byte("token=abc123")))
	assert.Assert(t, bytes.Contains(plain.Bytes(), []byte("Olá Ana!")))

	html := &bytes.Buffer{}
	err = htmlTemplateList.ExecuteTemplate(html, "passwordreset.text.html", data)
	assert.NilError(t, err)
	assert.Assert(t, bytes.Contains(html.Bytes(), []byte("Redefinir Minha Senha")))
}

func TestSendTemplate_NotConfigured(t *testing.T) {
	original := SMTPServer
	SMTPServer = ""
	t.Cleanup(func() { SMTPServer = original })

	err := SendPasswordReset("Ana", "ana@example.com", PasswordResetData{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
