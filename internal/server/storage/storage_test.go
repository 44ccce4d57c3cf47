package storage

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestPublicURL(t *testing.T) {
	c := &Client{options: Options{Endpoint: "https://blob.example.com/"}}
	url := c.PublicURL("relatorios", "relatorio_1_123.pdf")
	assert.Equal(t, url, "https://blob.example.com/relatorios/relatorio_1_123.pdf")
}

func TestJustificationKey(t *testing.T) {
	key := JustificationKey(7, "atestado.pdf")
	assert.Assert(t, strings.HasPrefix(key, "7/"))
	assert.Assert(t, strings.HasSuffix(key, "-atestado.pdf"))

	// empty filenames still produce a usable key
	key = JustificationKey(7, "")
	assert.Assert(t, strings.HasPrefix(key, "7/"))
	assert.Assert(t, len(key) > len("7/"))
}

func TestReportKey(t *testing.T) {
	key := ReportKey(42)
	assert.Assert(t, strings.HasPrefix(key, "relatorio_42_"))
	assert.Assert(t, strings.HasSuffix(key, ".pdf"))
}
