package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActivationHTML(t *testing.T) {
	html := ActivationHTML("alice", "123456")

	assert.Contains(t, html, "alice")
	assert.Contains(t, html, "123456")
}

func TestActivationHTMLEscapesUsername(t *testing.T) {
	html := ActivationHTML(`<a href="http://evil">click</a>`, "123456")

	assert.NotContains(t, html, "<a href=")
	assert.Contains(t, html, "&lt;a href=&#34;http://evil&#34;&gt;click&lt;/a&gt;")
}
