package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToHTMLSanitized(t *testing.T) {
	svc := NewMarkdownService()

	out, err := svc.ToHTMLSanitized("**Pro** plan\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, out, "<strong>Pro</strong>")
	assert.NotContains(t, out, "<script>")
}

func TestToHTMLSanitizedEmpty(t *testing.T) {
	out, err := NewMarkdownService().ToHTMLSanitized("")
	require.NoError(t, err)
	assert.Empty(t, out)
}
