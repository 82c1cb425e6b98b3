package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewDataRendersEveryTemplate(t *testing.T) {
	for name, data := range PreviewData {
		t.Run(string(name), func(t *testing.T) {
			html, err := Render(name, data)
			require.NoError(t, err)
			for _, v := range data {
				assert.Contains(t, html, v)
			}
		})
	}
}

func TestRenderEscapesValues(t *testing.T) {
	html, err := Render(TemplateWheelSpecSubmitted, map[string]string{
		"FormNumber":    "<script>",
		"SubmittedBy":   "a",
		"SubmittedDate": "2025-07-03",
	})
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := Render(Template("missing"), nil)
	assert.ErrorContains(t, err, "failed to parse email template missing")
}
