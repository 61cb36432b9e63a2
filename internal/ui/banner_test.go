package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/printdb/internal/ui/components"
)

func TestSplitLinesSplitsOnNewlines(t *testing.T) {
	lines := splitLines("a\nb\nc")
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}

func TestRenderBannerIncludesSubtitleAndNoOSC(t *testing.T) {
	out := RenderBanner(0)
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "Print Catalog")
	assert.Contains(t, clean, "─")
}

func TestRenderBannerCompactOnShortTerminals(t *testing.T) {
	out := components.SanitizeText(RenderBanner(20))
	assert.Contains(t, out, "printdb")
	assert.NotContains(t, out, "██")
}
