package ui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

var (
	mdRendererMu sync.Mutex
	// Renderers are cached by style and wrap width. A fixed standard style
	// avoids the terminal background query WithAutoStyle performs.
	mdRenderers = map[string]*glamour.TermRenderer{}
	mdStyle     = styles.DarkStyle
)

// setMarkdownPlain switches descriptions to the ASCII style used when
// colors are disabled.
func setMarkdownPlain(plain bool) {
	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	if plain {
		mdStyle = styles.AsciiStyle
	} else {
		mdStyle = styles.DarkStyle
	}
}

// renderMarkdown renders a record description for the preview pane. Any
// renderer failure falls back to the raw text.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	mdRendererMu.Lock()
	style := mdStyle
	key := style + ":" + strconv.Itoa(width)
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.Trim(out, "\n")
}
