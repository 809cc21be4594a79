package client

// Tab selects which of the three code blobs is bound to the editor.
// Exactly one tab is active at a time; edits only ever touch its blob.
type Tab int

const (
	TabHTML Tab = iota
	TabCSS
	TabJS
)

// Tabs lists all tabs in display order.
var Tabs = []Tab{TabHTML, TabCSS, TabJS}

func (t Tab) String() string {
	switch t {
	case TabCSS:
		return "CSS"
	case TabJS:
		return "JS"
	default:
		return "HTML"
	}
}

// Filename returns the fixed export entry name for the tab's blob.
func (t Tab) Filename() string {
	switch t {
	case TabCSS:
		return "style.css"
	case TabJS:
		return "script.js"
	default:
		return "index.html"
	}
}

// Next cycles to the following tab.
func (t Tab) Next() Tab {
	return Tab((int(t) + 1) % len(Tabs))
}

// Blob returns the content of the tab's blob.
func (s *Session) Blob(t Tab) string {
	switch t {
	case TabCSS:
		return s.Site.CSSCode
	case TabJS:
		return s.Site.JSCode
	default:
		return s.Site.HTMLCode
	}
}

// SetBlob replaces the content of the tab's blob, leaving the others alone.
func (s *Session) SetBlob(t Tab, content string) {
	switch t {
	case TabCSS:
		s.Site.CSSCode = content
	case TabJS:
		s.Site.JSCode = content
	default:
		s.Site.HTMLCode = content
	}
}
