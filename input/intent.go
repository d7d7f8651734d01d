package input

// IntentType discriminates semantic actions produced from terminal events
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // q, Esc, Ctrl+C
	IntentToggleAudio // m

	// Content panel
	IntentToggleContent // Tab
	IntentScrollUp      // Up, k, wheel up
	IntentScrollDown    // Down, j, wheel down
	IntentPageUp        // PgUp
	IntentPageDown      // PgDn
	IntentScrollTop     // Home, g
	IntentScrollBottom  // End, G
)

var intentNames = map[IntentType]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentToggleAudio:   "toggle_audio",
	IntentToggleContent: "toggle_content",
	IntentScrollUp:      "scroll_up",
	IntentScrollDown:    "scroll_down",
	IntentPageUp:        "page_up",
	IntentPageDown:      "page_down",
	IntentScrollTop:     "scroll_top",
	IntentScrollBottom:  "scroll_bottom",
}

func (t IntentType) String() string {
	if n, ok := intentNames[t]; ok {
		return n
	}
	return "unknown"
}

// ScrollDelta returns the line delta of a scroll intent for a page of the
// given size, and false for non-scroll intents
func (t IntentType) ScrollDelta(page, total int) (int, bool) {
	switch t {
	case IntentScrollUp:
		return -1, true
	case IntentScrollDown:
		return 1, true
	case IntentPageUp:
		return -page, true
	case IntentPageDown:
		return page, true
	case IntentScrollTop:
		return -total, true
	case IntentScrollBottom:
		return total, true
	}
	return 0, false
}
