// Package tui: keyboard binding configuration.
package tui

// Keymap defines all keyboard shortcuts for the orrery.
type Keymap struct {
	Quit      string
	Pause     string
	StepFwd   string
	StepBack  string
	BigFwd    string
	BigBack   string
	Today     string
	ScaleMode string
	NavUp     string
	NavDown   string
	Help      string
}

// defaultKeymap returns the default orrery key bindings.
func defaultKeymap() Keymap {
	return Keymap{
		Quit:      "q",
		Pause:     " ",
		StepFwd:   "right",
		StepBack:  "left",
		BigFwd:    "shift+right",
		BigBack:   "shift+left",
		Today:     "t",
		ScaleMode: "m",
		NavUp:     "up",
		NavDown:   "down",
		Help:      "?",
	}
}

// HelpText returns the keyboard shortcut reference shown in the footer help.
func HelpText() string {
	return `
  TIME
  ──────────────────────────────────────
  Space              Pause / resume
  ← →                Step one day
  Shift + ← →        Step thirty days
  t                  Jump to today

  VIEW
  ──────────────────────────────────────
  ↑↓                 Highlight planet
  m                  Cycle radial scale

  MISC
  ──────────────────────────────────────
  ?                  Toggle this help
  q                  Quit
  Ctrl+C             Force quit
`
}
