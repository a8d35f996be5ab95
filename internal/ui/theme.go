package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Warn string
	FavOn, FavOff                              string
	CornerTL, CornerTR, CornerBL, CornerBR     string
	H, V                                       string
	SymOK, SymFail, SymBullet, SymVideo        string
}

var current = classic()

func classic() Theme {
	return Theme{
		Title: bold, Muted: fgGray, Accent: fgBlue,
		Success: fgGreen, Error: fgRed, Warn: fgYellow,
		FavOn: "♥", FavOff: "♡",
		CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
		H: "─", V: "│",
		SymOK: "✔", SymFail: "✖", SymBullet: "•", SymVideo: "▶",
	}
}

// SetTheme selects "classic" (default), "rounded" or "mono".
func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "rounded":
		current = classic()
		current.Title = "\033[95m"
		current.Accent = "\033[96m"
		current.CornerTL, current.CornerTR = "╭", "╮"
		current.CornerBL, current.CornerBR = "╰", "╯"
	case "mono":
		disableColor = true
		current = Theme{
			FavOn: "[*]", FavOff: "[ ]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymOK: "ok", SymFail: "x", SymBullet: "-", SymVideo: ">",
		}
	default:
		current = classic()
	}
}

// Expose what renderers need
func Current() Theme { return current }
