package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Success Icon = iota + 1
	Fail
	Progress
	Play
	Pause
	Buffering
	Lock
	Unlock
	Volume
	Brightness
	Rewind
	Forward
	Speed
	Aspect
	Audio
	Close
)

var icons = map[Icon]*iconDef{
	Success: {
		emoji:   "✅",
		nerd:    "",
		plain:   "✓",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Fail: {
		emoji:   "❌",
		nerd:    "",
		plain:   "✗",
		kaomoji: "(×_×)",
		squares: "🟥",
	},
	Progress: {
		emoji:   "⏳",
		nerd:    "",
		plain:   "…",
		kaomoji: "(・・ )?",
		squares: "🟨",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   "▶",
		kaomoji: "ᐅ",
		squares: "▶",
	},
	Pause: {
		emoji:   "⏸️",
		nerd:    "",
		plain:   "❚❚",
		kaomoji: "(￣o￣) zz",
		squares: "⏸",
	},
	Buffering: {
		emoji:   "🔄",
		nerd:    "",
		plain:   "◌",
		kaomoji: "(・_・;)",
		squares: "🟨",
	},
	Lock: {
		emoji:   "🔒",
		nerd:    "",
		plain:   "[locked]",
		kaomoji: "(ꐦ°᷄д°᷅)",
		squares: "🟥",
	},
	Unlock: {
		emoji:   "🔓",
		nerd:    "",
		plain:   "[unlocked]",
		kaomoji: "ヽ(°〇°)ﾉ",
		squares: "🟩",
	},
	Volume: {
		emoji:   "🔊",
		nerd:    "",
		plain:   "vol",
		kaomoji: "♪(´ε` )",
		squares: "🟦",
	},
	Brightness: {
		emoji:   "☀️",
		nerd:    "",
		plain:   "bri",
		kaomoji: "☼(￣ー￣)",
		squares: "🟨",
	},
	Rewind: {
		emoji:   "⏪",
		nerd:    "",
		plain:   "<<",
		kaomoji: "<<(o_o)",
		squares: "◀◀",
	},
	Forward: {
		emoji:   "⏩",
		nerd:    "",
		plain:   ">>",
		kaomoji: "(o_o)>>",
		squares: "▶▶",
	},
	Speed: {
		emoji:   "🐇",
		nerd:    "",
		plain:   "x",
		kaomoji: "ε=ε=(ノ≧∇≦)ノ",
		squares: "🟪",
	},
	Aspect: {
		emoji:   "🖼️",
		nerd:    "",
		plain:   "[ ]",
		kaomoji: "[ ¬‿¬ ]",
		squares: "⬛",
	},
	Audio: {
		emoji:   "🎧",
		nerd:    "",
		plain:   "audio",
		kaomoji: "♫(˘▽˘)",
		squares: "🟦",
	},
	Close: {
		emoji:   "✖️",
		nerd:    "",
		plain:   "x",
		kaomoji: "(╯°□°)╯",
		squares: "⬜",
	},
}
