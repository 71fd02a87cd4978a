package zstr

import "strings"

const (
	EscRed     = "\x1B[31m"
	EscGreen   = "\x1B[32m"
	EscYellow  = "\x1B[33m"
	EscBlue    = "\x1B[34m"
	EscMagenta = "\x1B[35m"
	EscCyan    = "\x1B[36m"
	EscNoColor = "\x1b[0m"
)

var ColorRemover = strings.NewReplacer(
	EscRed, "",
	EscGreen, "",
	EscYellow, "",
	EscBlue, "",
	EscMagenta, "",
	EscCyan, "",
	EscNoColor, "",
)

// ColorSetter replaces colored square/circle symbols in log text with terminal escape codes
var ColorSetter = strings.NewReplacer(
	"🟥", EscRed,
	"🟩", EscGreen,
	"🟨", EscYellow,
	"🟦", EscBlue,
	"🟪", EscMagenta,
	"🔵", EscCyan,
)
