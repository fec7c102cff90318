package keyboard

import "strings"

// namedKeys maps canonical scan code names (the DIK_* suffix) to keys.
var namedKeys = map[string]Key{
	"ESCAPE":      KeyEscape,
	"1":           Key1,
	"2":           Key2,
	"3":           Key3,
	"4":           Key4,
	"5":           Key5,
	"6":           Key6,
	"7":           Key7,
	"8":           Key8,
	"9":           Key9,
	"0":           Key0,
	"MINUS":       KeyMinus,
	"EQUALS":      KeyEquals,
	"BACK":        KeyBack,
	"BACKSPACE":   KeyBack,
	"TAB":         KeyTab,
	"Q":           KeyQ,
	"W":           KeyW,
	"E":           KeyE,
	"R":           KeyR,
	"T":           KeyT,
	"Y":           KeyY,
	"U":           KeyU,
	"I":           KeyI,
	"O":           KeyO,
	"P":           KeyP,
	"LBRACKET":    KeyLBracket,
	"RBRACKET":    KeyRBracket,
	"RETURN":      KeyReturn,
	"ENTER":       KeyReturn,
	"LCONTROL":    KeyLControl,
	"A":           KeyA,
	"S":           KeyS,
	"D":           KeyD,
	"F":           KeyF,
	"G":           KeyG,
	"H":           KeyH,
	"J":           KeyJ,
	"K":           KeyK,
	"L":           KeyL,
	"SEMICOLON":   KeySemicolon,
	"APOSTROPHE":  KeyApostrophe,
	"GRAVE":       KeyGrave,
	"LSHIFT":      KeyLShift,
	"BACKSLASH":   KeyBackslash,
	"Z":           KeyZ,
	"X":           KeyX,
	"C":           KeyC,
	"V":           KeyV,
	"B":           KeyB,
	"N":           KeyN,
	"M":           KeyM,
	"COMMA":       KeyComma,
	"PERIOD":      KeyPeriod,
	"SLASH":       KeySlash,
	"RSHIFT":      KeyRShift,
	"MULTIPLY":    KeyMultiply,
	"LMENU":       KeyLMenu,
	"LALT":        KeyLMenu,
	"SPACE":       KeySpace,
	"CAPITAL":     KeyCapital,
	"CAPSLOCK":    KeyCapital,
	"F1":          KeyF1,
	"F2":          KeyF2,
	"F3":          KeyF3,
	"F4":          KeyF4,
	"F5":          KeyF5,
	"F6":          KeyF6,
	"F7":          KeyF7,
	"F8":          KeyF8,
	"F9":          KeyF9,
	"F10":         KeyF10,
	"F11":         KeyF11,
	"F12":         KeyF12,
	"NUMLOCK":     KeyNumlock,
	"SCROLL":      KeyScroll,
	"NUMPAD0":     KeyNumpad0,
	"NUMPAD1":     KeyNumpad1,
	"NUMPAD2":     KeyNumpad2,
	"NUMPAD3":     KeyNumpad3,
	"NUMPAD4":     KeyNumpad4,
	"NUMPAD5":     KeyNumpad5,
	"NUMPAD6":     KeyNumpad6,
	"NUMPAD7":     KeyNumpad7,
	"NUMPAD8":     KeyNumpad8,
	"NUMPAD9":     KeyNumpad9,
	"SUBTRACT":    KeySubtract,
	"ADD":         KeyAdd,
	"DECIMAL":     KeyDecimal,
	"NUMPADENTER": KeyNumpadEnter,
	"RCONTROL":    KeyRControl,
	"DIVIDE":      KeyDivide,
	"SYSRQ":       KeySysRq,
	"RMENU":       KeyRMenu,
	"RALT":        KeyRMenu,
	"PAUSE":       KeyPause,
	"HOME":        KeyHome,
	"UP":          KeyUp,
	"UPARROW":     KeyUp,
	"PRIOR":       KeyPrior,
	"PAGEUP":      KeyPrior,
	"LEFT":        KeyLeft,
	"LEFTARROW":   KeyLeft,
	"RIGHT":       KeyRight,
	"RIGHTARROW":  KeyRight,
	"END":         KeyEnd,
	"DOWN":        KeyDown,
	"DOWNARROW":   KeyDown,
	"NEXT":        KeyNext,
	"PAGEDOWN":    KeyNext,
	"INSERT":      KeyInsert,
	"DELETE":      KeyDelete,
	"LWIN":        KeyLWin,
	"RWIN":        KeyRWin,
	"APPS":        KeyApps,
}

// KeyByName resolves a symbolic scan code name. The DIK_ prefix is optional
// and matching is case-insensitive.
func KeyByName(name string) (Key, bool) {
	upper := strings.ToUpper(name)
	upper = strings.TrimPrefix(upper, "DIK_")
	k, ok := namedKeys[upper]
	return k, ok
}

// KeyNames returns all canonical scan code names, unordered.
func KeyNames() []string {
	out := make([]string, 0, len(namedKeys))
	for name := range namedKeys {
		out = append(out, name)
	}
	return out
}
