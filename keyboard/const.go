package keyboard

// Key is a DirectInput keyboard scan code (DIK_* value).
type Key uint16

// KeyCount bounds the scan code space.
const KeyCount = 256

// DirectInput keyboard scan codes.
const (
	KeyEscape      Key = 0x01
	Key1           Key = 0x02
	Key2           Key = 0x03
	Key3           Key = 0x04
	Key4           Key = 0x05
	Key5           Key = 0x06
	Key6           Key = 0x07
	Key7           Key = 0x08
	Key8           Key = 0x09
	Key9           Key = 0x0A
	Key0           Key = 0x0B
	KeyMinus       Key = 0x0C
	KeyEquals      Key = 0x0D
	KeyBack        Key = 0x0E
	KeyTab         Key = 0x0F
	KeyQ           Key = 0x10
	KeyW           Key = 0x11
	KeyE           Key = 0x12
	KeyR           Key = 0x13
	KeyT           Key = 0x14
	KeyY           Key = 0x15
	KeyU           Key = 0x16
	KeyI           Key = 0x17
	KeyO           Key = 0x18
	KeyP           Key = 0x19
	KeyLBracket    Key = 0x1A
	KeyRBracket    Key = 0x1B
	KeyReturn      Key = 0x1C
	KeyLControl    Key = 0x1D
	KeyA           Key = 0x1E
	KeyS           Key = 0x1F
	KeyD           Key = 0x20
	KeyF           Key = 0x21
	KeyG           Key = 0x22
	KeyH           Key = 0x23
	KeyJ           Key = 0x24
	KeyK           Key = 0x25
	KeyL           Key = 0x26
	KeySemicolon   Key = 0x27
	KeyApostrophe  Key = 0x28
	KeyGrave       Key = 0x29
	KeyLShift      Key = 0x2A
	KeyBackslash   Key = 0x2B
	KeyZ           Key = 0x2C
	KeyX           Key = 0x2D
	KeyC           Key = 0x2E
	KeyV           Key = 0x2F
	KeyB           Key = 0x30
	KeyN           Key = 0x31
	KeyM           Key = 0x32
	KeyComma       Key = 0x33
	KeyPeriod      Key = 0x34
	KeySlash       Key = 0x35
	KeyRShift      Key = 0x36
	KeyMultiply    Key = 0x37
	KeyLMenu       Key = 0x38
	KeySpace       Key = 0x39
	KeyCapital     Key = 0x3A
	KeyF1          Key = 0x3B
	KeyF2          Key = 0x3C
	KeyF3          Key = 0x3D
	KeyF4          Key = 0x3E
	KeyF5          Key = 0x3F
	KeyF6          Key = 0x40
	KeyF7          Key = 0x41
	KeyF8          Key = 0x42
	KeyF9          Key = 0x43
	KeyF10         Key = 0x44
	KeyNumlock     Key = 0x45
	KeyScroll      Key = 0x46
	KeyNumpad7     Key = 0x47
	KeyNumpad8     Key = 0x48
	KeyNumpad9     Key = 0x49
	KeySubtract    Key = 0x4A
	KeyNumpad4     Key = 0x4B
	KeyNumpad5     Key = 0x4C
	KeyNumpad6     Key = 0x4D
	KeyAdd         Key = 0x4E
	KeyNumpad1     Key = 0x4F
	KeyNumpad2     Key = 0x50
	KeyNumpad3     Key = 0x51
	KeyNumpad0     Key = 0x52
	KeyDecimal     Key = 0x53
	KeyF11         Key = 0x57
	KeyF12         Key = 0x58
	KeyNumpadEnter Key = 0x9C
	KeyRControl    Key = 0x9D
	KeyDivide      Key = 0xB5
	KeySysRq       Key = 0xB7
	KeyRMenu       Key = 0xB8
	KeyPause       Key = 0xC5
	KeyHome        Key = 0xC7
	KeyUp          Key = 0xC8
	KeyPrior       Key = 0xC9
	KeyLeft        Key = 0xCB
	KeyRight       Key = 0xCD
	KeyEnd         Key = 0xCF
	KeyDown        Key = 0xD0
	KeyNext        Key = 0xD1
	KeyInsert      Key = 0xD2
	KeyDelete      Key = 0xD3
	KeyLWin        Key = 0xDB
	KeyRWin        Key = 0xDC
	KeyApps        Key = 0xDD
)
