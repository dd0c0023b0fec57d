package constant

const (
	DIR_RIGHT, ACT_A    = 0x00, 0x00
	DIR_LEFT, ACT_B     = 0x01, 0x01
	DIR_UP, ACT_SELECT  = 0x02, 0x02
	DIR_DOWN, ACT_START = 0x03, 0x03
	LCD_WIDTH           = 160
	LCD_HEIGHT          = 144
	LCD_BYTES           = LCD_WIDTH * LCD_HEIGHT * 4
	SCANLINE_TICKS      = 456
	SCANLINES           = 154
	VISIBLE_SCANLINES   = 144
	FRAME_TICKS         = SCANLINE_TICKS * SCANLINES
	WINDOW_TITLE        = "gbcore"
	WINDOW_SCALE        = 4
	TARGET_FPS          = 4194304.0 / FRAME_TICKS
)

// Monochrome shades indexed by 2-bit palette value.
const (
	COLOR_WHITE      = 0xff
	COLOR_LIGHT_GRAY = 0xc0
	COLOR_DARK_GRAY  = 0x60
	COLOR_BLACK      = 0x00
)

