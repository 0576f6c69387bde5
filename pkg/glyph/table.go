package glyph

// table lists every glyph in definition order. The final entry doubles as
// the fallback for characters outside the alphabet.
var table = []Glyph{
	{Char: 'A', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"████████ ",
		"██    ██ ",
	}},
	{Char: 'B', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"██████   ",
		"████████ ",
	}},
	{Char: 'C', Rows: [Height]string{
		"  ████ ",
		"██     ",
		"██     ",
		"██████ ",
	}},
	{Char: 'D', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"██    ██ ",
		"██████   ",
	}},
	{Char: 'E', Rows: [Height]string{
		"██████ ",
		"██     ",
		"████   ",
		"██████ ",
	}},
	{Char: 'F', Rows: [Height]string{
		"  ████ ",
		"██     ",
		"██████ ",
		"██     ",
	}},
	{Char: 'G', Rows: [Height]string{
		"  ████ ",
		"██     ",
		"██  ██ ",
		"██████ ",
	}},
	{Char: 'H', Rows: [Height]string{
		"██    ██ ",
		"██    ██ ",
		"████████ ",
		"██    ██ ",
	}},
	{Char: 'I', Rows: [Height]string{
		"██ ",
		"██ ",
		"██ ",
		"██ ",
	}},
	{Char: 'J', Rows: [Height]string{
		"    ██ ",
		"    ██ ",
		"██  ██ ",
		"██████ ",
	}},
	{Char: 'K', Rows: [Height]string{
		"██    ██ ",
		"██  ██   ",
		"████     ",
		"██    ██ ",
	}},
	{Char: 'L', Rows: [Height]string{
		"██     ",
		"██     ",
		"██     ",
		"██████ ",
	}},
	{Char: 'M', Rows: [Height]string{
		"████████   ",
		"██  ██  ██ ",
		"██  ██  ██ ",
		"██  ██  ██ ",
	}},
	{Char: 'N', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"██    ██ ",
		"██    ██ ",
	}},
	{Char: 'O', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"██    ██ ",
		"  ██████ ",
	}},
	{Char: 'P', Rows: [Height]string{
		"  ██████ ",
		"██    ██ ",
		"██████   ",
		"██       ",
	}},
	{Char: 'Q', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"██  ████ ",
		"████  ██ ",
	}},
	{Char: 'R', Rows: [Height]string{
		"██████   ",
		"██    ██ ",
		"██████   ",
		"██    ██ ",
	}},
	{Char: 'S', Rows: [Height]string{
		"██████ ",
		"██     ",
		"    ██ ",
		"██████ ",
	}},
	{Char: 'T', Rows: [Height]string{
		"████████ ",
		"   ██    ",
		"   ██    ",
		"   ██    ",
	}},
	{Char: 'U', Rows: [Height]string{
		"██    ██ ",
		"██    ██ ",
		"██    ██ ",
		"  ██████ ",
	}},
	{Char: 'V', Rows: [Height]string{
		"██    ██ ",
		"██    ██ ",
		"██  ██   ",
		"████     ",
	}},
	{Char: 'W', Rows: [Height]string{
		"██  ██  ██ ",
		"██  ██  ██ ",
		"██  ██  ██ ",
		"  ████████ ",
	}},
	{Char: 'X', Rows: [Height]string{
		"██    ██ ",
		"  ██     ",
		"    ██   ",
		"██    ██ ",
	}},
	{Char: 'Y', Rows: [Height]string{
		"██    ██ ",
		"████████ ",
		"   ██    ",
		"   ██    ",
	}},
	{Char: 'Z', Rows: [Height]string{
		"████  ██ ",
		"    ██   ",
		"  ██     ",
		"████████ ",
	}},
	{Char: ' ', Rows: [Height]string{
		"   ",
		"   ",
		"   ",
		"   ",
	}},
	{Char: '1', Rows: [Height]string{
		"  ██   ",
		"████   ",
		"  ██   ",
		"██████ ",
	}},
	{Char: '2', Rows: [Height]string{
		"██████ ",
		"    ██ ",
		"██     ",
		"██████ ",
	}},
	{Char: '3', Rows: [Height]string{
		"██████ ",
		"    ██ ",
		"  ████ ",
		"██████ ",
	}},
	{Char: '4', Rows: [Height]string{
		"██  ██ ",
		"██  ██ ",
		"██████ ",
		"    ██ ",
	}},
	{Char: '5', Rows: [Height]string{
		"██████ ",
		"██     ",
		"    ██ ",
		"██████ ",
	}},
	{Char: '6', Rows: [Height]string{
		"██     ",
		"██████ ",
		"██  ██ ",
		"██████ ",
	}},
	{Char: '7', Rows: [Height]string{
		"██████ ",
		"    ██ ",
		"  ██   ",
		"██     ",
	}},
	{Char: '8', Rows: [Height]string{
		"██████ ",
		"██  ██ ",
		"██  ██ ",
		"██████ ",
	}},
	{Char: '9', Rows: [Height]string{
		"██████ ",
		"██  ██ ",
		"██████ ",
		"    ██ ",
	}},
	{Char: '.', Rows: [Height]string{
		"    ",
		"    ",
		"██  ",
		"██  ",
	}},
	{Char: ',', Rows: [Height]string{
		"    ",
		"    ",
		"██  ",
		"██  ",
	}},
	{Char: '!', Rows: [Height]string{
		"██  ",
		"██  ",
		"    ",
		"██  ",
	}},
	{Char: '?', Rows: [Height]string{
		"██████ ",
		"    ██ ",
		"      ",
		"  ██   ",
	}},
	{Char: '-', Rows: [Height]string{
		"      ",
		"██████",
		"      ",
		"      ",
	}},
	{Char: '+', Rows: [Height]string{
		"  ██  ",
		"██████",
		"  ██  ",
		"      ",
	}},
	{Char: '=', Rows: [Height]string{
		"      ",
		"██████",
		"██████",
		"      ",
	}},
	{Char: '@', Rows: [Height]string{
		"██████  ",
		"██  ████",
		"██    ██",
		"  ██████",
	}},
	{Char: '#', Rows: [Height]string{
		" ██  ██ ",
		"████████",
		"████████",
		" ██  ██ ",
	}},
	{Char: '$', Rows: [Height]string{
		"██    ",
		"██████",
		"██████",
		"    ██",
	}},
	{Char: '%', Rows: [Height]string{
		"██  ██",
		"  ██  ",
		"██    ",
		"██  ██",
	}},
	{Char: '&', Rows: [Height]string{
		"████  ",
		"██  ██",
		"  ██  ",
		"██  ██",
	}},
	{Char: '*', Rows: [Height]string{
		"██  ██",
		"  ██  ",
		"██  ██",
		"      ",
	}},
	{Char: '(', Rows: [Height]string{
		"  ██",
		"██  ",
		"██  ",
		"  ██",
	}},
	{Char: ')', Rows: [Height]string{
		"██  ",
		"  ██",
		"  ██",
		"██  ",
	}},
	{Char: '[', Rows: [Height]string{
		"████",
		"██  ",
		"██  ",
		"████",
	}},
	{Char: ']', Rows: [Height]string{
		"████",
		"  ██",
		"  ██",
		"████",
	}},
	{Char: '{', Rows: [Height]string{
		"  ██",
		"██  ",
		"██  ",
		"  ██",
	}},
	{Char: '}', Rows: [Height]string{
		"██  ",
		"  ██",
		"  ██",
		"██  ",
	}},
	{Char: '|', Rows: [Height]string{
		"██ ",
		"██ ",
		"██ ",
		"██ ",
	}},
	{Char: '/', Rows: [Height]string{
		"      ██",
		"    ██  ",
		"  ██    ",
		"██      ",
	}},
	{Char: '\\', Rows: [Height]string{
		"██      ",
		"  ██    ",
		"    ██  ",
		"      ██",
	}},
	{Char: '_', Rows: [Height]string{
		"      ",
		"      ",
		"      ",
		"██████",
	}},
	{Char: '^', Rows: [Height]string{
		"  ██  ",
		"██  ██",
		"      ",
		"      ",
	}},
	{Char: '~', Rows: [Height]string{
		"        ",
		"██  ██  ",
		"  ██  ██",
		"        ",
	}},
	{Char: '\'', Rows: [Height]string{
		"██",
		"██",
		"  ",
		"  ",
	}},
	{Char: '"', Rows: [Height]string{
		"██ ██",
		"██ ██",
		"     ",
		"     ",
	}},
	{Char: ':', Rows: [Height]string{
		"  ",
		"██",
		"  ",
		"██",
	}},
	{Char: ';', Rows: [Height]string{
		"  ",
		"██",
		"  ",
		"██",
	}},
	{Char: '<', Rows: [Height]string{
		"  ██",
		"██  ",
		"██  ",
		"  ██",
	}},
	{Char: '>', Rows: [Height]string{
		"██  ",
		"  ██",
		"  ██",
		"██  ",
	}},
}
