package ansi

// Rainbow is the classic six-color cycle used for gradient text.
var Rainbow = []string{Red, Yellow, Green, Cyan, Blue, Magenta}

// Pastel is a soft truecolor palette for gradient text.
var Pastel = []string{
	FGRGB(255, 179, 186), // pink
	FGRGB(255, 223, 186), // peach
	FGRGB(255, 255, 186), // yellow
	FGRGB(186, 255, 201), // green
	FGRGB(186, 225, 255), // blue
	FGRGB(225, 186, 255), // purple
}
