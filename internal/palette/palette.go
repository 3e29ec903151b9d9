package palette

// Base is the background wash the canvas is cleared to each frame.
func Base(daytime float64) HSLA {
	diffH := 5 * daytime
	diffS := 80 * daytime
	diffL := 9.8 * daytime
	return hsl(60-diffH, 80-diffS, 90.2+diffL)
}

// Sky returns the four sky stroke colors. Lightness of the first two goes
// negative past daytime 0.65 and 0.87; Clamp flags it.
func Sky(daytime float64) []HSLA {
	diffH := 25 * daytime
	diffS := 10 * daytime
	diffL := 46 * daytime
	return []HSLA{
		hsl(264+diffH, 45+diffS, 30-diffL),
		hsl(256+diffH, 40+diffS, 40-diffL),
		hsl(248+diffH, 35+diffS, 50-diffL),
		hsl(240+diffH, 30+diffS, 60-diffL),
	}
}

// Ground returns the four ground stroke colors.
func Ground(daytime float64) []HSLA {
	diffH := 10 * daytime
	diffS := 15 * daytime
	diffL := 25 * daytime
	return []HSLA{
		hsl(30+diffH, 25+diffS, 40-diffL),
		hsl(25+diffH, 25+diffS, 35-diffL),
		hsl(20+diffH, 30+diffS, 30-diffL),
		hsl(15+diffH, 35+diffS, 25-diffL),
	}
}

// Bush returns the four bush arc colors.
func Bush(daytime float64) []HSLA {
	diffH := 15 * daytime
	diffS := 5 * daytime
	diffL := 50 * daytime
	return []HSLA{
		hsl(90-diffH, 40+diffS, 62-diffL),
		hsl(95-diffH, 45+diffS, 57-diffL),
		hsl(100-diffH, 40+diffS, 50-diffL),
		hsl(70-diffH, 40+diffS, 62-diffL),
	}
}

// Weed returns the three weed stroke colors.
func Weed(daytime float64) []HSLA {
	diffH := 5 * daytime
	diffS := 5 * daytime
	diffL := 50 * daytime
	return []HSLA{
		hsl(65-diffH, 25+diffS, 75-diffL),
		hsl(60-diffH, 30+diffS, 70-diffL),
		hsl(55-diffH, 35+diffS, 65-diffL),
	}
}

// MeteorAlpha is the opacity of a meteor at height y on a canvas of the
// given height: 1 at the top, 0 at a quarter of the height, negative below.
func MeteorAlpha(y, height float64) float64 {
	return 1 - y/(height/4)
}

// Meteor returns the six fixed-hue meteor colors sharing MeteorAlpha(y, height).
// The alpha is left unclamped; callers skip drawing once it reaches zero.
func Meteor(y, height float64) []HSLA {
	alpha := MeteorAlpha(y, height)
	return []HSLA{
		{H: 340, S: 59.8, L: 64.9, A: alpha},
		{H: 350, S: 100, L: 87.6, A: alpha},
		{H: 351, S: 100, L: 85.7, A: alpha},
		{H: 348, S: 83.3, L: 47.1, A: alpha},
		{H: 275, S: 100, L: 25.5, A: alpha},
		{H: 33, S: 100, L: 50, A: alpha},
	}
}
