package palette

// Fixed colors
var (
	Black      = RGB{0, 0, 0}
	White      = RGB{255, 255, 255}
	Background = RGB{10, 10, 18} // Deep space backdrop shared by all themes
)

var themes = map[string]Palette{
	"mono": {
		{255, 255, 255},
		{200, 210, 230},
		{150, 160, 190},
	},
	"cyberpunk": {
		{255, 0, 128},  // Hot pink
		{0, 255, 240},  // Neon cyan
		{255, 230, 0},  // Signal yellow
		{140, 60, 255}, // Ultraviolet
	},
	"memphis": {
		{255, 87, 120},
		{255, 200, 40},
		{40, 200, 180},
		{60, 80, 230},
		{30, 30, 30},
	},
	"steampunk": {
		{184, 115, 51}, // Copper
		{205, 170, 80}, // Brass
		{120, 80, 50},  // Leather
		{230, 210, 170},
	},
	"baroque": {
		{212, 175, 55}, // Gilt
		{128, 0, 32},   // Burgundy
		{245, 235, 215},
		{60, 40, 90},
	},
	"psychedelic": {
		{255, 60, 0},
		{255, 0, 200},
		{120, 255, 0},
		{0, 180, 255},
		{255, 240, 0},
	},
	"pixel": {
		{41, 173, 255},
		{255, 0, 77},
		{0, 228, 54},
		{255, 236, 39},
		{255, 163, 0},
	},
}
