package game

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"lounge/internal/logging"
)

const uiFontPath = "assets/fonts/Outfit-Regular.ttf"

// Panel theme, warm dark tones to match the room.
var (
	colorBgDark    = rl.NewColor(16, 14, 20, 255)
	colorBgElement = rl.NewColor(34, 30, 42, 255)
	colorBgHover   = rl.NewColor(48, 42, 58, 255)
	colorAccent    = rl.NewColor(236, 146, 88, 255)

	colorTextPrimary   = rl.NewColor(255, 255, 255, 255)
	colorTextSecondary = rl.NewColor(210, 204, 200, 255)
)

var uiFont rl.Font

// initRayguiStyle loads the panel font and styles the raygui widgets (text
// box and crossfader slider). Call it after the window opens.
func initRayguiStyle(log *logging.Logger) {
	if uiFont.Texture.ID == 0 && rl.FileExists(uiFontPath) {
		uiFont = rl.LoadFontEx(uiFontPath, 48, nil)
		if uiFont.Texture.ID > 0 {
			rl.SetTextureFilter(uiFont.Texture, rl.FilterBilinear)
			gui.SetFont(uiFont)
			log.Debugf("loaded font %s", uiFontPath)
		} else {
			log.Warnf("failed to load font %s", uiFontPath)
		}
	}

	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_FOCUSED, gui.NewColorPropertyValue(colorBgHover))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorTextSecondary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_FOCUSED, gui.NewColorPropertyValue(colorTextPrimary))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_PRESSED, gui.NewColorPropertyValue(colorTextPrimary))

	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(rl.NewColor(60, 54, 70, 255)))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_FOCUSED, gui.NewColorPropertyValue(colorAccent))

	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 18)
}

func unloadFont() {
	if uiFont.Texture.ID > 0 {
		rl.UnloadFont(uiFont)
		uiFont = rl.Font{}
	}
}
