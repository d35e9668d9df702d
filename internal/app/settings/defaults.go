package settings

import (
	"fmt"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

// Default is the default value of one option of a feature.
// Value is one of: bool, float64, int, string or [app.Color].
type Default struct {
	Option string
	Value  any
}

func d(option string, value any) Default {
	return Default{Option: option, Value: value}
}

func paletteColors(prefix string, p app.GameboyPalette) []Default {
	var dd []Default
	for i, c := range p.Colors {
		dd = append(dd, d(fmt.Sprintf("%s%d", prefix, i+1), c))
	}
	return dd
}

// defaults holds the default snapshot for every feature.
// Options are listed in the order they are written on reset.
var defaults = map[app.Feature][]Default{
	app.FeatureGameboyPalettes: concat(
		[]Default{
			d("multiPalette", false),
			d("palette", app.PaletteStudio.Name),
			d("spritePalette1", app.PaletteStudio.Name),
			d("spritePalette2", app.PaletteStudio.Name),
		},
		paletteColors("customPalette1Color", app.PaletteStudio),
		paletteColors("customPalette2Color", app.PaletteMinty),
		paletteColors("customPalette3Color", app.PaletteSpacehaze),
	),
	app.FeatureN64Graphics: {
		d("graphicsAPI", "openGLES2"),
	},
	app.FeatureGameScreenshot: {
		d("saveLocation", "photos"),
		d("playCountdown", false),
		d("size", "x5"),
	},
	app.FeatureGameAudio: {
		d("volume", 1.0),
		d("respectSilent", true),
		d("playOver", true),
	},
	app.FeatureSaveStateRewind: {
		d("interval", 15),
		d("maxStates", 30),
		d("keepStates", true),
	},
	app.FeatureFastForward: {
		d("speed", 3.0),
		d("toggle", true),
		d("prompt", false),
		d("slowmo", false),
		d("unsafe", false),
	},
	app.FeatureQuickSettings: {
		d("quickActionsEnabled", true),
		d("gameAudioEnabled", true),
		d("expandedGameAudioEnabled", false),
		d("fastForwardEnabled", true),
		d("expandedFastForwardEnabled", false),
		d("controllerSkinEnabled", true),
		d("expandedControllerSkinEnabled", false),
		d("backgroundBlurEnabled", true),
		d("expandedBackgroundBlurEnabled", false),
		d("colorPalettesEnabled", true),
	},
	app.FeatureSkin: {
		d("opacity", 0.7),
		d("alwaysShow", false),
		d("matchTheme", false),
		d("backgroundColor", app.ColorBlack),
	},
	app.FeatureBackgroundBlur: {
		d("blurEnabled", true),
		d("showDuringAirPlay", true),
		d("maintainAspect", true),
		d("overrideSkin", false),
		d("strength", 1.0),
		d("tintIntensity", 0.15),
	},
	app.FeatureController: {
		d("triggerDeadzone", 0.15),
	},
	app.FeatureArtworkCustomization: {
		d("sortOrder", "alphabeticalAZ"),
		d("size", "medium"),
		d("themeAll", true),
		d("useScreenshots", true),
		d("showNewGames", true),
		d("titleSize", 1.0),
		d("titleMaxLines", 3.0),
		d("roundedCorners", 0.15),
		d("borderWidth", 2.0),
		d("glowOpacity", 0.5),
	},
	app.FeatureAnimatedArtwork: {
		d("animationSpeed", 1.0),
		d("animationPause", 0.0),
		d("animationMaxLength", 30.0),
	},
	app.FeatureFavoriteGames: {
		d("favoriteSort", true),
		d("favoriteHighlight", true),
		d("favoriteColor", app.ColorYellow),
	},
	app.FeatureToastNotifications: {
		d("duration", 1.5),
		d("restart", true),
		d("gameSave", false),
		d("stateSave", true),
		d("stateLoad", true),
		d("fastForward", false),
		d("statusBar", false),
		d("screenshot", true),
		d("rotationLock", true),
		d("backgroundBlur", false),
		d("palette", false),
		d("altSkin", false),
		d("debug", false),
	},
	app.FeatureThemeColor: {
		d("color", "orange"),
		d("customLightColor", app.ColorAccent),
		d("customDarkColor", app.ColorAccent),
	},
	app.FeatureAppIcon: {
		d("useTheme", true),
		d("alternateIcon", app.AppIconDefault.ID),
	},
	app.FeatureRandomGame: {
		d("useCollection", false),
	},
	app.FeatureTouchVibration: {
		d("strength", 1.0),
		d("buttonsEnabled", true),
		d("sticksEnabled", true),
		d("releaseEnabled", true),
	},
	app.FeatureTouchAudio: {
		d("sound", "tock"),
		d("useGameVolume", true),
		d("buttonVolume", 1.0),
	},
	app.FeatureTouchOverlay: {
		d("themed", true),
		d("overlayColor", app.ColorWhite),
		d("style", "glow"),
		d("opacity", 1.0),
		d("size", 1.0),
	},
	app.FeatureSkinDebug: {
		d("isOn", false),
		d("skinEnabled", false),
		d("traitOverride", false),
		d("device", "iphone"),
		d("displayType", "edgeToEdge"),
		d("useAlt", false),
		d("hasAlt", false),
	},
	app.FeatureAll: {},
}

func concat(ss ...[]Default) []Default {
	var r []Default
	for _, s := range ss {
		r = append(r, s...)
	}
	return r
}

// Defaults returns a copy of the default snapshot of a feature.
// The snapshot of [app.FeatureAll] is empty.
func Defaults(f app.Feature) []Default {
	dd, ok := defaults[f]
	if !ok {
		return []Default{}
	}
	r := make([]Default, len(dd))
	copy(r, dd)
	return r
}

func lookupDefault(f app.Feature, option string) (Default, bool) {
	for _, x := range defaults[f] {
		if x.Option == option {
			return x, true
		}
	}
	return Default{}, false
}
