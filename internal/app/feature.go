package app

import (
	"fmt"
	"strings"

	"github.com/ErikKalkoken/go-set"
)

// Feature identifies a configurable subsystem of the emulator.
type Feature uint

// Features in enumeration order. FeatureAll is a sentinel standing for all other features.
const (
	// Game Boy Color
	FeatureGameboyPalettes Feature = iota
	// Nintendo 64
	FeatureN64Graphics
	// Gameplay
	FeatureGameScreenshot
	FeatureGameAudio
	FeatureSaveStateRewind
	FeatureFastForward
	FeatureQuickSettings
	// Controllers
	FeatureSkin
	FeatureBackgroundBlur
	FeatureController
	// Library
	FeatureArtworkCustomization
	FeatureAnimatedArtwork
	FeatureFavoriteGames
	// User interface
	FeatureToastNotifications
	FeatureThemeColor
	FeatureAppIcon
	FeatureRandomGame
	// Touch feedback
	FeatureTouchVibration
	FeatureTouchAudio
	FeatureTouchOverlay
	// Advanced
	FeatureSkinDebug
	FeatureAll
)

var featureKeys = map[Feature]string{
	FeatureGameboyPalettes:      "gameboyPalettes",
	FeatureN64Graphics:          "n64Graphics",
	FeatureGameScreenshot:       "gameScreenshot",
	FeatureGameAudio:            "gameAudio",
	FeatureSaveStateRewind:      "saveStateRewind",
	FeatureFastForward:          "fastForward",
	FeatureQuickSettings:        "quickSettings",
	FeatureSkin:                 "skin",
	FeatureBackgroundBlur:       "backgroundBlur",
	FeatureController:           "controller",
	FeatureArtworkCustomization: "artworkCustomization",
	FeatureAnimatedArtwork:      "animatedArtwork",
	FeatureFavoriteGames:        "favoriteGames",
	FeatureToastNotifications:   "toastNotifications",
	FeatureThemeColor:           "themeColor",
	FeatureAppIcon:              "appIcon",
	FeatureRandomGame:           "randomGame",
	FeatureTouchVibration:       "touchVibration",
	FeatureTouchAudio:           "touchAudio",
	FeatureTouchOverlay:         "touchOverlay",
	FeatureSkinDebug:            "skinDebug",
	FeatureAll:                  "allFeatures",
}

var featureNames = map[Feature]string{
	FeatureGameboyPalettes:      "Game Boy Palettes",
	FeatureN64Graphics:          "N64 Graphics",
	FeatureGameScreenshot:       "Game Screenshots",
	FeatureGameAudio:            "Game Audio",
	FeatureSaveStateRewind:      "Rewind",
	FeatureFastForward:          "Fast Forward",
	FeatureQuickSettings:        "Quick Settings",
	FeatureSkin:                 "Controller Skin",
	FeatureBackgroundBlur:       "Background Blur",
	FeatureController:           "Controller",
	FeatureArtworkCustomization: "Artwork Customization",
	FeatureAnimatedArtwork:      "Animated Artwork",
	FeatureFavoriteGames:        "Favorite Games",
	FeatureToastNotifications:   "Toast Notifications",
	FeatureThemeColor:           "Theme Color",
	FeatureAppIcon:              "App Icon",
	FeatureRandomGame:           "Random Game",
	FeatureTouchVibration:       "Touch Vibration",
	FeatureTouchAudio:           "Touch Audio",
	FeatureTouchOverlay:         "Touch Overlay",
	FeatureSkinDebug:            "Skin Debugging",
	FeatureAll:                  "All Features",
}

// appIconFeatures are the features whose settings influence the active app icon.
var appIconFeatures = set.Of(FeatureThemeColor, FeatureAppIcon)

// Key returns the stable key of a feature, e.g. for building preference keys.
func (f Feature) Key() string {
	k, ok := featureKeys[f]
	if !ok {
		return fmt.Sprintf("feature%d", uint(f))
	}
	return k
}

// DisplayName returns a user friendly name.
func (f Feature) DisplayName() string {
	s, ok := featureNames[f]
	if !ok {
		return Titler.String(f.Key())
	}
	return s
}

func (f Feature) String() string {
	return f.Key()
}

// IsSentinel reports whether f is the "all features" tag.
func (f Feature) IsSentinel() bool {
	return f == FeatureAll
}

// AffectsAppIcon reports whether resetting this feature requires syncing the app icon.
func (f Feature) AffectsAppIcon() bool {
	return appIconFeatures.Contains(f)
}

// Features returns all concrete features in enumeration order. The sentinel is not included.
func Features() []Feature {
	s := make([]Feature, 0, FeatureAll)
	for f := range FeatureAll {
		s = append(s, f)
	}
	return s
}

// ParseFeature returns the feature for a key. Keys are case insensitive.
func ParseFeature(key string) (Feature, error) {
	for f, k := range featureKeys {
		if strings.EqualFold(k, key) {
			return f, nil
		}
	}
	if strings.EqualFold(key, "all") {
		return FeatureAll, nil
	}
	return 0, fmt.Errorf("feature %q: %w", key, ErrInvalid)
}
