package settings_test

import (
	"context"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ErikKalkoken/emuprefs/internal/app"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings"
	"github.com/ErikKalkoken/emuprefs/internal/app/settings/settingstest"
)

func TestSettings(t *testing.T) {
	t.Run("should return default when not set", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		assert.Equal(t, 1.0, s.Float(app.FeatureGameAudio, "volume"))
		assert.True(t, s.Bool(app.FeatureGameAudio, "respectSilent"))
		assert.Equal(t, 15, s.Int(app.FeatureSaveStateRewind, "interval"))
		assert.Equal(t, "iphone", s.String(app.FeatureSkinDebug, "device"))
		assert.Equal(t, app.ColorYellow, s.Color(app.FeatureFavoriteGames, "favoriteColor"))
	})
	t.Run("can set and get values", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		require.NoError(t, s.SetFloat(app.FeatureGameAudio, "volume", 0.3))
		require.NoError(t, s.SetBool(app.FeatureGameAudio, "respectSilent", false))
		require.NoError(t, s.SetInt(app.FeatureSaveStateRewind, "interval", 5))
		require.NoError(t, s.SetString(app.FeatureSkinDebug, "device", "ipad"))
		c := app.ColorFromRGB(0x123456)
		require.NoError(t, s.SetColor(app.FeatureFavoriteGames, "favoriteColor", c))
		assert.Equal(t, 0.3, s.Float(app.FeatureGameAudio, "volume"))
		assert.False(t, s.Bool(app.FeatureGameAudio, "respectSilent"))
		assert.Equal(t, 5, s.Int(app.FeatureSaveStateRewind, "interval"))
		assert.Equal(t, "ipad", s.String(app.FeatureSkinDebug, "device"))
		assert.Equal(t, c, s.Color(app.FeatureFavoriteGames, "favoriteColor"))
	})
	t.Run("should store colors as hex strings", func(t *testing.T) {
		p := settingstest.NewPreferences()
		s := settings.New(p)
		require.NoError(t, s.SetColor(app.FeatureSkin, "backgroundColor", app.ColorFromRGB(0x123456)))
		assert.Equal(t, "#123456ff", p.Data["skin.backgroundColor"])
	})
	t.Run("should return error for unknown option", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		err := s.SetBool(app.FeatureGameAudio, "unknown", true)
		assert.ErrorIs(t, err, app.ErrInvalid)
		_, err = s.Value(app.FeatureGameAudio, "unknown")
		assert.ErrorIs(t, err, app.ErrInvalid)
	})
	t.Run("should return error for wrong type", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		err := s.SetValue(app.FeatureGameAudio, "volume", 1)
		assert.ErrorIs(t, err, app.ErrInvalid)
		err = s.SetValue(app.FeatureSaveStateRewind, "interval", 15.0)
		assert.ErrorIs(t, err, app.ErrInvalid)
		err = s.SetValue(app.FeatureGameAudio, "volume", nil)
		assert.ErrorIs(t, err, app.ErrInvalid)
	})
	t.Run("can set value with matching type", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		require.NoError(t, s.SetValue(app.FeatureSaveStateRewind, "interval", 20))
		assert.Equal(t, 20, s.Int(app.FeatureSaveStateRewind, "interval"))
	})
	t.Run("should return zero value when reading with wrong type", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		assert.Equal(t, 0, s.Int(app.FeatureGameAudio, "volume"))
	})
	t.Run("power user tools are disabled by default", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		assert.False(t, s.PowerUserEnabled())
		s.SetPowerUserEnabled(true)
		assert.True(t, s.PowerUserEnabled())
	})
	t.Run("pro is disabled by default", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		assert.False(t, s.ProEnabled())
		s.SetProEnabled(true)
		assert.True(t, s.ProEnabled())
	})
	t.Run("can set and get alternate icon", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		assert.Equal(t, app.AppIconDefault, s.AlternateIcon())
		icon := app.AppIconsForCategory(app.AppIconGame)[0]
		s.SetAlternateIcon(icon)
		assert.Equal(t, icon, s.AlternateIcon())
	})
	t.Run("should return default icon when stored icon is unknown", func(t *testing.T) {
		p := settingstest.NewPreferences()
		p.Data["appIcon.alternateIcon"] = "unknown"
		s := settings.New(p)
		assert.Equal(t, app.AppIconDefault, s.AlternateIcon())
	})
}

func TestReset(t *testing.T) {
	t.Run("should restore game audio defaults", func(t *testing.T) {
		// given
		s := settings.New(settingstest.NewPreferences())
		require.NoError(t, s.SetFloat(app.FeatureGameAudio, "volume", 0.3))
		require.NoError(t, s.SetBool(app.FeatureGameAudio, "respectSilent", false))
		require.NoError(t, s.SetBool(app.FeatureGameAudio, "playOver", false))
		// when
		s.Reset(app.FeatureGameAudio)
		// then
		assert.Equal(t, 1.0, s.Float(app.FeatureGameAudio, "volume"))
		assert.True(t, s.Bool(app.FeatureGameAudio, "respectSilent"))
		assert.True(t, s.Bool(app.FeatureGameAudio, "playOver"))
	})
	t.Run("should write every default of the feature", func(t *testing.T) {
		for _, f := range app.Features() {
			p := settingstest.NewPreferences()
			s := settings.New(p)
			s.Reset(f)
			for _, x := range settings.Defaults(f) {
				_, ok := p.Data[settings.Key(f, x.Option)]
				assert.True(t, ok, "%s.%s not written", f.Key(), x.Option)
			}
			assert.Equal(t, settings.Defaults(f), s.Values(f))
		}
	})
	t.Run("should not touch other features", func(t *testing.T) {
		// given
		p := settingstest.NewPreferences()
		s := settings.New(p)
		require.NoError(t, s.SetFloat(app.FeatureFastForward, "speed", 8))
		s.SetPowerUserEnabled(true)
		s.SetProEnabled(true)
		// when
		s.Reset(app.FeatureGameAudio)
		// then
		assert.Equal(t, 8.0, s.Float(app.FeatureFastForward, "speed"))
		assert.True(t, s.PowerUserEnabled())
		assert.True(t, s.ProEnabled())
		assert.Len(t, p.Data, 3+len(settings.Defaults(app.FeatureGameAudio)))
	})
	t.Run("resetting the sentinel writes nothing", func(t *testing.T) {
		p := settingstest.NewPreferences()
		s := settings.New(p)
		s.Reset(app.FeatureAll)
		assert.Empty(t, p.Data)
		assert.Empty(t, settings.Defaults(app.FeatureAll))
	})
	t.Run("should emit changed signal", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		var got []app.Feature
		s.Changed.AddListener(func(_ context.Context, f app.Feature) {
			got = append(got, f)
		})
		s.Reset(app.FeatureSkin)
		s.Reset(app.FeatureAll)
		assert.Equal(t, []app.Feature{app.FeatureSkin}, got)
	})
}

func TestResetAll(t *testing.T) {
	t.Run("should be equal to resetting each feature", func(t *testing.T) {
		// given
		p1 := settingstest.NewPreferences()
		s1 := settings.New(p1)
		p2 := settingstest.NewPreferences()
		s2 := settings.New(p2)
		// when
		s1.ResetAll()
		for _, f := range app.Features() {
			s2.Reset(f)
		}
		// then
		assert.Equal(t, p2.Data, p1.Data)
	})
	t.Run("should reset all concrete features in order", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		var got []app.Feature
		s.Changed.AddListener(func(_ context.Context, f app.Feature) {
			got = append(got, f)
		})
		s.ResetAll()
		assert.Equal(t, app.Features(), got)
		assert.Len(t, got, 21)
	})
	t.Run("should keep power user and pro settings", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		s.SetPowerUserEnabled(true)
		s.SetProEnabled(true)
		s.ResetAll()
		assert.True(t, s.PowerUserEnabled())
		assert.True(t, s.ProEnabled())
	})
}

func TestIsDefault(t *testing.T) {
	s := settings.New(settingstest.NewPreferences())
	assert.True(t, s.IsDefault(app.FeatureGameAudio))
	require.NoError(t, s.SetFloat(app.FeatureGameAudio, "volume", 0.3))
	assert.False(t, s.IsDefault(app.FeatureGameAudio))
	require.NoError(t, s.SetColor(app.FeatureThemeColor, "customLightColor", app.ColorBlack))
	assert.False(t, s.IsDefault(app.FeatureThemeColor))
	s.Reset(app.FeatureGameAudio)
	s.Reset(app.FeatureThemeColor)
	assert.True(t, s.IsDefault(app.FeatureGameAudio))
	assert.True(t, s.IsDefault(app.FeatureThemeColor))
}

func TestKeys(t *testing.T) {
	keys := settings.Keys()
	assert.Contains(t, keys, "powerUser.isEnabled")
	assert.Contains(t, keys, "pro.isEnabled")
	assert.Contains(t, keys, "gameAudio.volume")
	assert.Contains(t, keys, "gameboyPalettes.customPalette3Color4")
}

func TestDump(t *testing.T) {
	t.Run("can dump a feature", func(t *testing.T) {
		// given
		s := settings.New(settingstest.NewPreferences())
		require.NoError(t, s.SetFloat(app.FeatureGameAudio, "volume", 0.5))
		// when
		data, err := s.Dump(app.FeatureGameAudio, app.FeatureSkin)
		// then
		require.NoError(t, err)
		var got map[string]map[string]any
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Equal(t, 0.5, got["gameAudio"]["volume"])
		assert.Equal(t, true, got["gameAudio"]["playOver"])
		assert.Equal(t, "#000000ff", got["skin"]["backgroundColor"])
		assert.Equal(t, false, got["powerUser"]["isEnabled"])
	})
	t.Run("can dump all features", func(t *testing.T) {
		s := settings.New(settingstest.NewPreferences())
		data, err := s.Dump()
		require.NoError(t, err)
		var got map[string]any
		require.NoError(t, yaml.Unmarshal(data, &got))
		assert.Len(t, got, 23)
	})
}
