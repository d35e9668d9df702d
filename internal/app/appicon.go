package app

import (
	"fmt"
	"slices"
)

// AppIconCategory is the section an icon is listed in.
type AppIconCategory uint

const (
	AppIconBasic AppIconCategory = iota
	AppIconGame
	AppIconPro
)

func (c AppIconCategory) String() string {
	switch c {
	case AppIconBasic:
		return "Basic Icons"
	case AppIconGame:
		return "Game Icons"
	case AppIconPro:
		return "Pro Icons"
	}
	return "?"
}

// AppIconCategories returns all categories in display order.
func AppIconCategories() []AppIconCategory {
	return []AppIconCategory{AppIconBasic, AppIconGame, AppIconPro}
}

// AppIcon is an alternate app icon.
type AppIcon struct {
	ID        string // stable ID stored in the settings
	Name      string
	Author    string
	AssetName string
	Category  AppIconCategory
}

// IsPaid reports whether an icon requires the pro entitlement.
func (ai AppIcon) IsPaid() bool {
	return ai.Category != AppIconBasic
}

// IsDefault reports whether this is the default icon, which means no alternate icon is set.
func (ai AppIcon) IsDefault() bool {
	return ai.ID == AppIconDefault.ID
}

func (ai AppIcon) String() string {
	return ai.Name
}

// AppIconDefault is the icon shipped with the app.
var AppIconDefault = AppIcon{ID: "normal", Name: "Default", Author: "LitRitt", AssetName: "IconOrange", Category: AppIconBasic}

var appIcons = []AppIcon{
	AppIconDefault,
	{ID: "connect", Name: "Connect", Author: "LitRitt", AssetName: "IconConnect", Category: AppIconPro},
	{ID: "tribute", Name: "Tribute", Author: "LitRitt", AssetName: "IconTribute", Category: AppIconBasic},
	{ID: "cartridge", Name: "Cartridge", Author: "LitRitt", AssetName: "IconCartridge", Category: AppIconPro},
	{ID: "neon", Name: "Neon", Author: "LitRitt", AssetName: "IconNeon", Category: AppIconBasic},
	{ID: "smash", Name: "Super Bros", Author: "LitRitt", AssetName: "IconSmash", Category: AppIconGame},
	{ID: "kirby", Name: "Puffball", Author: "LitRitt", AssetName: "IconKirby", Category: AppIconGame},
	{ID: "sealing", Name: "Sword That Seals", Author: "LitRitt", AssetName: "IconSealing", Category: AppIconGame},
	{ID: "sealingAlt", Name: "Sword That Seals Alt", Author: "LitRitt", AssetName: "IconSealingAlt", Category: AppIconGame},
	{ID: "igniting", Name: "Sword That Ignites", Author: "LitRitt", AssetName: "IconIgniting", Category: AppIconGame},
	{ID: "ignitingAlt", Name: "Sword That Ignites Alt", Author: "LitRitt", AssetName: "IconIgnitingAlt", Category: AppIconGame},
	{ID: "simple", Name: "Simple", Author: "epicpal", AssetName: "IconSimple", Category: AppIconBasic},
	{ID: "glass", Name: "Glass", Author: "epicpal", AssetName: "IconGlass", Category: AppIconBasic},
	{ID: "ablaze", Name: "Ablaze", Author: "Salty", AssetName: "IconAblaze", Category: AppIconBasic},
	{ID: "classic", Name: "Classic", Author: "Kongolabongo", AssetName: "IconClassic", Category: AppIconBasic},
	{ID: "ball", Name: "Fire Ball", Author: "Kongolabongo", AssetName: "IconBall", Category: AppIconGame},
	{ID: "kong", Name: "King's Barrel", Author: "Kongolabongo", AssetName: "IconKong", Category: AppIconGame},
	{ID: "black", Name: "Space Black", Author: "Kongolabongo", AssetName: "IconBlack", Category: AppIconPro},
	{ID: "silver", Name: "Silver", Author: "Kongolabongo", AssetName: "IconSilver", Category: AppIconPro},
	{ID: "gold", Name: "Gold", Author: "Kongolabongo", AssetName: "IconGold", Category: AppIconPro},
	{ID: "sword", Name: "Master Sword", Author: "Scott the Rizzler", AssetName: "IconSword", Category: AppIconGame},
	{ID: "shield", Name: "Hylian Shield", Author: "Scott the Rizzler", AssetName: "IconShield", Category: AppIconGame},
	{ID: "mario", Name: "Many Marios", Author: "Scott the Rizzler", AssetName: "IconMario", Category: AppIconGame},
}

// AppIcons returns the complete icon catalog in catalog order.
func AppIcons() []AppIcon {
	return slices.Clone(appIcons)
}

// AppIconsForCategory returns the icons of a category in catalog order.
func AppIconsForCategory(c AppIconCategory) []AppIcon {
	var s []AppIcon
	for _, ai := range appIcons {
		if ai.Category == c {
			s = append(s, ai)
		}
	}
	return s
}

// AppIconByID returns the icon for an ID.
func AppIconByID(id string) (AppIcon, error) {
	for _, ai := range appIcons {
		if ai.ID == id {
			return ai, nil
		}
	}
	return AppIcon{}, fmt.Errorf("app icon %q: %w", id, ErrNotFound)
}

// AppIconByAssetName returns the icon for an asset name.
func AppIconByAssetName(name string) (AppIcon, error) {
	for _, ai := range appIcons {
		if ai.AssetName == name {
			return ai, nil
		}
	}
	return AppIcon{}, fmt.Errorf("app icon asset %q: %w", name, ErrNotFound)
}
