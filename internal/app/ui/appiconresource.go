package ui

import (
	"fmt"
	"hash/fnv"
	"strings"

	"fyne.io/fyne/v2"

	"github.com/ErikKalkoken/emuprefs/internal/app"
)

// appIconResource returns a generated image for an app icon.
// The default icon is orange. All other icons get a color derived from their asset name.
func appIconResource(icon app.AppIcon) fyne.Resource {
	rgb := uint32(0xf28c28)
	if !icon.IsDefault() {
		h := fnv.New32a()
		h.Write([]byte(icon.AssetName))
		rgb = h.Sum32()&0x7f7f7f | 0x404040
	}
	var initial string
	if r := []rune(icon.Name); len(r) > 0 {
		initial = strings.ToUpper(string(r[0]))
	}
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64" viewBox="0 0 64 64">
<rect x="2" y="2" width="60" height="60" rx="14" fill="#%06x"/>
<text x="32" y="43" font-family="sans-serif" font-size="30" font-weight="bold" fill="#ffffff" text-anchor="middle">%s</text>
</svg>`, rgb, initial)
	return fyne.NewStaticResource(icon.AssetName+".svg", []byte(svg))
}
