package service

import "farmassist/internal/modules/locator/types"

const DefaultPinColor = "#757575"

var pinPalette = map[types.Category]string{
	types.FertilizerSeller:    "#2E7D32",
	types.PesticideSeller:     "#C62828",
	types.SeedSeller:          "#F9A825",
	types.ToolSeller:          "#1565C0",
	types.AgriculturalCollege: "#6A1B9A",
}

// PinColor maps a category to its map pin color. Unknown categories get DefaultPinColor.
func PinColor(category types.Category) string {
	if c, ok := pinPalette[category]; ok {
		return c
	}
	return DefaultPinColor
}
