package complog

import (
	"image/color"
	"strings"
)

// PatternKind names a lithology fill drawer.
type PatternKind string

const (
	PatternConglomerate    PatternKind = "conglomerate"
	PatternSandstoneCoarse PatternKind = "sandstone_coarse"
	PatternSandstoneMedium PatternKind = "sandstone_medium"
	PatternSandstoneFine   PatternKind = "sandstone_fine"
	PatternSiltstone       PatternKind = "siltstone"
	PatternMuddySandstone  PatternKind = "muddy_sandstone"
	PatternSandyMudstone   PatternKind = "sandy_mudstone"
	PatternShale           PatternKind = "shale"
	PatternMudstone        PatternKind = "mudstone"
	PatternDolomite        PatternKind = "dolomite"
	PatternMarl            PatternKind = "marl"
	PatternLimestone       PatternKind = "limestone"
	PatternCoal            PatternKind = "coal"
	PatternSandstone       PatternKind = "sandstone"
)

// LithologyDef binds description keywords to a pattern and base colour.
type LithologyDef struct {
	Keywords []string
	Kind     PatternKind
	Color    string
	Label    string
}

// LithologyTable is searched in order and the first hit wins, so specific
// names precede the generic substrings they contain (泥页岩 before 泥岩,
// 泥质砂岩 before 砂岩). Do not reorder.
var LithologyTable = []LithologyDef{
	{Keywords: []string{"砾岩", "conglomerate"}, Kind: PatternConglomerate, Color: "#FFE4B5", Label: "砾岩"},
	{Keywords: []string{"粗砂岩", "coarse sandstone"}, Kind: PatternSandstoneCoarse, Color: "#FFDEAD", Label: "粗砂岩"},
	{Keywords: []string{"中砂岩", "medium sandstone"}, Kind: PatternSandstoneMedium, Color: "#FFFACD", Label: "中砂岩"},
	{Keywords: []string{"细砂岩", "fine sandstone"}, Kind: PatternSandstoneFine, Color: "#FFF8DC", Label: "细砂岩"},
	{Keywords: []string{"粉砂岩", "siltstone"}, Kind: PatternSiltstone, Color: "#F5DEB3", Label: "粉砂岩"},
	{Keywords: []string{"泥质砂岩", "muddy sandstone", "argillaceous sandstone"}, Kind: PatternMuddySandstone, Color: "#DEB887", Label: "泥质砂岩"},
	{Keywords: []string{"砂质泥岩", "sandy mudstone"}, Kind: PatternSandyMudstone, Color: "#C0C0C0", Label: "砂质泥岩"},
	{Keywords: []string{"泥页岩", "页岩", "shale"}, Kind: PatternShale, Color: "#778899", Label: "页岩"},
	{Keywords: []string{"泥岩", "mudstone"}, Kind: PatternMudstone, Color: "#A9A9A9", Label: "泥岩"},
	{Keywords: []string{"白云岩", "dolomite"}, Kind: PatternDolomite, Color: "#DDA0DD", Label: "白云岩"},
	{Keywords: []string{"泥灰岩", "marl"}, Kind: PatternMarl, Color: "#B0C4DE", Label: "泥灰岩"},
	{Keywords: []string{"石灰岩", "灰岩", "钙质", "limestone", "calcareous"}, Kind: PatternLimestone, Color: "#87CEEB", Label: "石灰岩"},
	{Keywords: []string{"煤", "coal"}, Kind: PatternCoal, Color: "#2F4F4F", Label: "煤层"},
	{Keywords: []string{"砂岩", "sandstone"}, Kind: PatternSandstone, Color: "#FFFACD", Label: "砂岩"},
}

// MatchLithology returns the first table entry with a keyword contained in
// description, or nil. English keywords match case-insensitively.
func MatchLithology(description string) *LithologyDef {
	if description == "" {
		return nil
	}
	lower := strings.ToLower(description)
	for i := range LithologyTable {
		for _, kw := range LithologyTable[i].Keywords {
			if strings.Contains(lower, kw) {
				return &LithologyTable[i]
			}
		}
	}
	return nil
}

// InterpretationColors maps conclusions and categories to fill colours.
var InterpretationColors = map[string]string{
	"油层":   "#228B22",
	"差油层":  "#9ACD32",
	"油水同层": "#32CD32",
	"含油气":  "#66CDAA",
	"气层":   "#FF4500",
	"水层":   "#4169E1",
	"干层":   "#D2B48C",
	"一类层":  "#FF6347",
	"二类层":  "#FFA500",
	"三类层":  "#FFD700",

	"oil":       "#228B22",
	"poor oil":  "#9ACD32",
	"oil-water": "#32CD32",
	"oil-gas":   "#66CDAA",
	"gas":       "#FF4500",
	"water":     "#4169E1",
	"dry":       "#D2B48C",
	"class i":   "#FF6347",
	"class ii":  "#FFA500",
	"class iii": "#FFD700",
}

// MineralColors is the default palette for mineral tracks.
var MineralColors = map[string]string{
	"石英":  "#FFD700",
	"长石":  "#FF6347",
	"方解石": "#87CEEB",
	"白云石": "#DDA0DD",
	"黏土":  "#8B4513",
	"有机质": "#2F4F4F",
	"云母":  "#9370DB",
	"黄铁矿": "#B8860B",
	"石膏":  "#FFF0F5",
	"岩盐":  "#E0FFFF",
}

var (
	interpretationFallback = hex("#D3D3D3")
	lithologyFallback      = hex("#E0E0E0")
)

// interpretationColor looks up key exactly, then case-insensitively.
func interpretationColor(key string) color.RGBA {
	if c, ok := InterpretationColors[key]; ok {
		return hex(c)
	}
	if c, ok := InterpretationColors[strings.ToLower(key)]; ok {
		return hex(c)
	}
	return interpretationFallback
}
