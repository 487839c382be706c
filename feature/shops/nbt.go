package shops

import (
	"strings"

	"market-manager/core/utils"
	"market-manager/feature/shops/models"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// enchantNames maps enchantment ids to their display names. Ids missing
// from the table fall back to a title-cased id fragment.
var enchantNames = map[string]string{
	"minecraft:protection":            "Protection",
	"minecraft:fire_protection":       "Fire Protection",
	"minecraft:blast_protection":      "Blast Protection",
	"minecraft:projectile_protection": "Projectile Protection",
	"minecraft:thorns":                "Thorns",
	"minecraft:respiration":           "Respiration",
	"minecraft:aqua_affinity":         "Aqua Affinity",
	"minecraft:depth_strider":         "Depth Strider",
	"minecraft:frost_walker":          "Frost Walker",
	"minecraft:soul_speed":            "Soul Speed",
	"minecraft:sharpness":             "Sharpness",
	"minecraft:smite":                 "Smite",
	"minecraft:bane_of_arthropods":    "Bane of Arthropods",
	"minecraft:knockback":             "Knockback",
	"minecraft:fire_aspect":           "Fire Aspect",
	"minecraft:looting":               "Looting",
	"minecraft:efficiency":            "Efficiency",
	"minecraft:silk_touch":            "Silk Touch",
	"minecraft:unbreaking":            "Unbreaking",
	"minecraft:fortune":               "Fortune",
	"minecraft:power":                 "Power",
	"minecraft:punch":                 "Punch",
	"minecraft:flame":                 "Flame",
	"minecraft:infinity":              "Infinity",
	"minecraft:luck_of_the_sea":       "Luck of the Sea",
	"minecraft:lure":                  "Lure",
	"minecraft:multishot":             "Multishot",
	"minecraft:piercing":              "Piercing",
	"minecraft:quick_charge":          "Quick Charge",
	"minecraft:loyalty":               "Loyalty",
	"minecraft:riptide":               "Riptide",
	"minecraft:channeling":            "Channeling",
	"minecraft:impaling":              "Impaling",
	"minecraft:sweeping":              "Sweeping Edge",
	"minecraft:mending":               "Mending",
	"minecraft:curse_of_binding":      "Curse of Binding",
	"minecraft:curse_of_vanishing":    "Curse of Vanishing",
	"minecraft:swift_sneak":           "Swift Sneak",
	"minecraft:density":               "Density",
	"minecraft:breach":                "Breach",
	"minecraft:wind_burst":            "Wind Burst",
}

// EnchantmentName resolves an enchantment id to its display name.
func EnchantmentName(id string) string {
	if name, ok := enchantNames[id]; ok {
		return name
	}
	return utils.TitleWords(strings.TrimPrefix(id, "minecraft:"))
}

// ParseEnchantments decodes the string-encoded enchantment map stored in an
// item component, e.g. '{"minecraft:sharpness":3,"minecraft:unbreaking":2}'.
// The embedded text does not follow the save file's own syntax: it may use
// single quotes where double quotes are expected, so quotes are normalized
// before structural parsing. Entries keep their original order. Unparsable
// or empty input yields an empty sequence, never an error.
func ParseEnchantments(raw string, logger *zap.Logger) []models.Enchantment {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	normalized := strings.ReplaceAll(raw, "'", `"`)

	var root yaml.Node
	if err := yaml.Unmarshal([]byte(normalized), &root); err != nil {
		logger.Warn("Failed to parse enchantment string",
			zap.String("input", truncate(raw, 50)),
			zap.Error(err))
		return nil
	}
	if len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		logger.Warn("Enchantment string is not a map", zap.String("input", truncate(raw, 50)))
		return nil
	}

	// Walk the mapping node directly so the document order survives.
	mapping := root.Content[0]
	enchantments := make([]models.Enchantment, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		id := mapping.Content[i].Value
		level := utils.ToInt(mapping.Content[i+1].Value)
		enchantments = append(enchantments, models.Enchantment{
			ID:    id,
			Name:  EnchantmentName(id),
			Level: level,
		})
	}
	return enchantments
}

// containerSlot is the shape of one entry in a string-encoded container
// component: a slot index plus an embedded raw item structure.
type containerSlot struct {
	Slot int            `yaml:"slot"`
	Item map[string]any `yaml:"item"`
}

// ParseContainer decodes the string-encoded slot list stored in a container
// component (shulker boxes and the like). Each slot's embedded item follows
// the same nested encoding rules as a top-level item and is normalized
// recursively. Unparsable or empty input yields an empty sequence.
func ParseContainer(raw string, logger *zap.Logger) []models.Item {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var slots []containerSlot
	if err := yaml.Unmarshal([]byte(raw), &slots); err != nil {
		logger.Warn("Failed to parse container string",
			zap.String("input", truncate(raw, 50)),
			zap.Error(err))
		return nil
	}

	var contents []models.Item
	for _, s := range slots {
		item := normalizeItem(s.Item, logger)
		if item == nil {
			continue
		}
		slot := s.Slot
		item.Slot = &slot
		contents = append(contents, *item)
	}
	return contents
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
