package services

import "strings"

const (
	genericStagingPrompt = "Stage this room professionally."

	removeFurnitureClause = "First, remove all existing furniture and clutter from the room. Then, "
	keepFurnitureClause   = "Try not to remove existing furniture; work with what is already in the room. "

	stagingConstraints = " Do not alter walls, windows, doors or any other structural elements. Focus only on furniture and decor. Ensure the result looks like a realistic photograph of the same room."

	blueprintBasePrompt = "Convert this 2D floor plan blueprint into a photorealistic top-down 3D render of the same layout. Keep every wall, door and window exactly where the blueprint places them, furnish each room according to its label, and light the scene with soft natural daylight. If furniture reference photos are provided after the blueprint, use those exact pieces in the matching rooms."
)

// Base staging instructions per room type and furniture style. Fixed at
// process start, read-only at runtime. Every room carries a "standard" entry
// because style lookups fall back to it.
var promptMatrix = map[string]map[string]string{
	"Living room": {
		"standard":     "Stage this living room with a tasteful, broadly appealing furniture arrangement: a comfortable sofa, a coffee table, an area rug and warm accent lighting.",
		"modern":       "Stage this living room in a modern style with a low-profile sectional sofa, a sleek glass coffee table, abstract wall art and minimal clutter.",
		"scandinavian": "Stage this living room in a Scandinavian style with light wood furniture, a neutral wool rug, soft textiles and plenty of negative space.",
		"industrial":   "Stage this living room in an industrial style with a leather sofa, raw metal and reclaimed wood furniture and Edison-bulb lighting.",
		"bohemian":     "Stage this living room in a bohemian style with layered patterned rugs, rattan seating, abundant plants and warm eclectic textiles.",
		"luxury":       "Stage this living room in a luxury style with a designer sofa, a marble coffee table, statement lighting and refined metallic accents.",
	},
	"Bedroom": {
		"standard":     "Stage this bedroom with a neatly made queen bed, matching nightstands, bedside lamps and a soft area rug.",
		"modern":       "Stage this bedroom in a modern style with a platform bed, floating nightstands, crisp white bedding and a single piece of bold wall art.",
		"scandinavian": "Stage this bedroom in a Scandinavian style with a light wood bed frame, layered linen bedding and a pale, calming palette.",
		"industrial":   "Stage this bedroom in an industrial style with a metal bed frame, exposed-bulb sconces and dark textured bedding.",
		"bohemian":     "Stage this bedroom in a bohemian style with a low bed, a macrame wall hanging, layered throws and trailing plants.",
		"luxury":       "Stage this bedroom in a luxury style with an upholstered king bed, silk bedding, mirrored nightstands and a crystal ceiling fixture.",
	},
	"Kitchen": {
		"standard": "Stage this kitchen with clean counters, a bowl of fresh fruit, a small herb planter and tasteful countertop accessories.",
		"modern":   "Stage this kitchen in a modern style with minimalist bar stools, matte-black accents and a few sculptural countertop objects.",
		"luxury":   "Stage this kitchen in a luxury style with upscale bar seating, polished stone accessories and an elegant centerpiece on the island.",
	},
	"Dining room": {
		"standard":     "Stage this dining room with a dining table set for six, upholstered chairs, a centerpiece and a complementary sideboard.",
		"modern":       "Stage this dining room in a modern style with a rectangular table, molded chairs, a linear pendant light and a minimal centerpiece.",
		"scandinavian": "Stage this dining room in a Scandinavian style with a light oak table, spindle-back chairs and a simple ceramic centerpiece.",
		"luxury":       "Stage this dining room in a luxury style with a glossy table, velvet chairs, a dramatic chandelier and gold-toned tableware.",
	},
	"Home office": {
		"standard": "Stage this home office with a clean desk, an ergonomic chair, organized shelving and a desk lamp.",
		"modern":   "Stage this home office in a modern style with a minimalist desk, a designer task chair, cable-free surfaces and framed graphic prints.",
	},
	"Bathroom": {
		"standard": "Stage this bathroom with rolled towels, a small plant, coordinated countertop accessories and a fresh bath mat.",
		"luxury":   "Stage this bathroom in a luxury spa style with plush stacked towels, candles, marble-look accessories and an orchid.",
	},
	"Kids room": {
		"standard": "Stage this kids room with a playful but tidy arrangement: a small bed or daybed, a toy storage unit, a soft rug and cheerful wall decor.",
	},
}

// BuildStagingPrompt assembles the provider instruction from the room/style
// matrix. Unknown styles fall back to the room's standard entry, unknown rooms
// to the generic sentence. Pure function, no I/O.
func BuildStagingPrompt(roomType, furnitureStyle, additionalPrompt string, removeFurniture bool) string {
	base := genericStagingPrompt
	if styles, ok := promptMatrix[roomType]; ok {
		if text, ok := styles[furnitureStyle]; ok {
			base = text
		} else if text, ok := styles["standard"]; ok {
			base = text
		}
	}

	var b strings.Builder
	if removeFurniture {
		b.WriteString(removeFurnitureClause)
	} else {
		b.WriteString(keepFurnitureClause)
	}
	b.WriteString(base)
	b.WriteString(stagingConstraints)
	if extra := strings.TrimSpace(additionalPrompt); extra != "" {
		// User text goes in verbatim. The consumer is a generative model,
		// not an interpreter, so no sanitization is applied.
		b.WriteString(" ")
		b.WriteString(extra)
	}
	return b.String()
}

// BuildBlueprintPrompt builds the top-down render instruction for the
// blueprint-to-3D flow.
func BuildBlueprintPrompt(additionalPrompt string) string {
	if extra := strings.TrimSpace(additionalPrompt); extra != "" {
		return blueprintBasePrompt + " " + extra
	}
	return blueprintBasePrompt
}
