package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildStagingPromptKeepsFurnitureByDefault(t *testing.T) {
	prompt := BuildStagingPrompt("Living room", "modern", "", false)

	assert.True(t, strings.HasPrefix(prompt, keepFurnitureClause))
	assert.Contains(t, prompt, promptMatrix["Living room"]["modern"])
	assert.Contains(t, prompt, stagingConstraints)
	assert.NotContains(t, prompt, removeFurnitureClause)
}

func TestBuildStagingPromptRemoveFurniturePrefix(t *testing.T) {
	prompt := BuildStagingPrompt("Bedroom", "luxury", "", true)

	assert.True(t, strings.HasPrefix(prompt, removeFurnitureClause))
	assert.Contains(t, prompt, promptMatrix["Bedroom"]["luxury"])
	assert.NotContains(t, prompt, keepFurnitureClause)
}

func TestBuildStagingPromptUnknownStyleFallsBackToStandard(t *testing.T) {
	prompt := BuildStagingPrompt("Kitchen", "brutalist", "", false)

	assert.Contains(t, prompt, promptMatrix["Kitchen"]["standard"])
}

func TestBuildStagingPromptUnknownRoomFallsBackToGeneric(t *testing.T) {
	prompt := BuildStagingPrompt("Garage", "modern", "", false)

	assert.Contains(t, prompt, genericStagingPrompt)
}

func TestBuildStagingPromptAppendsTrimmedUserText(t *testing.T) {
	prompt := BuildStagingPrompt("Living room", "standard", "  make it blue  ", false)

	assert.True(t, strings.HasSuffix(prompt, " make it blue"))
	assert.Equal(t, 1, strings.Count(prompt, "make it blue"))

	// Whitespace-only extra text leaves the prompt unchanged.
	assert.Equal(t,
		BuildStagingPrompt("Living room", "standard", "", false),
		BuildStagingPrompt("Living room", "standard", "   ", false))
}

func TestBuildStagingPromptDeterministic(t *testing.T) {
	first := BuildStagingPrompt("Dining room", "scandinavian", "add candles", true)
	second := BuildStagingPrompt("Dining room", "scandinavian", "add candles", true)

	assert.Equal(t, first, second)
}

func TestBuildBlueprintPrompt(t *testing.T) {
	plain := BuildBlueprintPrompt("")
	assert.Equal(t, blueprintBasePrompt, plain)

	withExtra := BuildBlueprintPrompt(" warm lighting ")
	assert.True(t, strings.HasPrefix(withExtra, blueprintBasePrompt))
	assert.True(t, strings.HasSuffix(withExtra, " warm lighting"))
}

func TestPromptMatrixHasStandardEntryPerRoom(t *testing.T) {
	for room, styles := range promptMatrix {
		assert.Contains(t, styles, "standard", "room %q is missing its fallback style", room)
	}
}
