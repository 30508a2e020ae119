package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by ByName
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"`
	Background  string `json:"background"` // Miss policy, "sky" or "black"
	Samples     int    `json:"samples"`    // Default samples per pixel
}

// Builder constructs a scene for an image of the given size
type Builder func(width, height int) (*Scene, error)

type registration struct {
	description string
	build       Builder
}

var builtIn = map[string]registration{
	"spheres": {"Diffuse sphere on a ground sphere under a sky", NewSpheresScene},
	"default": {"Diffuse, metal and glass spheres with depth of field", NewDefaultScene},
	"cornell": {"Cornell box with rotated boxes and a ceiling light", NewCornellScene},
}

// ByName builds the built-in scene with the given id
func ByName(name string, width, height int) (*Scene, error) {
	reg, ok := builtIn[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return reg.build(width, height)
}

// ListScenes returns every built-in scene sorted by id
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtIn))
	for id, reg := range builtIn {
		info := SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: reg.description,
		}
		// A small probe build reports the scene's defaults
		if s, err := reg.build(1, 1); err == nil {
			info.Background = s.Background.String()
			info.Samples = s.SamplingConfig.SamplesPerPixel
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// titleCase converts an id-style string to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
