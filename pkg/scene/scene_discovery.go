package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

type builtin struct {
	info SceneInfo
	new  func() *Scene
}

var builtins = map[string]builtin{
	"default": {
		info: SceneInfo{"default", "Default", "Two nested spheres lit by one point light"},
		new:  NewDefaultScene,
	},
	"refraction": {
		info: SceneInfo{"refraction", "Refraction", "Default scene seen through a half-transparent floor"},
		new:  NewRefractionScene,
	},
	"glass": {
		info: SceneInfo{"glass", "Hollow glass", "Glass sphere with an air bubble in front of a checkered wall"},
		new:  NewGlassScene,
	},
	"patterns": {
		info: SceneInfo{"patterns", "Patterns", "Stripe, ring, gradient, checker and blended patterns"},
		new:  NewPatternScene,
	},
	"soft-shadows": {
		info: SceneInfo{"soft-shadows", "Soft shadows", "Sphere on a floor under a jittered area light"},
		new:  NewSoftShadowScene,
	},
	"mirrors": {
		info: SceneInfo{"mirrors", "Mirrors", "Facing mirrors that exhaust the recursion budget"},
		new:  NewMirrorScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for _, b := range builtins {
		scenes = append(scenes, b.info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the built-in scene with the given ID
func Create(id string) (*Scene, error) {
	b, ok := builtins[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return b.new(), nil
}
