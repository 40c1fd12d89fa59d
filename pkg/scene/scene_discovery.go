package scene

import (
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Selector passed on the command line
	DisplayName string `json:"displayName"` // Human readable name
	Description string `json:"description"`
}

// DefaultSceneID is used when no scene, or an unknown scene, is requested
const DefaultSceneID = "scene1"

type builtinScene struct {
	info  SceneInfo
	build func(aspectRatio float64) *Scene
}

var builtinScenes = map[string]builtinScene{
	"scene1": {
		info:  SceneInfo{ID: "scene1", DisplayName: "Sphere", Description: "A single red sphere"},
		build: NewSphereScene,
	},
	"scene2": {
		info:  SceneInfo{ID: "scene2", DisplayName: "Plane and cube", Description: "A cube above a ground plane under a dim light"},
		build: NewPlaneCubeScene,
	},
	"scene3": {
		info:  SceneInfo{ID: "scene3", DisplayName: "All objects", Description: "Plane, sphere, cube and cylinder"},
		build: NewAllObjectsScene,
	},
	"scene4": {
		info:  SceneInfo{ID: "scene4", DisplayName: "Perspective", Description: "All objects seen from an elevated camera"},
		build: NewPerspectiveScene,
	},
	"scene5": {
		info:  SceneInfo{ID: "scene5", DisplayName: "Materials", Description: "Mirror and glass spheres; enable reflection to see them"},
		build: NewMaterialsScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, s := range builtinScenes {
		scenes = append(scenes, s.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds the scene with the given ID.
// The boolean is false when the ID is unknown, in which case the default
// scene is returned instead.
func Create(id string, aspectRatio float64) (*Scene, bool) {
	s, ok := builtinScenes[id]
	if !ok {
		return builtinScenes[DefaultSceneID].build(aspectRatio), false
	}
	return s.build(aspectRatio), true
}
