package scene

import (
	"fmt"
	"sort"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Identifier accepted by Create
	Name        string // Display name
	Description string
	Group       string
}

// Sheet is a set of equally sized scenes rendered into one contact sheet
type Sheet struct {
	ID     string
	Across int // Scenes per row
	Scenes []*Scene
}

type entry struct {
	info   SceneInfo
	create func() *Scene
}

var registry = map[string]entry{}

var sheets = map[string]func() *Sheet{
	"fuzzy": func() *Sheet {
		return &Sheet{ID: "fuzzy", Across: FuzzySheetAcross, Scenes: NewFuzzySheet()}
	},
}

func register(info SceneInfo, create func() *Scene) {
	registry[info.ID] = entry{info: info, create: create}
}

func init() {
	register(SceneInfo{
		ID:          "soft",
		Name:        "Soft Shadows",
		Description: "Grey sphere under a rainbow area light and a dim fill light",
		Group:       "Lighting",
	}, NewSoftShadowScene)
	register(SceneInfo{
		ID:          "dof",
		Name:        "Depth of Field",
		Description: "Row of rainbow spheres, focused on the middle one",
		Group:       "Camera",
	}, NewDepthOfFieldScene)
	register(SceneInfo{
		ID:          "moblur",
		Name:        "Motion Blur",
		Description: "Row of rainbow spheres moving away from the camera",
		Group:       "Camera",
	}, NewMotionBlurScene)
	register(SceneInfo{
		ID:          "trans",
		Name:        "Transparency",
		Description: "Tinted glass spheres with rising refractive index",
		Group:       "Materials",
	}, NewTransparencyScene)
	register(SceneInfo{
		ID:          "spheres",
		Name:        "Sphere Shell",
		Description: "A thousand random spheres packed around the camera",
		Group:       "Materials",
	}, func() *Scene { return NewSphereShellScene(5, 10, 1000, 42) })

	for _, v := range FuzzVariants {
		register(SceneInfo{
			ID:          v.ID,
			Name:        fmt.Sprintf("Fuzzy Reflection (%.2f, %s)", v.Size, v.Style),
			Description: "Reflective sphere with a perturbed surface normal",
			Group:       "Fuzzy Reflections",
		}, func() *Scene { return NewFuzzyScene(v.Size, v.Style) })
	}
}

// List returns the built-in scenes sorted by group, then ID
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		scenes = append(scenes, e.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		if scenes[i].Group != scenes[j].Group {
			return scenes[i].Group < scenes[j].Group
		}
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// Create builds a fresh copy of the scene with the given ID
func Create(id string) (*Scene, error) {
	e, ok := registry[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, id)
	}
	return e.create(), nil
}

// SheetIDs returns the IDs accepted by CreateSheet
func SheetIDs() []string {
	ids := make([]string, 0, len(sheets))
	for id := range sheets {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CreateSheet builds the scenes of a contact sheet
func CreateSheet(id string) (*Sheet, error) {
	create, ok := sheets[id]
	if !ok {
		return nil, fmt.Errorf("%w: sheet %q", ErrUnknownScene, id)
	}
	return create(), nil
}
