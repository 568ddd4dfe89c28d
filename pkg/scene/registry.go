package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownScene is returned when no built-in scene has the requested ID
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Unique identifier used on the command line
	DisplayName string // Human readable name
	Description string
}

// Options carries the inputs some scenes need to be built
type Options struct {
	MeshPath string // glTF/GLB file for the mesh scene
	Seed     int64  // Layout seed for the random scene
}

type builder func(opts Options) (*Scene, error)

var registry = []struct {
	id          string
	description string
	build       builder
}{
	{"simple", "One diffuse sphere on a diffuse ground sphere", func(Options) (*Scene, error) {
		return NewSimpleScene(), nil
	}},
	{"materials", "Hollow glass, diffuse and metal spheres in a row", func(Options) (*Scene, error) {
		return NewMaterialsScene(), nil
	}},
	{"random", "Hundreds of random spheres with motion blur and depth of field", func(opts Options) (*Scene, error) {
		seed := opts.Seed
		if seed == 0 {
			seed = 1
		}
		return NewRandomScene(seed), nil
	}},
	{"triangles", "Pyramid and tetrahedron built from triangles", func(Options) (*Scene, error) {
		return NewTrianglesScene(), nil
	}},
	{"mesh", "Triangle mesh loaded from a glTF or GLB file", func(opts Options) (*Scene, error) {
		return NewMeshScene(opts.MeshPath)
	}},
}

// List returns the built-in scenes in display order
func List() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(registry))
	for _, r := range registry {
		scenes = append(scenes, SceneInfo{
			ID:          r.id,
			DisplayName: titleCase(r.id),
			Description: r.description,
		})
	}
	return scenes
}

// New builds the built-in scene with the given ID
func New(id string, opts Options) (*Scene, error) {
	for _, r := range registry {
		if r.id == id {
			return r.build(opts)
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScene, id)
}

// titleCase converts an identifier to title case
// e.g., "random_spheres-v2" -> "Random Spheres V2"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
