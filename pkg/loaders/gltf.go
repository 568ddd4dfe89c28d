package loaders

import (
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// ErrNoTriangles is returned when a file contains no triangle primitives
var ErrNoTriangles = errors.New("mesh contains no triangles")

var logger = log.New("gltf")

// Mesh holds the triangles read from a glTF or GLB file in world units
type Mesh struct {
	Name      string
	Triangles [][3]core.Vec3
	Bounds    core.AABB
}

// LoadGLTF reads every triangle primitive from a .gltf or .glb file.
// Node transforms are not applied; positions are taken as stored.
func LoadGLTF(path string) (*Mesh, error) {
	start := time.Now()

	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}

	mesh := &Mesh{Name: path, Bounds: core.EmptyAABB()}
	for _, m := range doc.Meshes {
		for primIndex, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				logger.Debugf("skipping primitive %d of mesh %q with mode %v", primIndex, m.Name, prim.Mode)
				continue
			}
			if err := mesh.readPrimitive(doc, prim); err != nil {
				return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
			}
		}
	}

	if len(mesh.Triangles) == 0 {
		return nil, fmt.Errorf("load %s: %w", path, ErrNoTriangles)
	}

	logger.Infof("loaded %d triangles from %s in %s", len(mesh.Triangles), path, time.Since(start))
	return mesh, nil
}

func (m *Mesh) readPrimitive(doc *gltf.Document, prim *gltf.Primitive) error {
	posIndex, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return errors.New("primitive has no POSITION attribute")
	}

	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
	if err != nil {
		return fmt.Errorf("read positions: %w", err)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return fmt.Errorf("read indices: %w", err)
		}
	} else {
		// Non-indexed: consecutive vertex triples form triangles
		indices = make([]uint32, len(positions))
		for i := range indices {
			indices[i] = uint32(i)
		}
	}

	for i := 0; i+2 < len(indices); i += 3 {
		var tri [3]core.Vec3
		for k := 0; k < 3; k++ {
			idx := int(indices[i+k])
			if idx >= len(positions) {
				return fmt.Errorf("index %d out of range for %d positions", idx, len(positions))
			}
			p := positions[idx]
			tri[k] = core.NewVec3(float64(p[0]), float64(p[1]), float64(p[2]))
		}
		m.Triangles = append(m.Triangles, tri)
		m.Bounds = m.Bounds.Union(core.NewAABBFromPoints(tri[0], tri[1], tri[2]))
	}

	return nil
}

// Fit returns a copy of the mesh uniformly scaled so its largest extent is
// size, with the bottom of its bounds centred on base.
func (m *Mesh) Fit(base core.Vec3, size float64) *Mesh {
	extent := m.Bounds.Size()
	largest := max(extent.X, extent.Y, extent.Z)
	scale := 1.0
	if largest > 0 {
		scale = size / largest
	}

	center := m.Bounds.Center()
	anchor := core.NewVec3(center.X, m.Bounds.Min.Y, center.Z)

	fitted := &Mesh{Name: m.Name, Triangles: make([][3]core.Vec3, len(m.Triangles)), Bounds: core.EmptyAABB()}
	for i, tri := range m.Triangles {
		for k, p := range tri {
			fitted.Triangles[i][k] = p.Subtract(anchor).Multiply(scale).Add(base)
		}
		fitted.Bounds = fitted.Bounds.Union(core.NewAABBFromPoints(fitted.Triangles[i][:]...))
	}
	return fitted
}

// Hittables converts the mesh into triangles sharing one material
func (m *Mesh) Hittables(mat material.Material) []geometry.Hittable {
	objects := make([]geometry.Hittable, 0, len(m.Triangles))
	for _, tri := range m.Triangles {
		objects = append(objects, geometry.NewTriangle(tri[0], tri[1], tri[2], mat))
	}
	return objects
}
