package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/material"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for pixel inspection. It
// exposes the shading state of the visible hit.
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	ObjectID     int                    `json:"objectId"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	Inside       bool                   `json:"inside"`
	N1           float64                `json:"n1"`
	N2           float64                `json:"n2"`
	Color        [3]float64             `json:"color"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo lists the shading coefficients of a material
func extractMaterialInfo(mat material.Material) map[string]interface{} {
	c := mat.Color.Clamp(0, 1)
	properties := map[string]interface{}{
		"color":           fmt.Sprintf("#%02x%02x%02x", int(c.R*255), int(c.G*255), int(c.B*255)),
		"ambient":         mat.Ambient,
		"diffuse":         mat.Diffuse,
		"specular":        mat.Specular,
		"shininess":       mat.Shininess,
		"reflectivity":    mat.Reflectivity,
		"transparency":    mat.Transparency,
		"refractiveIndex": mat.RefractiveIndex,
		"castsShadows":    mat.CastsShadows,
	}
	if mat.Pattern != nil {
		properties["pattern"] = mat.Pattern.Kind.String()
	}
	return properties
}

// extractGeometryInfo describes where a shape sits in world space
func extractGeometryInfo(shape *geometry.Shape) map[string]interface{} {
	origin := shape.Transform().MultiplyTuple(core.NewPoint(0, 0, 0))
	return map[string]interface{}{
		"origin": vec(origin),
	}
}

func vec(t core.Tuple) [3]float64 {
	return [3]float64{t.X, t.Y, t.Z}
}

// inspectPixel casts the primary ray through a pixel and prepares the
// shading state of the visible hit
func inspectPixel(s *scene.Scene, camera *renderer.Camera, maxDepth, pixelX, pixelY int) InspectResponse {
	ray := camera.RayForPixel(pixelX, pixelY)

	xs := integrator.IntersectScene(s, ray)
	index := integrator.HitIndex(xs)
	if index < 0 {
		return InspectResponse{Hit: false}
	}

	comps := integrator.PrepareComputationsAt(s, index, ray, xs)
	shape := s.Object(comps.Object)
	color := integrator.ShadeHit(s, comps, maxDepth)

	return InspectResponse{
		Hit:          true,
		ObjectID:     int(comps.Object),
		GeometryType: shape.Kind.String(),
		Point:        vec(comps.Point),
		Normal:       vec(comps.NormalVector),
		Distance:     comps.T,
		Inside:       comps.Inside,
		N1:           comps.N1,
		N2:           comps.N2,
		Color:        [3]float64{color.R, color.G, color.B},
		Properties: map[string]interface{}{
			"material": extractMaterialInfo(shape.Material),
			"geometry": extractGeometryInfo(shape),
		},
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	// Parse pixel coordinates
	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= req.Width || pixelY < 0 || pixelY >= req.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj, err := scene.Create(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	camera, err := renderer.NewCameraFromView(req.Width, req.Height, sceneObj.View)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, inspectPixel(sceneObj, camera, req.MaxDepth, pixelX, pixelY))
}
