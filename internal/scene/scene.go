// Package scene drives the per-frame render: it advances body transforms,
// binds uniforms per mesh instance and pushes each mesh through the
// transform/rasterize/shade pipeline into the framebuffer.
package scene

import (
	"math"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/noise"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/ray"
	"solar-renderer/internal/shading"
	"solar-renderer/internal/texture"
)

const skyboxRadius = 2000.0

// Scene bundles the shared resources of one running visualization: loaded
// meshes, the skybox texture, the camera and the frame counter.
type Scene struct {
	Width  int
	Height int

	Camera *camera.Camera
	Noise  noise.Field

	Projection mathutil.Mat4
	Viewport   mathutil.Mat4

	SphereMesh []raster.Vertex
	MoonMesh   []raster.Vertex
	CraftMesh  []raster.Vertex

	Skybox      *texture.Texture
	BilinearSky bool

	Planets []Body
	Time    int
}

// New assembles a scene with the stock planet roster.
func New(width, height int, cam *camera.Camera, field noise.Field) *Scene {
	return &Scene{
		Width:      width,
		Height:     height,
		Camera:     cam,
		Noise:      field,
		Projection: pipeline.ProjectionMatrix(float64(width), float64(height)),
		Viewport:   pipeline.ViewportMatrix(float64(width), float64(height)),
		Planets:    DefaultPlanets(),
	}
}

// Advance moves the shared time counter one frame forward. All body
// transforms derive from it, so scene state is a pure function of Time.
func (s *Scene) Advance() {
	s.Time++
}

// uniformsFor binds one per-draw uniform bundle.
func (s *Scene) uniformsFor(model mathutil.Mat4, view mathutil.Mat4) pipeline.Uniforms {
	return pipeline.Uniforms{
		ModelMatrix:      model,
		ViewMatrix:       view,
		ProjectionMatrix: s.Projection,
		ViewportMatrix:   s.Viewport,
		Time:             s.Time,
		Noise:            s.Noise,
	}
}

// RenderFrame draws one complete frame into fb: skybox, craft, sun, orbit
// paths, planets and moon, in that order.
func (s *Scene) RenderFrame(fb *raster.FrameBuffer) {
	fb.Clear()
	view := s.Camera.ViewMatrix()
	base := s.uniformsFor(mathutil.Mat4Identity(), view)

	if s.Skybox != nil {
		s.renderSkybox(fb, &base)
	}

	// Craft held a fixed distance ahead of the camera.
	if len(s.CraftMesh) > 0 {
		forward := s.Camera.Center.Sub(s.Camera.Eye)
		if forward.Len() > 1e-9 {
			craftPos := s.Camera.Eye.Add(forward.Normalize().Scale(craftOffset))
			u := s.uniformsFor(pipeline.ModelMatrix(craftPos, craftScale, craftRotation), view)
			s.drawMesh(fb, &u, s.CraftMesh, shading.Craft)
		}
	}

	// Sun at the origin.
	sunRot := float64(s.Time) * sunSpinSpeed
	sunU := s.uniformsFor(pipeline.ModelMatrix(mathutil.Vec3{}, sunScale, sunRot), view)
	s.drawMesh(fb, &sunU, s.SphereMesh, shading.Solar)

	cameraDistance := s.Camera.Eye.Len()

	for i, p := range s.Planets {
		// Orbit paths only when the camera is far enough out to read them.
		if cameraDistance > p.OrbitRadius+orbitVisibilityThreshold {
			s.renderOrbit(fb, p.OrbitRadius, raster.NewColor(128, 128, 128), orbitSegments, &base)
		}

		angle := float64(s.Time) * p.OrbitSpeed
		planetPos := mathutil.Vec3{
			p.OrbitRadius * math.Cos(angle),
			0,
			p.OrbitRadius * math.Sin(angle),
		}
		planetRot := float64(s.Time) * p.SpinSpeed

		u := s.uniformsFor(pipeline.ModelMatrix(planetPos, p.Scale, planetRot), view)
		s.drawMesh(fb, &u, s.SphereMesh, p.Shader)

		// The innermost planet carries the moon.
		if i == 0 && len(s.MoonMesh) > 0 {
			moonAngle := float64(s.Time) * moonOrbitSpeed
			moonPos := mathutil.Vec3{
				planetPos[0] + moonOrbitRadius*math.Cos(moonAngle),
				0,
				planetPos[2] + moonOrbitRadius*math.Sin(moonAngle),
			}
			moonRot := float64(s.Time) * moonSpinSpeed

			mu := s.uniformsFor(pipeline.ModelMatrix(moonPos, moonScale, moonRot), view)
			s.drawMesh(fb, &mu, s.MoonMesh, shading.Moon)
		}
	}
}

// drawMesh runs the full pipeline for one mesh instance: vertex transform,
// triple grouping, rasterization and per-fragment shading. A residual tail
// shorter than a triangle is dropped.
func (s *Scene) drawMesh(fb *raster.FrameBuffer, u *pipeline.Uniforms, verts []raster.Vertex, sh shading.Shader) {
	transformed := make([]raster.Vertex, len(verts))
	for i, v := range verts {
		transformed[i] = pipeline.VertexShader(v, u)
	}

	for i := 0; i+2 < len(transformed); i += 3 {
		for frag := range raster.Triangle(transformed[i], transformed[i+1], transformed[i+2], fb.Width, fb.Height) {
			fb.SetCurrentColor(shading.FragmentShader(frag, u, sh))
			fb.Point(frag.X, frag.Y, frag.Depth)
		}
	}
}

// skyRay unprojects one pixel's NDC coordinates through the inverse
// projection into a forward-looking view-space ray direction. A near-plane
// point (w=1) is unprojected; the w=0 form degenerates here because the
// inverse perspective matrix zeroes the view-axis component of directions.
func skyRay(invProjection mathutil.Mat4, ndcX, ndcY float64) mathutil.Vec3 {
	return invProjection.MulVec4(mathutil.Vec4{ndcX, ndcY, -1, 1}).XYZ().Normalize()
}

// renderSkybox ray-traces the background sphere per pixel, bypassing the
// triangle rasterizer but sharing the framebuffer's plot primitive. The
// sphere is centered at the eye, so the background does not translate with
// the camera.
func (s *Scene) renderSkybox(fb *raster.FrameBuffer, u *pipeline.Uniforms) {
	w := float64(fb.Width)
	h := float64(fb.Height)

	sky := ray.Sphere{Center: s.Camera.Eye, Radius: skyboxRadius}
	invProjection := u.ProjectionMatrix.Inverse()

	for y := 0; y < fb.Height; y++ {
		ndcY := 1 - (float64(y)/h)*2
		for x := 0; x < fb.Width; x++ {
			ndcX := (float64(x)/w)*2 - 1

			dir := skyRay(invProjection, ndcX, ndcY)
			hit := sky.RayIntersect(s.Camera.Eye, dir)
			if !hit.Hit {
				continue
			}

			var c raster.Color
			if s.BilinearSky {
				c = s.Skybox.Sample(hit.U, hit.V)
			} else {
				c = s.Skybox.GetColor(hit.U, hit.V)
			}
			fb.SetCurrentColor(c)
			// Maximum depth: any foreground geometry overrides the sky.
			fb.Point(x, y, math.MaxFloat64)
		}
	}
}

// renderOrbit draws one orbit circle as depth-tested line segments on the
// ecliptic plane, slightly below it to avoid z-fighting with the planets.
func (s *Scene) renderOrbit(fb *raster.FrameBuffer, radius float64, c raster.Color, segments int, u *pipeline.Uniforms) {
	fb.SetCurrentColor(c)

	for i := 0; i < segments; i++ {
		a1 := 2 * math.Pi * float64(i) / float64(segments)
		a2 := 2 * math.Pi * float64(i+1) / float64(segments)

		world1 := mathutil.Vec4{radius * math.Cos(a1), -0.01, radius * math.Sin(a1), 1}
		world2 := mathutil.Vec4{radius * math.Cos(a2), -0.02, radius * math.Sin(a2), 1}

		clip1 := u.ProjectionMatrix.MulVec4(u.ViewMatrix.MulVec4(world1))
		clip2 := u.ProjectionMatrix.MulVec4(u.ViewMatrix.MulVec4(world2))
		if math.Abs(clip1[3]) < 1e-9 || math.Abs(clip2[3]) < 1e-9 {
			continue
		}

		ndc1 := mathutil.Vec4{clip1[0] / clip1[3], clip1[1] / clip1[3], clip1[2] / clip1[3], 1}
		ndc2 := mathutil.Vec4{clip2[0] / clip2[3], clip2[1] / clip2[3], clip2[2] / clip2[3], 1}

		screen1 := u.ViewportMatrix.MulVec4(ndc1)
		screen2 := u.ViewportMatrix.MulVec4(ndc2)

		x1, y1 := int(screen1[0]), int(screen1[1])
		x2, y2 := int(screen2[0]), int(screen2[1])
		if x1 < 0 || x1 >= fb.Width || y1 < 0 || y1 >= fb.Height ||
			x2 < 0 || x2 >= fb.Width || y2 < 0 || y2 >= fb.Height {
			continue
		}

		raster.ThickLine(fb, x1, y1, x2, y2, ndc1[2], ndc2[2], 0.001)
	}
}
