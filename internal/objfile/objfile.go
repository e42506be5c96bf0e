// Package objfile parses Wavefront OBJ geometry into the flat vertex
// sequence the renderer consumes: consecutive triples form triangles, faces
// with more than three corners are fan-triangulated.
package objfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// Load reads an OBJ file and returns its triangulated vertex stream.
func Load(path string) ([]raster.Vertex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objfile: open %s: %w", path, err)
	}
	defer f.Close()

	verts, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("objfile: parse %s: %w", path, err)
	}
	return verts, nil
}

// Parse reads OBJ syntax from r. Unknown statements are skipped; malformed
// vertex or face statements are errors.
func Parse(r io.Reader) ([]raster.Vertex, error) {
	var (
		positions []mathutil.Vec3
		normals   []mathutil.Vec3
		texcoords [][2]float64
		out       []raster.Vertex
	)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: v: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: vn: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: vt: want 2 components, got %d", lineNo, len(fields)-1)
			}
			u, err1 := strconv.ParseFloat(fields[1], 64)
			v, err2 := strconv.ParseFloat(fields[2], 64)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: vt: bad float", lineNo)
			}
			texcoords = append(texcoords, [2]float64{u, v})
		case "f":
			corners := fields[1:]
			if len(corners) < 3 {
				return nil, fmt.Errorf("line %d: f: face needs 3+ corners", lineNo)
			}
			face := make([]raster.Vertex, len(corners))
			for i, c := range corners {
				v, err := resolveCorner(c, positions, normals, texcoords)
				if err != nil {
					return nil, fmt.Errorf("line %d: f: %w", lineNo, err)
				}
				face[i] = v
			}
			// Fan triangulation around the first corner.
			for i := 1; i+1 < len(face); i++ {
				out = append(out, face[0], face[i], face[i+1])
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseVec3(fields []string) (mathutil.Vec3, error) {
	if len(fields) < 3 {
		return mathutil.Vec3{}, fmt.Errorf("want 3 components, got %d", len(fields))
	}
	var v mathutil.Vec3
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad float %q", fields[i])
		}
		v[i] = f
	}
	return v, nil
}

// resolveCorner handles the v, v/vt, v//vn and v/vt/vn corner forms with
// 1-based and negative (relative) indices.
func resolveCorner(corner string, positions, normals []mathutil.Vec3, texcoords [][2]float64) (raster.Vertex, error) {
	parts := strings.Split(corner, "/")

	pi, err := resolveIndex(parts[0], len(positions))
	if err != nil {
		return raster.Vertex{}, fmt.Errorf("position index %q: %w", parts[0], err)
	}
	v := raster.Vertex{Position: positions[pi]}

	if len(parts) > 1 && parts[1] != "" {
		ti, err := resolveIndex(parts[1], len(texcoords))
		if err != nil {
			return raster.Vertex{}, fmt.Errorf("texcoord index %q: %w", parts[1], err)
		}
		v.TexCoords = texcoords[ti]
	}
	if len(parts) > 2 && parts[2] != "" {
		ni, err := resolveIndex(parts[2], len(normals))
		if err != nil {
			return raster.Vertex{}, fmt.Errorf("normal index %q: %w", parts[2], err)
		}
		v.Normal = normals[ni]
	}
	return v, nil
}

func resolveIndex(s string, n int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if idx < 0 {
		idx = n + idx
	} else {
		idx--
	}
	if idx < 0 || idx >= n {
		return 0, fmt.Errorf("out of range (have %d)", n)
	}
	return idx, nil
}
