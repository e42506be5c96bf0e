// Package texture loads decoded 2D images and exposes UV color lookup for
// the skybox pass.
package texture

import (
	"image"

	"solar-renderer/internal/raster"
)

// Texture wraps a decoded NRGBA image with UV sampling. UVs outside [0,1)
// wrap modulo the image extent.
type Texture struct {
	img *image.NRGBA
}

// New wraps an already-decoded image.
func New(img *image.NRGBA) *Texture {
	return &Texture{img: img}
}

// GetColor returns the nearest texel at (u, v).
func (t *Texture) GetColor(u, v float64) raster.Color {
	w := t.img.Rect.Dx()
	h := t.img.Rect.Dy()
	if w == 0 || h == 0 {
		return raster.Color{}
	}

	x := wrapInt(int(u*float64(w)), w)
	y := wrapInt(int(v*float64(h)), h)

	i := t.img.PixOffset(t.img.Rect.Min.X+x, t.img.Rect.Min.Y+y)
	return raster.Color{R: t.img.Pix[i], G: t.img.Pix[i+1], B: t.img.Pix[i+2]}
}

// Sample performs bilinear filtering with UV wrapping. Accesses Pix
// directly: this sits inside the per-pixel skybox loop.
func (t *Texture) Sample(u, v float64) raster.Color {
	w := t.img.Rect.Dx()
	h := t.img.Rect.Dy()
	if w == 0 || h == 0 {
		return raster.Color{}
	}

	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	v = v - float64(int(v))
	if v < 0 {
		v += 1.0
	}

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := (x0 + 1) % w
	y1 := (y0 + 1) % h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	stride := t.img.Stride
	pix := t.img.Pix

	i00 := y0*stride + x0*4
	i10 := y0*stride + x1*4
	i01 := y1*stride + x0*4
	i11 := y1*stride + x1*4

	w00 := (1 - dx) * (1 - dy)
	w10 := dx * (1 - dy)
	w01 := (1 - dx) * dy
	w11 := dx * dy

	fr := float64(pix[i00])*w00 + float64(pix[i10])*w10 + float64(pix[i01])*w01 + float64(pix[i11])*w11
	fg := float64(pix[i00+1])*w00 + float64(pix[i10+1])*w10 + float64(pix[i01+1])*w01 + float64(pix[i11+1])*w11
	fb := float64(pix[i00+2])*w00 + float64(pix[i10+2])*w10 + float64(pix[i01+2])*w01 + float64(pix[i11+2])*w11

	return raster.Color{R: uint8(fr + 0.5), G: uint8(fg + 0.5), B: uint8(fb + 0.5)}
}

func wrapInt(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
