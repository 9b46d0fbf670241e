package compose

import "math"
import "image"
import "image/color"
import stddraw "image/draw"

import "golang.org/x/image/draw"

// Lanczos3 is a windowed sinc resampling kernel with three lobes.
var Lanczos3 = &draw.Kernel{ Support: 3, At: lanczos3 }

func lanczos3(t float64) float64 {
	if t < 0 { t = -t }
	if t == 0 { return 1 }
	if t >= 3 { return 0 }
	pt := math.Pi*t
	return 3*math.Sin(pt)*math.Sin(pt/3)/(pt*pt)
}

// Resamples the source image into a new size x size image.
func Resample(src image.Image, size int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	Lanczos3.Scale(dst, dst.Rect, src, src.Bounds(), draw.Src, nil)
	clampPremultiplied(dst)
	return dst
}

// Lanczos lobes can overshoot and leave color channels above alpha,
// which isn't a valid premultiplied color.
func clampPremultiplied(img *image.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		alpha := img.Pix[i + 3]
		if img.Pix[i + 0] > alpha { img.Pix[i + 0] = alpha }
		if img.Pix[i + 1] > alpha { img.Pix[i + 1] = alpha }
		if img.Pix[i + 2] > alpha { img.Pix[i + 2] = alpha }
	}
}

// Creates a new image of the mask size, painted with the given color
// and using the mask as its alpha channel.
func Colorize(mask *image.Alpha, clr color.NRGBA) *image.RGBA {
	dst := image.NewRGBA(mask.Rect)
	src := image.NewUniform(clr)
	stddraw.DrawMask(dst, dst.Rect, src, image.Point{}, mask, mask.Rect.Min, stddraw.Over)
	return dst
}

// Views a grayscale coverage raster as an alpha mask. Both types share
// the same pixel layout, so no copy is made.
func AsAlpha(raster *image.Gray) *image.Alpha {
	return &image.Alpha{ Pix: raster.Pix, Stride: raster.Stride, Rect: raster.Rect }
}

// Converts the image to non-premultiplied colors, which is what most
// image viewers and the PNG format expect.
func ToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, isNRGBA := img.(*image.NRGBA); isNRGBA { return nrgba }
	bounds := img.Bounds()
	dst := image.NewNRGBA(bounds)
	stddraw.Draw(dst, bounds, img, bounds.Min, stddraw.Src)
	return dst
}
