package export

import "image"
import "image/color"

func solidImage(size int, clr color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i + 0], img.Pix[i + 1] = clr.R, clr.G
		img.Pix[i + 2], img.Pix[i + 3] = clr.B, clr.A
	}
	return img
}

func iconsetImages(plan Plan) []IconsetImage {
	entries := make([]IconsetImage, 0, len(plan.Iconset))
	for _, target := range plan.Iconset {
		img := solidImage(target.Size, color.NRGBA{208, 139, 62, 255})
		entries = append(entries, IconsetImage{ Name: target.Name, Image: img })
	}
	return entries
}
