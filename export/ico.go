package export

import "io"
import "fmt"
import "bytes"
import "image"

import ico "github.com/sergeymakinen/go-ico"

import "github.com/tinne26/glyphicon/compose"

// Encodes a multi-size ICO file. Each size is resampled from src unless
// src already has that size. ICO images can't exceed 256x256.
func EncodeICO(w io.Writer, src image.Image, sizes []int) error {
	if len(sizes) == 0 { return fmt.Errorf("ico: no sizes given") }
	bounds := src.Bounds()
	images := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		if size <= 0 || size > 256 {
			return fmt.Errorf("ico: invalid size %d", size)
		}
		if bounds.Dx() == size && bounds.Dy() == size {
			images = append(images, compose.ToNRGBA(src))
		} else {
			images = append(images, compose.ToNRGBA(compose.Resample(src, size)))
		}
	}
	return ico.EncodeAll(w, images)
}

// Writes a multi-size ICO file and returns the file size.
func WriteICO(path string, src image.Image, sizes []int) (int64, error) {
	var buffer bytes.Buffer
	err := EncodeICO(&buffer, src, sizes)
	if err != nil { return 0, err }
	err = AtomicWrite(path, buffer.Bytes())
	if err != nil { return 0, err }
	return int64(buffer.Len()), nil
}
