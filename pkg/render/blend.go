package render

import "image"

// addRGBA adds src into dst channel-wise with saturation, leaving alpha
// opaque. Both images must share the same dimensions. Crossing strokes
// brighten where they overlap instead of occluding each other.
func addRGBA(dst, src *image.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		di := dst.PixOffset(b.Min.X, y)
		si := src.PixOffset(b.Min.X, y)
		for x := b.Min.X; x < b.Max.X; x++ {
			for k := 0; k < 3; k++ {
				sum := uint16(dst.Pix[di+k]) + uint16(src.Pix[si+k])
				if sum > 255 {
					sum = 255
				}
				dst.Pix[di+k] = uint8(sum)
			}
			dst.Pix[di+3] = 255
			di += 4
			si += 4
		}
	}
}
