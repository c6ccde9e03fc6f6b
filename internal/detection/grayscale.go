package detection

// grayscale converts the buffer to luminance using ITU-R BT.601 weights.
// Formula: Y = floor(0.299*R + 0.587*G + 0.114*B); alpha is ignored.
func grayscale(buf PixelBuffer) []uint8 {
	n := buf.Width * buf.Height
	gray := make([]uint8, n)
	for i := 0; i < n; i++ {
		r, g, b := buf.Pix[i*4], buf.Pix[i*4+1], buf.Pix[i*4+2]
		gray[i] = uint8(float64(r)*0.299 + float64(g)*0.587 + float64(b)*0.114)
	}
	return gray
}

// segment builds the foreground mask: 1 where intensity < threshold, else 0.
func segment(gray []uint8, threshold int) []uint8 {
	mask := make([]uint8, len(gray))
	for i, v := range gray {
		if int(v) < threshold {
			mask[i] = 1
		}
	}
	return mask
}
