package dsp

// BGR <-> YUV conversion, fixed-point, matching OpenCV's cv2.COLOR_BGR2YUV /
// cv2.COLOR_YUV2BGR (full-range "analog" YUV, not limited-range YCbCr).
// The floating point matrix is:
//
//	Y =  0.299 R + 0.587 G + 0.114 B
//	U = -0.147 R - 0.289 G + 0.436 B + 128
//	V =  0.615 R - 0.515 G - 0.100 B + 128
//
//	R = Y + 1.13983 V
//	G = Y - 0.39465 U - 0.58060 V
//	B = Y + 2.03211 U
//
// All coefficients are scaled by 1<<yuvFix and rounded to the nearest
// integer, the same fixed-point approach as libwebp's yuv.h tables.
const yuvFix = 16

const (
	cYR = 19595 // 0.299 * 65536
	cYG = 38470 // 0.587 * 65536
	cYB = 7471  // 0.114 * 65536

	cUR = -9634  // -0.147 * 65536
	cUG = -18940 // -0.289 * 65536
	cUB = 28574  // 0.436 * 65536

	cVR = 40305 // 0.615 * 65536
	cVG = -33751 // -0.515 * 65536
	cVB = -6554  // -0.100 * 65536

	cRV = 74700 // 1.13983 * 65536
	cGU = -25864 // -0.39465 * 65536
	cGV = -38050 // -0.58060 * 65536
	cBU = 133176 // 2.03211 * 65536
)

// Clip8 clamps v to [0, 255] and truncates to uint8.
func Clip8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// BGRToYUV converts one BGR pixel to Y, U, V (all 0-255).
func BGRToYUV(b, g, r uint8) (y, u, v uint8) {
	ri, gi, bi := int(r), int(g), int(b)
	y = Clip8((cYR*ri + cYG*gi + cYB*bi + (1 << (yuvFix - 1))) >> yuvFix)
	u = Clip8((cUR*ri+cUG*gi+cUB*bi+(1<<(yuvFix-1)))>>yuvFix + 128)
	v = Clip8((cVR*ri+cVG*gi+cVB*bi+(1<<(yuvFix-1)))>>yuvFix + 128)
	return
}

// YUVToBGR converts one Y, U, V pixel back to B, G, R (all 0-255).
func YUVToBGR(y, u, v uint8) (b, g, r uint8) {
	yi := int(y)
	ui := int(u) - 128
	vi := int(v) - 128
	r = Clip8(yi + ((cRV*vi + (1 << (yuvFix - 1))) >> yuvFix))
	g = Clip8(yi + ((cGU*ui+cGV*vi+(1<<(yuvFix-1))) >> yuvFix))
	b = Clip8(yi + ((cBU*ui + (1 << (yuvFix - 1))) >> yuvFix))
	return
}

// BGRPlanesToYUV converts a packed BGR byte buffer (stride 3*width) into
// separate Y, U, V planes, each width*height bytes, row-major.
func BGRPlanesToYUV(bgr []byte, width, height int) (y, u, v []byte) {
	n := width * height
	y = make([]byte, n)
	u = make([]byte, n)
	v = make([]byte, n)
	for i := 0; i < n; i++ {
		off := i * 3
		yy, uu, vv := BGRToYUV(bgr[off], bgr[off+1], bgr[off+2])
		y[i], u[i], v[i] = yy, uu, vv
	}
	return
}

// YUVPlanesToBGR is the inverse of BGRPlanesToYUV.
func YUVPlanesToBGR(y, u, v []byte, width, height int) []byte {
	n := width * height
	bgr := make([]byte, n*3)
	for i := 0; i < n; i++ {
		b, g, r := YUVToBGR(y[i], u[i], v[i])
		off := i * 3
		bgr[off], bgr[off+1], bgr[off+2] = b, g, r
	}
	return bgr
}
