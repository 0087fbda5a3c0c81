package blindmark

import "github.com/blindmark/blindmark/internal/dsp"

// dctBlockGrid computes how many whole 8x8 blocks tile
// a plane of the given dimensions, skipping partial blocks on the
// right/bottom edge per spec §4.2.
func dctBlockGrid(rows, cols int) (blockRows, blockCols int) {
	return rows / dsp.BlockSize, cols / dsp.BlockSize
}

// embedDCTPair embeds bits into y using the DCT-pair carrier: one bit per
// 8x8 block, scanned left-to-right then top-to-bottom, modulated by an
// HVS perceptual mask.
func embedDCTPair(y *dsp.Plane, bits []byte, cfg Config) (*dsp.Plane, error) {
	blockRows, blockCols := dctBlockGrid(y.Rows, y.Cols)
	total := blockRows * blockCols
	if total < len(bits) {
		return nil, newError(ErrImageTooSmall, "fewer 8x8 blocks than bit stream length", nil)
	}

	mask := dsp.HVSMask(y, cfg.Alpha)
	out := dsp.NewPlane(y.Rows, y.Cols)
	copy(out.Data, y.Data)

	var block, transformed [dsp.BlockSize * dsp.BlockSize]float64
	idx := 0
	for br := 0; br < blockRows; br++ {
		for bc := 0; bc < blockCols; bc++ {
			if idx >= len(bits) {
				goto done
			}
			row0, col0 := br*dsp.BlockSize, bc*dsp.BlockSize
			dsp.ExtractBlock(out.Data, out.Cols, row0, col0, &block)
			dsp.DCT8x8(&block, &transformed)

			centerR := row0 + dsp.BlockSize/2
			centerC := col0 + dsp.BlockSize/2
			m := mask.At(clampIndex(centerR, mask.Rows), clampIndex(centerC, mask.Cols))
			g := 2*cfg.Alpha + m*5*cfg.Alpha

			applyDCTPairBit(&transformed, cfg, bits[idx], g)

			var spatial [dsp.BlockSize * dsp.BlockSize]float64
			dsp.IDCT8x8(&transformed, &spatial)
			dsp.StoreBlock(out.Data, out.Cols, row0, col0, &spatial)
			idx++
		}
	}
done:
	return out, nil
}

// extractDCTPair reads n bits back out of y using the DCT-pair carrier.
func extractDCTPair(y *dsp.Plane, n int, cfg Config) ([]byte, error) {
	blockRows, blockCols := dctBlockGrid(y.Rows, y.Cols)
	total := blockRows * blockCols
	if total < n {
		return nil, newError(ErrImageTooSmall, "fewer 8x8 blocks than requested bit count", nil)
	}

	bits := make([]byte, n)
	var block, transformed [dsp.BlockSize * dsp.BlockSize]float64
	idx := 0
	for br := 0; br < blockRows; br++ {
		for bc := 0; bc < blockCols; bc++ {
			if idx >= n {
				return bits, nil
			}
			row0, col0 := br*dsp.BlockSize, bc*dsp.BlockSize
			dsp.ExtractBlock(y.Data, y.Cols, row0, col0, &block)
			dsp.DCT8x8(&block, &transformed)

			c1 := transformed[cfg.DCTPairRow*dsp.BlockSize+cfg.DCTPairCol]
			c2 := transformed[cfg.DCTPairCol*dsp.BlockSize+cfg.DCTPairRow]
			if c1 > c2 {
				bits[idx] = 1
			} else {
				bits[idx] = 0
			}
			idx++
		}
	}
	return bits, nil
}

// applyDCTPairBit enforces the ordering gap g between the two configured
// coefficients for the given bit, splitting any needed adjustment equally
// between them.
func applyDCTPairBit(block *[dsp.BlockSize * dsp.BlockSize]float64, cfg Config, bit byte, g float64) {
	i1 := cfg.DCTPairRow*dsp.BlockSize + cfg.DCTPairCol
	i2 := cfg.DCTPairCol*dsp.BlockSize + cfg.DCTPairRow
	c1, c2 := block[i1], block[i2]

	if bit == 1 {
		deficit := (c2 + g) - c1
		if deficit > 0 {
			block[i1] = c1 + deficit/2
			block[i2] = c2 - deficit/2
		}
		return
	}
	deficit := (c1 + g) - c2
	if deficit > 0 {
		block[i2] = c2 + deficit/2
		block[i1] = c1 - deficit/2
	}
}
