package downsample

// SampleSize returns the largest power of two subsampling ratio a decoder
// can apply while still producing an image at least as large as the given
// multiplier requires. The ratio is 1 when no downscaling is needed.
func SampleSize(scaleMultiplier float64) int {
	if scaleMultiplier >= 1 {
		return 1
	}
	return highestOneBit(int(1 / scaleMultiplier))
}

// SplitScaleFactor splits a scale multiplier into the power of two sample
// size applied during decode and the fine scale applied afterwards. The
// parts recombine exactly: fineScale / sampleSize == scaleMultiplier.
func SplitScaleFactor(scaleMultiplier float64) (sampleSize int, fineScale float64) {
	sampleSize = SampleSize(scaleMultiplier)
	return sampleSize, scaleMultiplier * float64(sampleSize)
}
