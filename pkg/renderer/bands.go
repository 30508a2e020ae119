package renderer

// Band is a horizontal strip of image rows [Y0, Y1) rendered by a single worker
type Band struct {
	Index int
	Y0    int
	Y1    int
}

// Rows returns the number of rows covered by the band
func (b Band) Rows() int {
	return b.Y1 - b.Y0
}

// PartitionBands splits an image of the given height into count contiguous
// bands. The count is clamped to [1, height]. Rows that do not divide evenly
// are appended to the first band.
func PartitionBands(height, count int) []Band {
	if height <= 0 {
		return nil
	}
	if count < 1 {
		count = 1
	}
	if count > height {
		count = height
	}

	rows := height / count
	bands := make([]Band, count)
	y := 0
	for i := range bands {
		h := rows
		if i == 0 {
			h += height - rows*count
		}
		bands[i] = Band{Index: i, Y0: y, Y1: y + h}
		y += h
	}
	return bands
}
