package renderer

import "testing"

func TestPartitionBands_CoversEveryRowOnce(t *testing.T) {
	heights := []int{1, 2, 7, 10, 31, 100, 225}
	counts := []int{0, 1, 2, 3, 4, 8, 16, 300}

	for _, height := range heights {
		for _, count := range counts {
			bands := PartitionBands(height, count)

			covered := make([]int, height)
			for i, band := range bands {
				if band.Index != i {
					t.Errorf("height %d count %d: band %d has index %d", height, count, i, band.Index)
				}
				if band.Rows() < 1 {
					t.Errorf("height %d count %d: band %d is empty", height, count, i)
				}
				for y := band.Y0; y < band.Y1; y++ {
					covered[y]++
				}
			}
			for y, c := range covered {
				if c != 1 {
					t.Fatalf("height %d count %d: row %d covered %d times", height, count, y, c)
				}
			}
		}
	}
}

func TestPartitionBands_RemainderGoesToFirstBand(t *testing.T) {
	bands := PartitionBands(10, 3)
	expected := []Band{
		{Index: 0, Y0: 0, Y1: 4},
		{Index: 1, Y0: 4, Y1: 7},
		{Index: 2, Y0: 7, Y1: 10},
	}

	if len(bands) != len(expected) {
		t.Fatalf("Expected %d bands, got %d", len(expected), len(bands))
	}
	for i := range expected {
		if bands[i] != expected[i] {
			t.Errorf("Band %d: expected %+v, got %+v", i, expected[i], bands[i])
		}
	}
}

func TestPartitionBands_Clamping(t *testing.T) {
	testCases := []struct {
		height, count, expected int
	}{
		{10, 0, 1},
		{10, -4, 1},
		{3, 8, 3},
		{0, 4, 0},
	}

	for _, tc := range testCases {
		if got := len(PartitionBands(tc.height, tc.count)); got != tc.expected {
			t.Errorf("PartitionBands(%d, %d): expected %d bands, got %d", tc.height, tc.count, tc.expected, got)
		}
	}
}
