package component

import (
	"reflect"
	"testing"
)

func vals(spans ...[2]int) []*DataValue {
	out := make([]*DataValue, 0, len(spans))
	for _, s := range spans {
		v := NewDataValue(KindInput, s[0], s[1], Unsigned, 1)
		v.absolute = v.Addr // base 0 keeps expectations readable
		out = append(out, v)
	}
	return out
}

func TestCalculateSlices(t *testing.T) {
	cases := []struct {
		name   string
		values []*DataValue
		want   []RegisterSlice
	}{
		{
			name:   "empty",
			values: nil,
			want:   nil,
		},
		{
			name:   "single",
			values: vals([2]int{4, 1}),
			want:   []RegisterSlice{{AbsoluteAddress: 4, RelativeStart: 4, Count: 1}},
		},
		{
			name:   "contiguous run",
			values: vals([2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}),
			want:   []RegisterSlice{{AbsoluteAddress: 0, RelativeStart: 0, Count: 3}},
		},
		{
			name:   "gap splits",
			values: vals([2]int{0, 1}, [2]int{5, 1}),
			want: []RegisterSlice{
				{AbsoluteAddress: 0, RelativeStart: 0, Count: 1},
				{AbsoluteAddress: 5, RelativeStart: 5, Count: 1},
			},
		},
		{
			name:   "wide value bridges",
			values: vals([2]int{0, 2}, [2]int{2, 1}),
			want:   []RegisterSlice{{AbsoluteAddress: 0, RelativeStart: 0, Count: 3}},
		},
		{
			name:   "wide value leaves gap",
			values: vals([2]int{0, 2}, [2]int{3, 1}),
			want: []RegisterSlice{
				{AbsoluteAddress: 0, RelativeStart: 0, Count: 2},
				{AbsoluteAddress: 3, RelativeStart: 3, Count: 1},
			},
		},
		{
			name:   "multiple gaps",
			values: vals([2]int{1, 1}, [2]int{2, 2}, [2]int{6, 1}, [2]int{9, 2}),
			want: []RegisterSlice{
				{AbsoluteAddress: 1, RelativeStart: 1, Count: 3},
				{AbsoluteAddress: 6, RelativeStart: 6, Count: 1},
				{AbsoluteAddress: 9, RelativeStart: 9, Count: 2},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := calculateSlices(tc.values)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("calculateSlices() = %+v, want %+v", got, tc.want)
			}

			// Same inputs must produce the same layout every time.
			again := calculateSlices(tc.values)
			if !reflect.DeepEqual(got, again) {
				t.Fatalf("calculateSlices() not deterministic: %+v vs %+v", got, again)
			}

			assertSliceInvariants(t, tc.values, got)
		})
	}
}

// assertSliceInvariants checks the two structural properties every layout
// must hold: covered positions are exactly the claimed positions, and no
// two neighbouring slices could be merged.
func assertSliceInvariants(t *testing.T, values []*DataValue, slices []RegisterSlice) {
	t.Helper()

	claimed := map[int]bool{}
	for _, v := range values {
		for a := v.Addr; a < v.end(); a++ {
			claimed[a] = true
		}
	}

	covered := map[int]bool{}
	for _, s := range slices {
		for a := s.RelativeStart; a < s.RelativeStart+s.Count; a++ {
			if covered[a] {
				t.Fatalf("address %d covered twice", a)
			}
			covered[a] = true
		}
	}

	if !reflect.DeepEqual(claimed, covered) {
		t.Fatalf("covered positions %v != claimed positions %v", covered, claimed)
	}

	for i := 1; i < len(slices); i++ {
		prevEnd := slices[i-1].RelativeStart + slices[i-1].Count
		if slices[i].RelativeStart <= prevEnd {
			t.Fatalf("slices %d and %d are adjacent or out of order", i-1, i)
		}
	}
}

func TestSliceAbsoluteBase(t *testing.T) {
	c := New("buffer", 500, -1, nil).
		AddValue("top_temperature", NewDataValue(KindInput, 0, 1, Signed, 0.1)).
		AddValue("pump_state", NewDataValue(KindInput, 3, 1, Unsigned, 1))

	if err := c.Initialize(nopConnector{}); err != nil {
		t.Fatalf("Initialize() err=%v", err)
	}

	want := []RegisterSlice{
		{AbsoluteAddress: 500, RelativeStart: 0, Count: 1},
		{AbsoluteAddress: 503, RelativeStart: 3, Count: 1},
	}
	if got := c.InputSlices(); !reflect.DeepEqual(got, want) {
		t.Fatalf("InputSlices() = %+v, want %+v", got, want)
	}
	if got := c.InputCount(); got != 4 {
		t.Fatalf("InputCount() = %d, want 4", got)
	}
}
