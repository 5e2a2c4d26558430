package component

// RegisterSlice is one contiguous address range the transport reads in a
// single transaction. Slices are computed once at Initialize and never
// include addresses no descriptor claims: some devices trap reads that touch
// reserved registers, so splitting at every gap is the safe choice even when
// it costs an extra round trip.
type RegisterSlice struct {
	AbsoluteAddress int // device address where the read begins
	RelativeStart   int // offset of the slice inside the bank buffer
	Count           int // registers spanned
}

// calculateSlices coalesces sorted, non-overlapping descriptors of one kind
// into maximal contiguous ranges. Descriptors merge into the same slice only
// when the next one starts exactly where the previous one ends.
func calculateSlices(values []*DataValue) []RegisterSlice {
	if len(values) == 0 {
		return nil
	}

	var slices []RegisterSlice
	first := values[0]
	prevEnd := first.end()

	for _, v := range values[1:] {
		if v.Addr != prevEnd {
			// Gap: close the current slice at the previous descriptor's end.
			slices = append(slices, RegisterSlice{
				AbsoluteAddress: first.absolute,
				RelativeStart:   first.Addr,
				Count:           prevEnd - first.Addr,
			})
			first = v
		}
		prevEnd = v.end()
	}

	slices = append(slices, RegisterSlice{
		AbsoluteAddress: first.absolute,
		RelativeStart:   first.Addr,
		Count:           prevEnd - first.Addr,
	})
	return slices
}
