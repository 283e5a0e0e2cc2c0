package aquarium

// place moves item to the first candidate of the diagonal sequence
// anchor, anchor+step, anchor+2*step, ... that is clear of the items already
// in the aquarium.
//
// The scan makes one pass over the items, and for every overlap found it
// advances and rechecks all items once more without restarting. A dense
// enough arrangement can therefore still leave item overlapping an earlier
// item.
func (a *Aquarium) place(item Item) {
	p := a.cfg.Placement
	item.SetLocation(p.AnchorX, p.AnchorY)

	n := 0
	advance := func() {
		n++
		offset := float64(n) * p.Step
		item.SetLocation(p.AnchorX+offset, p.AnchorY+offset)
	}

	for _, k := range a.items {
		if item.DistanceTo(k) >= p.Overlap {
			continue
		}
		advance()
		for _, j := range a.items {
			if item.DistanceTo(j) < p.Overlap {
				advance()
			}
		}
	}
}
