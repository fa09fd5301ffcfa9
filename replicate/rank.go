package replicate

import "sort"

// Key identifies a sample. Two Records with the same strain and time point
// are the same sample for dedup purposes, whatever their measurements say.
type Key struct {
	StrainID  string
	TimePoint float64
}

// Key returns the record's sample identity.
func (r *Record) Key() Key {
	return Key{StrainID: r.StrainID, TimePoint: r.TimePoint}
}

// Less orders records for reporting: highest aggregate production first,
// ties broken by earlier time point, then by strain ID. Because Production
// is memoized on first read, sorting freezes each record's aggregate, which
// is another reason filtering must finish before ranking begins.
func Less(a, b *Record) bool {
	if ap, bp := a.Production(), b.Production(); ap != bp {
		return ap > bp
	}

	if a.TimePoint != b.TimePoint {
		return a.TimePoint < b.TimePoint
	}

	return a.StrainID < b.StrainID
}

// Sort puts records into reporting order.
func Sort(records []*Record) {
	sort.Slice(records, func(i, j int) bool {
		return Less(records[i], records[j])
	})
}
