package capability

// CompatibleRevisions returns the labels of every HDMI revision whose
// bandwidth ceiling can carry the given requirement, in catalog order.
func CompatibleRevisions(bandwidthGbps float64) []string {
	var labels []string
	for _, rev := range Revisions() {
		if bandwidthGbps <= rev.CeilingGbps {
			labels = append(labels, rev.Label)
		}
	}
	return labels
}

// RevisionVerdict returns per-revision carry/no-carry flags in catalog order,
// for matrix rendering.
func RevisionVerdict(bandwidthGbps float64) []bool {
	revs := Revisions()
	verdict := make([]bool, len(revs))
	for i, rev := range revs {
		verdict[i] = bandwidthGbps <= rev.CeilingGbps
	}
	return verdict
}
