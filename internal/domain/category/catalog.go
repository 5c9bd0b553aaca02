package category

// Static seed catalog of indicator categories.
// Display order is fixed; the app sorts by "order", not by document ID.
var SeedCatalog = []Category{
	MustNew("Akademik", 1),
	MustNew("Penelitian", 2),
	MustNew("Pengabdian Masyarakat", 3),
	MustNew("Sumber Daya Manusia", 4),
	MustNew("Sarana Prasarana", 5),
}

// SeedNames returns the catalog names in display order.
func SeedNames() []string {
	out := make([]string, 0, len(SeedCatalog))
	for _, c := range SeedCatalog {
		out = append(out, c.Name)
	}
	return out
}
