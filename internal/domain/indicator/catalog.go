package indicator

// seedRow is one row of the static indicator catalog. categoryIndex points
// into the list of category IDs read back at seed time; the assignment is a
// hand-maintained table, not derived from category names, so it depends on
// the read-back order of the categories collection.
type seedRow struct {
	name          string
	description   string
	typ           Type
	categoryIndex int
	order         int
}

var seedCatalog = []seedRow{
	// IKU - Indikator Kinerja Utama
	{"Kualitas Pembelajaran", "Penilaian kualitas proses pembelajaran oleh mahasiswa", TypeIKU, 0, 1},
	{"Kepuasan Mahasiswa", "Tingkat kepuasan mahasiswa terhadap layanan institusi", TypeIKU, 0, 2},
	{"Rasio Kelulusan Tepat Waktu", "Persentase mahasiswa lulus tepat waktu", TypeIKU, 0, 3},

	// IKT - Indikator Kinerja Tambahan
	{"Publikasi Ilmiah Dosen", "Jumlah publikasi ilmiah dosen di jurnal terakreditasi", TypeIKT, 1, 1},
	{"Pengabdian kepada Masyarakat", "Kegiatan pengabdian masyarakat oleh dosen dan mahasiswa", TypeIKT, 2, 2},
	{"Kerjasama Industri", "Jumlah kerjasama dengan industri dan instansi", TypeIKT, 1, 3},
	{"Kompetensi Dosen", "Tingkat kompetensi dan kualifikasi dosen", TypeIKT, 3, 4},
	{"Kelengkapan Sarana Praktikum", "Kelengkapan dan kondisi sarana praktikum", TypeIKT, 4, 5},
}

// SeedCatalogSize returns the number of catalog rows.
func SeedCatalogSize() int {
	return len(seedCatalog)
}

// SeedRows materializes the catalog against the category IDs read back from
// the store. A row whose categoryIndex falls outside categoryIDs gets a nil
// reference instead of failing, so seeding still works when fewer than five
// categories exist.
func SeedRows(categoryIDs []string) []Indicator {
	out := make([]Indicator, 0, len(seedCatalog))
	for _, row := range seedCatalog {
		var ref *string
		if row.categoryIndex < len(categoryIDs) {
			id := categoryIDs[row.categoryIndex]
			ref = &id
		}
		out = append(out, MustNew(row.name, row.description, row.typ, ref, row.order))
	}
	return out
}
