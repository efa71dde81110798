package entities

// Table names of the six domain tables. Each is persisted as
// <DATA_DIR>/<name>.csv with the header row below; the column headings
// (Indonesian, as produced by the field team's spreadsheets) are the
// on-disk compatibility contract and must not be renamed.
const (
	TableBlok        = "blok"
	TableTanaman     = "tanaman"
	TablePupuk       = "pupuk"
	TableTenagaKerja = "tenaga_kerja"
	TablePanen       = "panen"
	TableKeuangan    = "keuangan"

	// TableUsers is reserved; it lives at USERS_FILE, not under DATA_DIR.
	TableUsers = "users"
)

// Column names referenced outside the registry.
const (
	ColBlokID       = "ID Blok"
	ColLuas         = "Luas (ha)"
	ColLokasi       = "Lokasi"
	ColLatitude     = "Latitude"
	ColLongitude    = "Longitude"
	ColPH           = "pH"
	ColKesuburan    = "Kesuburan"
	ColStatusTanam  = "Status Tanam"
	ColJenisJagung  = "Jenis Jagung"
	ColNamaPekerja  = "Nama Pekerja"
	ColTanggalPanen = "Tanggal Panen"
	ColHasilPanen   = "Hasil Panen (kg)"
	ColBiaya        = "Biaya Produksi (Rp)"
	ColPemasukan    = "Pemasukan (Rp)"
	ColLaba         = "Laba Bersih (Rp)"
)

// Schemas maps each table name to its ordered column list.
var Schemas = map[string][]string{
	TableBlok:        {ColBlokID, ColLuas, ColLokasi, ColLatitude, ColLongitude, ColPH, "Kelembapan (%)", ColKesuburan, ColStatusTanam, "Foto (link)"},
	TableTanaman:     {ColBlokID, ColJenisJagung, "Tanggal Tanam", "Estimasi Panen (kg)", "Jumlah Bibit", "Varietas", "Sumber Bibit"},
	TablePupuk:       {ColBlokID, "Jenis Pupuk", "Jumlah (kg)", "Tanggal Pemakaian", "Jenis Pestisida", "Jadwal Penyemprotan"},
	TableTenagaKerja: {ColNamaPekerja, ColBlokID, "Tugas", "Jam Kerja", "Upah (Rp)"},
	TablePanen:       {ColBlokID, ColTanggalPanen, ColHasilPanen, "Grade", "Harga Jual (Rp/kg)", "Pembeli"},
	TableKeuangan:    {ColBlokID, ColBiaya, ColPemasukan, ColLaba},
	TableUsers:       {"username", "password", "role"},
}

// IdentityColumns maps a table to the column used for row identity in
// append-mode imports and row deletion. Tables keyed by ID Blok accept
// multiple rows per block; dedup still keeps the last row per value.
var IdentityColumns = map[string]string{
	TableBlok:        ColBlokID,
	TableTanaman:     ColBlokID,
	TablePupuk:       ColBlokID,
	TableTenagaKerja: ColNamaPekerja,
	TablePanen:       ColBlokID,
	TableKeuangan:    ColBlokID,
	TableUsers:       "username",
}

// DomainTables lists the six domain tables in menu order.
var DomainTables = []string{
	TableBlok, TableTanaman, TablePupuk, TableTenagaKerja, TablePanen, TableKeuangan,
}

// SchemaFor returns the registered column list for name.
func SchemaFor(name string) ([]string, bool) {
	s, ok := Schemas[name]
	return s, ok
}
