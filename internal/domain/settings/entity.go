// internal/domain/settings/entity.go
package settings

import "time"

// DocumentID is the fixed singleton document key within the settings
// collection. Every run of the seeder overwrites this one document.
const DocumentID = "app_settings"

// AppSettings holds the institution-wide presentation settings consumed by
// the app and the PDF report renderer. LogoURL/KopURL stay nil until an
// operator uploads the assets through the app.
type AppSettings struct {
	InstitutionName    string    `firestore:"institution_name" json:"institution_name"`
	InstitutionAddress string    `firestore:"institution_address" json:"institution_address"`
	LogoURL            *string   `firestore:"logo_url" json:"logo_url"`
	KopURL             *string   `firestore:"kop_url" json:"kop_url"`
	FontFamily         string    `firestore:"font_family" json:"font_family"`
	FontSize           float64   `firestore:"font_size" json:"font_size"`
	PrimaryColor       string    `firestore:"primary_color" json:"primary_color"`
	SecondaryColor     string    `firestore:"secondary_color" json:"secondary_color"`
	UpdatedAt          time.Time `firestore:"updated_at,serverTimestamp" json:"updated_at"`
}

// Defaults returns the initial settings for Institut Teknologi dan
// Kesehatan Mahardika. UpdatedAt is zero so the store stamps it on write.
func Defaults() AppSettings {
	return AppSettings{
		InstitutionName:    "Institut Teknologi dan Kesehatan Mahardika",
		InstitutionAddress: "Cirebon, Jawa Barat",
		LogoURL:            nil,
		KopURL:             nil,
		FontFamily:         "Roboto",
		FontSize:           14.0,
		PrimaryColor:       "#1976D2",
		SecondaryColor:     "#FF9800",
	}
}
