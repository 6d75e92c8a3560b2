package models

// Patient defines the structure for patient records. The dossier number
// is the business key; the numeric ID stays internal.
type Patient struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Dossier string `json:"dossier" gorm:"uniqueIndex"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
}
