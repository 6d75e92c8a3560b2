package models

// User defines the structure for clinician accounts.
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash, never the plaintext
}
