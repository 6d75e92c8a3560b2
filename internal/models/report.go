package models

import "time"

// Report is a generated report stored against a patient. Reports are
// append-only; nothing in the application updates or deletes them.
type Report struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	PatientID  uint      `json:"patient_id" gorm:"index"` // Foreign key to Patient.ID
	ReportDate time.Time `json:"report_date"`
	ReportText string    `json:"report_text"`
}
