package models

import "time"

// Application is a submitted job application. Rows are written exactly
// once by the intake service and never updated or deleted afterwards.
//
// PositionID is nil for spontaneous applications; ResumePath is the
// reference returned by the document store, never a client filename.
type Application struct {
	ID       uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName string `gorm:"column:full_name;type:text;not null" json:"full_name"`
	Email    string `gorm:"column:email;type:text;not null" json:"email"`

	PositionID *uint `gorm:"column:position_id;index" json:"position_id"`

	ResumePath    string    `gorm:"column:resume_path;type:text;not null" json:"resume_path"`
	IsSpontaneous bool      `gorm:"column:is_spontaneous;not null;default:false" json:"is_spontaneous"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Application) TableName() string { return "applications" }
