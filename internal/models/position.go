package models

import "time"

// Position is an open role published on the careers site. The intake
// flow only ever reads these rows; mutation happens through the admin
// routes.
type Position struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title      string `gorm:"column:title;type:text;not null" json:"title"`
	Department string `gorm:"column:department;type:text;not null;index" json:"department"`
	WorkType   string `gorm:"column:work_type;type:text;not null" json:"work_type"`
	Location   string `gorm:"column:location;type:text;not null" json:"location"`

	Description string `gorm:"column:description;type:text;not null" json:"description"`
	WhatWeDo    string `gorm:"column:what_we_do;type:text" json:"what_we_do"`
	YourMission string `gorm:"column:your_mission;type:text" json:"your_mission"`
	YourProfile string `gorm:"column:your_profile;type:text" json:"your_profile"`
	TechStack   string `gorm:"column:tech_stack;type:text" json:"tech_stack"`
	WhatWeOffer string `gorm:"column:what_we_offer;type:text" json:"what_we_offer"`

	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Position) TableName() string { return "positions" }
