package models

import "time"

type CarMake struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Description string     `json:"description"`
	Models      []CarModel `json:"models,omitempty" gorm:"foreignKey:CarMakeID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Body types accepted for a CarModel.
const (
	BodySedan = "Sedan"
	BodySUV   = "SUV"
	BodyWagon = "WAGON"
)

type CarModel struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CarMakeID uint      `json:"car_make_id" gorm:"not null;index"`
	CarMake   CarMake   `json:"-"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	Type      string    `json:"type" gorm:"size:10;default:SUV"`
	Year      int       `json:"year" gorm:"default:2023;check:year >= 2015 AND year <= 2023"`
	CreatedAt time.Time `json:"created_at"`
}

// CarChoice is one entry of the make/model catalog offered when posting a review.
type CarChoice struct {
	CarMake  string `json:"CarMake"`
	CarModel string `json:"CarModel"`
}

// Label is the compound "make model" text shown in the choice list.
func (c CarChoice) Label() string {
	return c.CarMake + " " + c.CarModel
}
