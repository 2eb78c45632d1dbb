package models

import "gorm.io/gorm"

// Course represents a course offered by the campus
type Course struct {
	gorm.Model
	Title         string `json:"title"`
	Description   string `json:"description"`
	Fee           int64  `json:"fee" gorm:"default:0"` // whole currency units (MMK has no subdivision)
	DurationWeeks int    `json:"duration_weeks" gorm:"default:0"`
	ThumbnailURL  string `json:"thumbnail_url"`
	IsDeleted     bool   `gorm:"default:false"`
}
