package models

import "time"

type Restaurant struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Image       string     `json:"image"`
	Country     Country    `json:"country" gorm:"not null;index"`
	Rating      float64    `json:"rating" gorm:"default:0"` // 0–5
	MenuItems   []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type MenuItem struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	RestaurantID uint       `json:"restaurant_id" gorm:"not null;index"`
	Restaurant   Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	Name         string     `json:"name" gorm:"not null"`
	Description  string     `json:"description"`
	Price        float64    `json:"price" gorm:"not null"`
	Image        string     `json:"image"`
	Category     string     `json:"category"`
	// no column default: false must survive inserts
	Available bool      `json:"available"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
