package model

import "time"

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:128;index;not null" json:"name"`
	Price       float64 `gorm:"not null" json:"price"`
	Category    string  `gorm:"size:64;index" json:"category"`
	Description string  `json:"description"`
	Img         string  `gorm:"size:256" json:"img"`
}

type Order struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ServiceID uint   `gorm:"index;not null" json:"service"`
	Email     string `gorm:"size:128;index;not null" json:"email"`
	Customer  string `gorm:"size:128" json:"customer"`
	Address   string `gorm:"size:256" json:"address"`
	Postcode  string `gorm:"size:16" json:"postcode"`
	Currency  string `gorm:"size:8" json:"currency"`
	// price is a snapshot of the service price at checkout time
	Price         float64    `gorm:"not null" json:"price"`
	TransactionID string     `gorm:"size:64;uniqueIndex;not null" json:"transactionId"`
	Paid          bool       `gorm:"not null;default:false" json:"paid"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
