package model

import "strings"

// Customer is owned by the account system; this service only reads it.
type Customer struct {
	ID          string `json:"id" gorm:"primaryKey;size:36"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c *Customer) GetFullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}
