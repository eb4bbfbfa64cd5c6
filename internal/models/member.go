package models

import "time"

type Member struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Initials    string    `json:"initials"`
	BankName    *string   `json:"bank_name"`
	BankAccount *string   `json:"bank_account"`
	CreatedAt   time.Time `json:"created_at"`
}
