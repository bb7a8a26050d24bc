package models

import "time"

// Transaction records one successful payment. Exactly one entry is written
// per completed payment; the collection is append-only.
type Transaction struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	UserName    string    `bson:"userName" json:"userName"`
	UserRole    Role      `bson:"userRole" json:"userRole"`
	Amount      float64   `bson:"amount" json:"amount"`
	Currency    string    `bson:"currency" json:"currency"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
	Description string    `bson:"description" json:"description"`
}
