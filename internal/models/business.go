package models

// MenuItem is a single catering menu entry attached to a service.
type MenuItem struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"` // Food | Drink | Appetizer | Dessert | Other
}

// ServiceItem is one offering on a business profile.
type ServiceItem struct {
	Name         string     `bson:"name" json:"name"`
	Amount       float64    `bson:"amount" json:"amount"`
	Currency     string     `bson:"currency" json:"currency"`
	TimeCategory string     `bson:"timeCategory" json:"timeCategory"`
	Description  string     `bson:"description,omitempty" json:"description,omitempty"`
	MenuItems    []MenuItem `bson:"menuItems,omitempty" json:"menuItems,omitempty"`
}

// Business is a vendor profile. Older frontend builds stored a single image
// URL instead of a gallery, so Images uses the lenient StringList decoder.
type Business struct {
	ID          string        `bson:"id" json:"id"`
	Name        string        `bson:"name" json:"name"`
	Category    string        `bson:"category" json:"category"`
	ContactName string        `bson:"contactName,omitempty" json:"contactName,omitempty"`
	Email       string        `bson:"email" json:"email"`
	Phone       string        `bson:"phone" json:"phone"`
	Rating      float64       `bson:"rating" json:"rating"`
	Country     string        `bson:"country,omitempty" json:"country,omitempty"`
	City        string        `bson:"city" json:"city"`
	District    string        `bson:"district,omitempty" json:"district,omitempty"`
	Description string        `bson:"description,omitempty" json:"description,omitempty"`
	Services    []ServiceItem `bson:"services,omitempty" json:"services,omitempty"`
	Images      StringList    `bson:"images,omitempty" json:"images,omitempty"`
	VideoURL    string        `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	MapsURL     string        `bson:"mapsUrl,omitempty" json:"mapsUrl,omitempty"`
	Directions  string        `bson:"directions,omitempty" json:"directions,omitempty"`
}
