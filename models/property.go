package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PropertyStatus string

const (
	StatusMidStage       PropertyStatus = "Mid Stage"
	StatusNearPossession PropertyStatus = "Near Possession"
	StatusReady          PropertyStatus = "Ready"
	StatusNewLaunch      PropertyStatus = "New Launch"
)

func (s PropertyStatus) Valid() bool {
	switch s {
	case StatusMidStage, StatusNearPossession, StatusReady, StatusNewLaunch:
		return true
	default:
		return false
	}
}

const (
	TransactionSale = "For Sale"
	TransactionRent = "For Rent"

	DefaultPropertyType = "Residential"
)

var (
	ErrMissingFields        = errors.New("please fill all required fields (title, city, location, price, image, propertyType)")
	ErrMissingConfiguration = errors.New("at least one configuration (e.g. 2 BHK) is required")
	ErrInvalidStatus        = errors.New("invalid status")
)

type About struct {
	Description string   `bson:"description,omitempty" json:"description"`
	Highlights  []string `bson:"highlights,omitempty" json:"highlights"`
}

type DeveloperStats struct {
	Projects int `bson:"projects" json:"projects"`
	Years    int `bson:"years" json:"years"`
	Ongoing  int `bson:"ongoing" json:"ongoing"`
}

type Developer struct {
	Name        string         `bson:"name,omitempty" json:"name"`
	Logo        string         `bson:"logo,omitempty" json:"logo"`
	Description string         `bson:"description,omitempty" json:"description"`
	Stats       DeveloperStats `bson:"stats" json:"stats"`
}

// Configuration is one unit-type variant of a property (e.g. "2 BHK").
// Price here is display text ("45 L"), unlike the numeric Property.Price.
type Configuration struct {
	Type  string `bson:"type" json:"type"`
	Area  string `bson:"area" json:"area"`
	Price string `bson:"price" json:"price"`
	Image string `bson:"image" json:"image"`
}

type CompareEntry struct {
	ProjectName string `bson:"projectName" json:"projectName"`
	PriceRange  string `bson:"priceRange" json:"priceRange"`
	Location    string `bson:"location" json:"location"`
	Status      string `bson:"status" json:"status"`
}

type Property struct {
	ID              primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title           string              `bson:"title" json:"title"`
	City            string              `bson:"city" json:"city"`
	Location        string              `bson:"location" json:"location"`
	Price           float64             `bson:"price" json:"price"`
	Currency        string              `bson:"currency,omitempty" json:"currency,omitempty"`
	Image           string              `bson:"image" json:"image"`
	PropertyType    string              `bson:"propertyType" json:"propertyType"`
	TransactionType string              `bson:"transactionType" json:"transactionType"`
	Status          PropertyStatus      `bson:"status" json:"status"`
	Featured        bool                `bson:"featured" json:"featured"`
	MapURL          string              `bson:"mapUrl,omitempty" json:"mapUrl,omitempty"`
	Amenities       []string            `bson:"amenities" json:"amenities"`
	About           About               `bson:"about" json:"about"`
	Developer       Developer           `bson:"developer" json:"developer"`
	Configurations  []Configuration     `bson:"configurations" json:"configurations"`
	Compare         []CompareEntry      `bson:"compare,omitempty" json:"compare,omitempty"`
	CreatedBy       *primitive.ObjectID `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt       time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Validate checks the create-time constraints. Defaults are applied
// separately, after validation, so a missing propertyType is still an
// error rather than silently becoming Residential.
func (p *Property) Validate() error {
	if p.Title == "" || p.City == "" || p.Location == "" || p.Price == 0 || p.Image == "" || p.PropertyType == "" {
		return ErrMissingFields
	}
	if len(p.Configurations) == 0 {
		return ErrMissingConfiguration
	}
	if p.Status != "" && !p.Status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

// ApplyDefaults fills the optional groups the way the document schema
// would on insert.
func (p *Property) ApplyDefaults() {
	if p.PropertyType == "" {
		p.PropertyType = DefaultPropertyType
	}
	if p.TransactionType == "" {
		p.TransactionType = TransactionSale
	}
	if p.Status == "" {
		p.Status = StatusMidStage
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Configurations == nil {
		p.Configurations = []Configuration{}
	}
	if p.About.Highlights == nil {
		p.About.Highlights = []string{}
	}
}
