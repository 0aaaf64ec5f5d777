package domain

import (
	"errors"
	"time"
)

// DefaultCurrency is applied when a creation payload carries no currency.
const DefaultCurrency = "AED"

var ErrMissingAddress = errors.New("both from and to addresses are required")
var ErrInvalidParcel = errors.New("invalid parcel - weight, length, width, height are required")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrMissingTrackingNo = errors.New("trackingNo is required")

// Address represents a physical location attached to a shipment.
// Immutable once stored.
type Address struct {
	Name       string `json:"name,omitempty"       bson:"name,omitempty"`
	Line1      string `json:"line1"                bson:"line1"`
	Line2      string `json:"line2,omitempty"      bson:"line2,omitempty"`
	City       string `json:"city"                 bson:"city"`
	PostalCode string `json:"postalCode,omitempty" bson:"postalCode,omitempty"`
	Country    string `json:"country"              bson:"country"`
	Phone      string `json:"phone,omitempty"      bson:"phone,omitempty"`
	Email      string `json:"email,omitempty"      bson:"email,omitempty"`
}

// Parcel holds the physical measurements of a shipment. Weight is in
// kilograms, side lengths in centimeters. A stored parcel is always fully
// populated; partial parcels are rejected before persistence.
type Parcel struct {
	Weight float64 `json:"weight" bson:"weight"`
	Length float64 `json:"length" bson:"length"`
	Width  float64 `json:"width"  bson:"width"`
	Height float64 `json:"height" bson:"height"`
}

// ActivityEntry is a raw, unvalidated event attached to a shipment by an
// operator or a carrier integration. Any field may be absent; the tracking
// view resolves timestamps as time, then createdAt, then the shipment's
// createdAt, then the current time.
type ActivityEntry struct {
	Time      *time.Time `json:"time,omitempty"      bson:"time,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	Status    string     `json:"status,omitempty"    bson:"status,omitempty"`
	Location  string     `json:"location,omitempty"  bson:"location,omitempty"`
	Message   string     `json:"message,omitempty"   bson:"message,omitempty"`
	Note      string     `json:"note,omitempty"      bson:"note,omitempty"`
}

// Shipment is the core aggregate root. The identifier is assigned by the
// storage layer and doubles as the public tracking number.
//
// Parcel is the canonical measurement shape; WeightKg mirrors Parcel.Weight
// so readers of the old flat schema keep seeing consistent data.
type Shipment struct {
	ID        string          `json:"id"                 bson:"_id,omitempty"`
	From      Address         `json:"from"               bson:"from"`
	To        Address         `json:"to"                 bson:"to"`
	Parcel    Parcel          `json:"parcel"             bson:"parcel"`
	WeightKg  float64         `json:"weightKg"           bson:"weightKg"`
	Speed     string          `json:"speed,omitempty"    bson:"speed,omitempty"`
	Carrier   string          `json:"carrier,omitempty"  bson:"carrier,omitempty"`
	Service   string          `json:"service,omitempty"  bson:"service,omitempty"`
	PriceAED  float64         `json:"priceAED,omitempty" bson:"priceAED,omitempty"`
	Currency  string          `json:"currency"           bson:"currency"`
	Status    string          `json:"status,omitempty"   bson:"status,omitempty"`
	Activity  []ActivityEntry `json:"activity,omitempty" bson:"activity,omitempty"`
	CreatedAt time.Time       `json:"createdAt"          bson:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"          bson:"updatedAt"`
}
