package handler

import "time"

// errorResponse is the standard failure envelope returned on all 4xx/5xx
// responses: {"ok": false, "error": "<message>"}.
type errorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// --- Request types ---

// addressRequest mirrors the public address shape. Only line1, city, and
// country are mandatory; everything else is optional.
type addressRequest struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"      validate:"required"`
	Line2      string `json:"line2"`
	City       string `json:"city"       validate:"required"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"    validate:"required"`
	Phone      string `json:"phone"`
	Email      string `json:"email"      validate:"omitempty,email"`
}

// parcelRequest is the current nested parcel shape.
type parcelRequest struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// dimsRequest is the legacy dimension shape; each side may arrive under
// the modern name or the single-letter one.
type dimsRequest struct {
	L      float64 `json:"L"`
	W      float64 `json:"W"`
	H      float64 `json:"H"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// createShipmentRequest accepts a booking in either historical shape.
// Presence of from/to is checked by the service so the error taxonomy
// stays in one place.
type createShipmentRequest struct {
	From     *addressRequest `json:"from"`
	To       *addressRequest `json:"to"`
	Parcel   *parcelRequest  `json:"parcel"`
	WeightKg float64         `json:"weightKg"`
	Dims     *dimsRequest    `json:"dims"`
	Speed    string          `json:"speed"`
	Carrier  string          `json:"carrier"`
	Service  string          `json:"service"`
	PriceAED float64         `json:"priceAED"`
	Currency string          `json:"currency"`
}

// --- Response types ---
// Transport-owned so the JSON contract is not coupled to internal types.

type createShipmentResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

type addressResponse struct {
	Name       string `json:"name,omitempty"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
}

type parcelResponse struct {
	Weight float64 `json:"weight"`
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// shipmentResponse renders a stored shipment with both the canonical
// parcel object and the legacy weightKg mirror.
type shipmentResponse struct {
	ID        string          `json:"id"`
	From      addressResponse `json:"from"`
	To        addressResponse `json:"to"`
	Parcel    parcelResponse  `json:"parcel"`
	WeightKg  float64         `json:"weightKg"`
	Speed     string          `json:"speed,omitempty"`
	Carrier   string          `json:"carrier,omitempty"`
	Service   string          `json:"service,omitempty"`
	PriceAED  float64         `json:"priceAED,omitempty"`
	Currency  string          `json:"currency"`
	Status    string          `json:"status,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type listShipmentsResponse struct {
	OK        bool               `json:"ok"`
	Shipments []shipmentResponse `json:"shipments"`
}
