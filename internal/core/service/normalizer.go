package service

import (
	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// normalizeShipment reconciles the two historical creation shapes into a
// single canonical record satisfying both persisted schemas.
//
// Shape resolution: when the nested parcel is fully populated it is used
// exclusively; otherwise the legacy weightKg+dims pair is used exclusively.
// The two shapes are never merged. A zero measurement counts as missing —
// this mirrors the stored contract and is covered by tests, so keep it.
func normalizeShipment(in ports.CreateShipmentInput) (*domain.Shipment, error) {
	if in.From == nil || in.To == nil {
		return nil, domain.ErrMissingAddress
	}

	var weight, length, width, height float64
	switch {
	case in.Parcel != nil && in.Parcel.Weight != 0 && in.Parcel.Length != 0 &&
		in.Parcel.Width != 0 && in.Parcel.Height != 0:
		weight = in.Parcel.Weight
		length = in.Parcel.Length
		width = in.Parcel.Width
		height = in.Parcel.Height
	case in.WeightKg != 0 && in.Dims != nil:
		weight = in.WeightKg
		length = sideLength(in.Dims.Length, in.Dims.L)
		width = sideLength(in.Dims.Width, in.Dims.W)
		height = sideLength(in.Dims.Height, in.Dims.H)
	}

	if weight == 0 || length == 0 || width == 0 || height == 0 {
		return nil, domain.ErrInvalidParcel
	}

	currency := in.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return &domain.Shipment{
		From:   toAddress(*in.From),
		To:     toAddress(*in.To),
		Parcel: domain.Parcel{Weight: weight, Length: length, Width: width, Height: height},
		// Legacy flat mirror: always equal to the resolved weight.
		WeightKg: weight,
		Speed:    in.Speed,
		Carrier:  in.Carrier,
		Service:  in.Service,
		PriceAED: in.PriceAED,
		Currency: currency,
	}, nil
}

// sideLength resolves one legacy dimension, preferring the modern field
// name over the single-letter one.
func sideLength(modern, legacy float64) float64 {
	if modern != 0 {
		return modern
	}
	return legacy
}

func toAddress(a ports.AddressInput) domain.Address {
	return domain.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
		Email:      a.Email,
	}
}
