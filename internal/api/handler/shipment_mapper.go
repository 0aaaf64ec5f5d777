package handler

import (
	"github.com/parceldesk/shipment-api/internal/core/domain"
	"github.com/parceldesk/shipment-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateInput(req createShipmentRequest) ports.CreateShipmentInput {
	in := ports.CreateShipmentInput{
		WeightKg: req.WeightKg,
		Speed:    req.Speed,
		Carrier:  req.Carrier,
		Service:  req.Service,
		PriceAED: req.PriceAED,
		Currency: req.Currency,
	}
	if req.From != nil {
		from := toAddressInput(*req.From)
		in.From = &from
	}
	if req.To != nil {
		to := toAddressInput(*req.To)
		in.To = &to
	}
	if req.Parcel != nil {
		in.Parcel = &ports.ParcelInput{
			Weight: req.Parcel.Weight,
			Length: req.Parcel.Length,
			Width:  req.Parcel.Width,
			Height: req.Parcel.Height,
		}
	}
	if req.Dims != nil {
		in.Dims = &ports.DimsInput{
			Length: req.Dims.Length,
			Width:  req.Dims.Width,
			Height: req.Dims.Height,
			L:      req.Dims.L,
			W:      req.Dims.W,
			H:      req.Dims.H,
		}
	}
	return in
}

func toAddressInput(a addressRequest) ports.AddressInput {
	return ports.AddressInput{
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

// --- Stored record → HTTP response ---

func toListResponse(shipments []*domain.Shipment) listShipmentsResponse {
	items := make([]shipmentResponse, len(shipments))
	for i, s := range shipments {
		items[i] = toShipmentResponse(s)
	}
	return listShipmentsResponse{OK: true, Shipments: items}
}

func toShipmentResponse(s *domain.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:   s.ID,
		From: toAddressResponse(s.From),
		To:   toAddressResponse(s.To),
		Parcel: parcelResponse{
			Weight: s.Parcel.Weight,
			Length: s.Parcel.Length,
			Width:  s.Parcel.Width,
			Height: s.Parcel.Height,
		},
		WeightKg:  s.WeightKg,
		Speed:     s.Speed,
		Carrier:   s.Carrier,
		Service:   s.Service,
		PriceAED:  s.PriceAED,
		Currency:  s.Currency,
		Status:    s.Status,
		CreatedAt: s.CreatedAt.UTC(),
		UpdatedAt: s.UpdatedAt.UTC(),
	}
}

func toAddressResponse(a domain.Address) addressResponse {
	return addressResponse{
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
