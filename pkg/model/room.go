package model

type Offer string

const (
	OfferYes Offer = "YES"
	OfferNo  Offer = "NO"
)

type Room struct {
	RoomNumber   int      `json:"roomNumber" bson:"roomNumber" validate:"required,min=1"`
	RoomType     string   `json:"roomType" bson:"roomType" validate:"required,max=50"`
	BedType      string   `json:"bedType" bson:"bedType" validate:"omitempty,max=50"`
	RoomFloor    string   `json:"roomFloor" bson:"roomFloor" validate:"omitempty,max=20"`
	Photos       []string `json:"photos" bson:"photos" validate:"omitempty,dive,url"`
	Description  string   `json:"description" bson:"description" validate:"omitempty,max=2000"`
	Offer        Offer    `json:"offer" bson:"offer" validate:"omitempty,oneof=YES NO"`
	Price        float64  `json:"price" bson:"price" validate:"gte=0"`
	Discount     float64  `json:"discount" bson:"discount" validate:"gte=0,lte=100"`
	Cancellation string   `json:"cancellation" bson:"cancellation" validate:"omitempty,max=200"`
	Amenities    []string `json:"amenities" bson:"amenities" validate:"omitempty,dive,required,max=100"`
}

// RoomUpdate is a partial room. The room number is the identity key and cannot change.
type RoomUpdate struct {
	RoomType     *string   `json:"roomType,omitempty"`
	BedType      *string   `json:"bedType,omitempty"`
	RoomFloor    *string   `json:"roomFloor,omitempty"`
	Photos       *[]string `json:"photos,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Offer        *Offer    `json:"offer,omitempty"`
	Price        *float64  `json:"price,omitempty"`
	Discount     *float64  `json:"discount,omitempty"`
	Cancellation *string   `json:"cancellation,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
}

func (u *RoomUpdate) Apply(r *Room) {
	if u.RoomType != nil {
		r.RoomType = *u.RoomType
	}
	if u.BedType != nil {
		r.BedType = *u.BedType
	}
	if u.RoomFloor != nil {
		r.RoomFloor = *u.RoomFloor
	}
	if u.Photos != nil {
		r.Photos = *u.Photos
	}
	if u.Description != nil {
		r.Description = *u.Description
	}
	if u.Offer != nil {
		r.Offer = *u.Offer
	}
	if u.Price != nil {
		r.Price = *u.Price
	}
	if u.Discount != nil {
		r.Discount = *u.Discount
	}
	if u.Cancellation != nil {
		r.Cancellation = *u.Cancellation
	}
	if u.Amenities != nil {
		r.Amenities = *u.Amenities
	}
}
