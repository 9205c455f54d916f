package validators

// Per-entity field schemas. Presence modes differ between entities: most
// treat falsy values as missing, a few only reject absent keys (AllowZero).
// That split mirrors the documented behavior and is deliberate; a price of 0
// is valid for a Room but a rating of 0 still reads as missing on a Review.

func limit(v float64) *float64 { return &v }

var HotelSchema = &Schema{Fields: []Field{
	{Name: "name", Kind: String, Required: true},
	{Name: "location", Kind: String, Required: true},
	{Name: "rating", Kind: Number, Required: true, AllowZero: true, Min: limit(0), Max: limit(5)},
	{Name: "description", Kind: String, Required: true},
}}

var RoomSchema = &Schema{Fields: []Field{
	{Name: "hotel_id", Kind: Number, Required: true, AllowZero: true, Min: limit(0), ExclusiveMin: true, Message: "hotel_id must be a positive number"},
	{Name: "roomNumber", Kind: Number, Required: true, AllowZero: true, Min: limit(0), ExclusiveMin: true, Message: "roomNumber must be a positive number"},
	{Name: "room_type", Kind: String, Required: true, AllowZero: true},
	{Name: "price", Kind: Number, Required: true, AllowZero: true, Min: limit(0), Message: "price must be a positive number"},
	{Name: "availability", Kind: Bool, Required: true, AllowZero: true},
}}

var UserSchema = &Schema{Fields: []Field{
	{Name: "name", Kind: String, Required: true},
	{Name: "email", Kind: String, Required: true},
	{Name: "password", Kind: String, Required: true},
	{Name: "phone", Kind: String, Required: true},
}}

var ReservationSchema = &Schema{Fields: []Field{
	{Name: "user_id", Kind: Number, Required: true, AllowZero: true},
	{Name: "room_id", Kind: Number, Required: true, AllowZero: true},
	{Name: "check_in_date", Kind: Date, Required: true, AllowZero: true, Message: "Invalid date format. Should be in YYYY-MM-DD format."},
	{Name: "check_out_date", Kind: Date, Required: true, AllowZero: true, Message: "Invalid date format. Should be in YYYY-MM-DD format."},
	{Name: "status", Kind: String, Required: true, AllowZero: true},
}}

var ReviewSchema = &Schema{Fields: []Field{
	{Name: "user_id", Kind: Number, Required: true, Immutable: true},
	{Name: "hotel_id", Kind: Number, Required: true, Immutable: true},
	{Name: "rating", Kind: Number, Required: true, Min: limit(0), Max: limit(5), Message: "rating must be between 0 and 5"},
	{Name: "comment", Kind: String, Required: true},
	{Name: "review_date", Kind: Date, Required: true},
}}

var ServiceSchema = &Schema{Fields: []Field{
	{Name: "hotel_id", Kind: Number, Required: true},
	{Name: "service_type", Kind: String, Required: true},
	{Name: "price", Kind: Number, Required: true},
}}

var ServiceReservationSchema = &Schema{Fields: []Field{
	{Name: "reservation_id", Kind: Number, Required: true},
	{Name: "service_id", Kind: Number, Required: true},
	{Name: "quantity", Kind: Number, Required: true, Min: limit(0), ExclusiveMin: true, Message: "quantity must be greater than zero"},
	{Name: "price", Kind: Number, Required: true, Min: limit(0), ExclusiveMin: true, Message: "price must be greater than zero"},
}}

var PromotionSchema = &Schema{Fields: []Field{
	{Name: "hotel_id", Kind: Number, Required: true, Immutable: true},
	{Name: "promotion_type", Kind: String, Required: true},
	{Name: "discount_percentage", Kind: Number, Required: true, Min: limit(0), ExclusiveMin: true, Max: limit(100), Message: "discount_percentage must be between 0 and 100"},
	{Name: "start_date", Kind: Date, Required: true},
	{Name: "end_date", Kind: Date, Required: true},
}}

var PaymentRecordSchema = &Schema{Fields: []Field{
	{Name: "reservation_id", Kind: Number, Required: true, AllowZero: true, Immutable: true},
	{Name: "amount", Kind: Number, Required: true, AllowZero: true},
	{Name: "payment_date", Kind: Date, Required: true, AllowZero: true},
	{Name: "payment_method", Kind: String, Required: true, AllowZero: true},
}}

var RoomAmenitySchema = &Schema{Fields: []Field{
	{Name: "room_id", Kind: Number, Required: true, Immutable: true},
	{Name: "amenity_type", Kind: String, Required: true},
}}
