package model

import "time"

// Guest represents a guest record as stored in the `guests` table.  A guest
// is created on first sign-in through the identity provider and later fills
// in the profile fields used for check-in paperwork.
//
// Fields:
//
//	ID          – primary key identifier.
//	Email       – unique email address supplied by the identity provider.
//	FullName    – display name supplied by the identity provider.
//	Nationality – nationality name (e.g. "French").
//	CountryFlag – flag image identifier (e.g. "fr").
//	NationalID  – national identity document number, 6-12 alphanumerics.
//	CreatedAt   – timestamp of creation.
type Guest struct {
	ID          int64     // guests.id
	Email       string    // guests.email
	FullName    string    // guests.full_name
	Nationality string    // guests.nationality
	CountryFlag string    // guests.country_flag
	NationalID  string    // guests.national_id
	CreatedAt   time.Time // guests.created_at
}
