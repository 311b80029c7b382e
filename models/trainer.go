package models

import "time"

// Trainer represents a member of staff who can run sessions.
// Certifications gate which session kinds a trainer is preferred for;
// the generator treats them as a soft constraint (see services/schedule).
type Trainer struct {
	ID             string     `bson:"id" json:"id"`
	Name           string     `bson:"name" json:"name"`
	Email          string     `bson:"email" json:"email"`
	PasswordHash   string     `bson:"password_hash" json:"-"`
	Certifications []string   `bson:"certifications,omitempty" json:"certifications,omitempty"`
	TimeSlots      []TimeSlot `bson:"timeSlots,omitempty" json:"timeSlots,omitempty"`
	TokenHash      string     `bson:"token_hash,omitempty" json:"-"`
	CreatedAt      time.Time  `bson:"created_at" json:"created_at"`
}

// HasCertification reports whether the trainer holds the named certification.
func (t Trainer) HasCertification(cert string) bool {
	for _, c := range t.Certifications {
		if c == cert {
			return true
		}
	}
	return false
}
