package models

// Each struct maps to a MongoDB collection named after the lowercased
// entity name with no separators (BeforeAfter -> "beforeafter").
const (
	SurgeryCollection       = "surgery"
	TestimonialCollection   = "testimonial"
	BeforeAfterCollection   = "beforeafter"
	ContactCollection       = "contactmessage"
	DoctorProfileCollection = "doctorprofile"
)

// DefaultRating is applied when a testimonial document or payload omits the rating.
const DefaultRating = 5

// Surgery is one procedure offered on the site, type is "bariatric" or "general".
type Surgery struct {
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

// Testimonial is a patient review submitted through the site. Rating is a
// pointer so an omitted field (defaulted to 5) can be told apart from an
// explicit out-of-range zero, which is rejected.
type Testimonial struct {
	Name      string `json:"name" bson:"name" validate:"required"`
	Procedure string `json:"procedure,omitempty" bson:"procedure,omitempty"`
	Rating    *int   `json:"rating" bson:"rating" validate:"required,min=1,max=5"`
	Text      string `json:"text" bson:"text" validate:"required"`
	City      string `json:"city,omitempty" bson:"city,omitempty"`
}

// BeforeAfter is a weight-loss case record, read-only through the API.
type BeforeAfter struct {
	PatientCode    string  `json:"patient_code,omitempty" bson:"patient_code,omitempty"`
	Procedure      string  `json:"procedure,omitempty" bson:"procedure,omitempty"`
	WeightBefore   float64 `json:"weight_before,omitempty" bson:"weight_before,omitempty" validate:"gte=0"`
	WeightAfter    float64 `json:"weight_after,omitempty" bson:"weight_after,omitempty" validate:"gte=0"`
	Description    string  `json:"description,omitempty" bson:"description,omitempty"`
	ImageBeforeURL string  `json:"image_before_url,omitempty" bson:"image_before_url,omitempty"`
	ImageAfterURL  string  `json:"image_after_url,omitempty" bson:"image_after_url,omitempty"`
}

// ContactMessage is a contact-form submission. Write-only: nothing reads it
// back through the API.
type ContactMessage struct {
	Name    string `json:"name" bson:"name" validate:"required"`
	Email   string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone   string `json:"phone,omitempty" bson:"phone,omitempty"`
	Message string `json:"message" bson:"message" validate:"required"`
}

// DoctorProfile is the informational profile shown on the about page.
type DoctorProfile struct {
	FullName        string `json:"full_name" bson:"full_name" validate:"required"`
	Title           string `json:"title" bson:"title" validate:"required"`
	Bio             string `json:"bio" bson:"bio" validate:"required"`
	ExperienceYears int    `json:"experience_years" bson:"experience_years" validate:"gte=0"`
	ClinicName      string `json:"clinic_name" bson:"clinic_name" validate:"required"`
	ClinicAddress   string `json:"clinic_address" bson:"clinic_address" validate:"required"`
	Phone           string `json:"phone,omitempty" bson:"phone,omitempty"`
	Email           string `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
}

// BMIQuery is the BMI calculator input. Not persisted.
type BMIQuery struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
}

// BMIResult is the BMI calculator output. Not persisted.
type BMIResult struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
}
