package models

// User represents a registered adopter in the user_data collection.
type User struct {
	ID    string `json:"id" bson:"_id,omitempty"`
	Fname string `json:"fname" bson:"fname"`
	Lname string `json:"lname" bson:"lname"`
	Age   int    `json:"age" bson:"age,omitempty"`
	Pno   int    `json:"pno" bson:"pno,omitempty"`
	Pin   int    `json:"pin" bson:"pin,omitempty"`
	City  string `json:"city" bson:"city,omitempty"`
	Email string `json:"email" bson:"email"`
	// Stored in plaintext and matched by equality on login. No json tag
	// so it never leaks into a response body.
	Password    string `json:"-" bson:"password"`
	AdoptedPets []int  `json:"adoptedPets" bson:"adoptedPets"`
}
