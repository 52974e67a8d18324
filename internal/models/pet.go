package models

// Pet represents an adoptable pet in the pet_data collection.
// Pets are seeded out of band; this system only ever sets AdoptedBy.
type Pet struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	PetID      int    `json:"petId" bson:"petId"`
	PetName    string `json:"petName" bson:"petName"`
	PetBreed   string `json:"petBreed" bson:"petBreed"`
	Type       string `json:"type" bson:"type"`
	Appearance string `json:"appearance" bson:"appearance,omitempty"`
	Gender     string `json:"gender" bson:"gender,omitempty"`
	Location   string `json:"location" bson:"location,omitempty"`
	Age        string `json:"age" bson:"age,omitempty"`
	Vaccinated string `json:"vaccinated" bson:"vaccinated,omitempty"`
	Desexed    string `json:"desexed" bson:"desexed,omitempty"`
	Wormed     string `json:"wormed" bson:"wormed,omitempty"`
	ImageData  string `json:"image_data" bson:"image_data,omitempty"`
	// Email of the adopting user; empty while the pet is unadopted.
	AdoptedBy string `json:"adoptedBy" bson:"adoptedBy,omitempty"`
}
