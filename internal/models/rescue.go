package models

// RescueRequest represents a report of a pet needing rescue, stored in
// the rescue_data collection. Requests are immutable once submitted and
// have no relation to users or pets.
type RescueRequest struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	PetType    string `json:"petType" bson:"petType"`
	ConditionR string `json:"conditionR" bson:"conditionR"`
	LocationR  string `json:"locationR" bson:"locationR"`
	PinR       string `json:"pinR" bson:"pinR"`
	PhoneR     string `json:"phoneR" bson:"phoneR"`
}
