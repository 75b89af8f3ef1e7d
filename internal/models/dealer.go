package models

// Dealer is a dealership document as stored in the "dealerships" collection.
type Dealer struct {
	ID        int    `json:"id" bson:"id"`
	City      string `json:"city" bson:"city"`
	State     string `json:"state" bson:"state"`
	Address   string `json:"address" bson:"address"`
	Zip       string `json:"zip" bson:"zip"`
	Lat       string `json:"lat" bson:"lat"`
	Long      string `json:"long" bson:"long"`
	ShortName string `json:"short_name,omitempty" bson:"short_name,omitempty"`
	FullName  string `json:"full_name" bson:"full_name"`
}

// Vehicle is an inventory record in the "cars" collection.
type Vehicle struct {
	DealerID int    `json:"dealer_id" bson:"dealer_id"`
	Make     string `json:"make" bson:"make"`
	Model    string `json:"model" bson:"model"`
	BodyType string `json:"bodyType" bson:"bodyType"`
	Year     int    `json:"year" bson:"year"`
	Mileage  int    `json:"mileage" bson:"mileage"`
}
