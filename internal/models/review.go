package models

// Sentiment labels assigned by the analyzer.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

type Review struct {
	ID           string `json:"id" bson:"id"`
	Name         string `json:"name" bson:"name"`
	Dealership   int    `json:"dealership" bson:"dealership"`
	Review       string `json:"review" bson:"review"`
	Purchase     bool   `json:"purchase" bson:"purchase"`
	PurchaseDate string `json:"purchase_date" bson:"purchase_date"`
	CarMake      string `json:"car_make" bson:"car_make"`
	CarModel     string `json:"car_model" bson:"car_model"`
	CarYear      int    `json:"car_year" bson:"car_year"`
	Sentiment    string `json:"sentiment,omitempty" bson:"sentiment,omitempty"`
}

// NormalizeSentiment maps anything that is not a known label to neutral.
func NormalizeSentiment(label string) string {
	switch label {
	case SentimentPositive, SentimentNegative:
		return label
	default:
		return SentimentNeutral
	}
}
