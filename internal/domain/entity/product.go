package entity

import (
	"math"
	"time"
)

// Product is a catalog entry. Orders snapshot the price at commit time, so
// later catalog edits never rewrite order history.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Reviews     []Review `json:"reviews"`
}

// Review is an append-only rating attached to a product or to the store itself.
type Review struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// AverageRating aggregates reviews to one decimal place. An empty list rates 0.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}

	return math.Round(float64(sum)/float64(len(reviews))*10) / 10
}
