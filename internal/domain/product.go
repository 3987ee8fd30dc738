package domain

import "time"

type Product struct {
	ID        string    `json:"_id"`
	Name      string    `json:"productName"`
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	Images    []string  `json:"images,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ProductInput is the payload for creating or updating a product. It is
// submitted as a multipart form, with Image (when set) attached as the
// single binary part.
type ProductInput struct {
	Name   string
	Width  float64
	Height float64
	Weight float64
	Image  *ImageAttachment
}

type ImageAttachment struct {
	Filename    string
	ContentType string
	Data        []byte
}
