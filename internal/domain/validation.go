package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var phoneRe = regexp.MustCompile(`^01[0-9]{9}$`)

const maxImageBytes = 5 * 1024 * 1024

// ValidateOrderInput checks the form-level rules for a full order payload.
// The access layer itself only enforces the non-empty-items precondition;
// these checks belong to callers preparing a create request.
func ValidateOrderInput(in OrderInput) error {
	if len(strings.TrimSpace(in.CustomerName)) < 4 {
		return fmt.Errorf("%w: customer name must be at least 4 characters", ErrValidation)
	}
	if !phoneRe.MatchString(in.MobileNum) {
		return fmt.Errorf("%w: phone must be 11 digits starting with 01", ErrValidation)
	}
	if len(strings.TrimSpace(in.Address)) < 10 {
		return fmt.Errorf("%w: address must be at least 10 characters", ErrValidation)
	}
	if in.Status != "" && !in.Status.Known() {
		return fmt.Errorf("%w: unknown order status %q", ErrValidation, in.Status)
	}
	if len(in.Items) == 0 {
		return fmt.Errorf("%w: order has no items", ErrValidation)
	}
	for i, it := range in.Items {
		if it.Product == "" {
			return fmt.Errorf("%w: item %d has no product", ErrValidation, i)
		}
		if it.Quantity < 1 {
			return fmt.Errorf("%w: item %d quantity must be positive", ErrValidation, i)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: item %d price must not be negative", ErrValidation, i)
		}
	}
	return nil
}

func ValidateProductInput(in ProductInput) error {
	name := strings.TrimSpace(in.Name)
	if len(name) < 3 || len(name) > 50 {
		return fmt.Errorf("%w: product name must be 3-50 characters", ErrValidation)
	}
	if in.Width <= 0 || in.Height <= 0 || in.Weight <= 0 {
		return fmt.Errorf("%w: width, height and weight must be positive", ErrValidation)
	}
	if in.Image != nil {
		return ValidateImage(in.Image)
	}
	return nil
}

func ValidateImage(img *ImageAttachment) error {
	if img == nil {
		return fmt.Errorf("%w: image is required", ErrValidation)
	}
	if !strings.HasPrefix(img.ContentType, "image/") {
		return fmt.Errorf("%w: attachment must be an image, got %q", ErrValidation, img.ContentType)
	}
	if len(img.Data) > maxImageBytes {
		return fmt.Errorf("%w: image exceeds 5MB limit", ErrValidation)
	}
	return nil
}
