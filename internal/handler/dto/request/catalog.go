package request

import (
	"decor-rental/internal/domain/catalog"
	"decor-rental/internal/domain/message"
	"decor-rental/internal/domain/testimonial"

	"github.com/jinzhu/copier"
)

type PackageRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description"`
	Price       float64  `json:"price" binding:"gte=0"`
	Images      []string `json:"images,omitempty"`
	IsFeatured  bool     `json:"isFeatured"`
}

func (r *PackageRequest) ToDomain() (catalog.Package, error) {
	var p catalog.Package
	if err := copier.CopyWithOption(&p, r, copier.Option{DeepCopy: true}); err != nil {
		return catalog.Package{}, err
	}
	return p, nil
}

type MessageRequest struct {
	Name    string  `json:"name" binding:"required,max=200"`
	Email   string  `json:"email" binding:"required,email"`
	Phone   *string `json:"phone,omitempty"`
	Subject string  `json:"subject" binding:"max=300"`
	Message string  `json:"message" binding:"required,max=5000"`
}

func (r *MessageRequest) ToDomain() (message.Message, error) {
	var m message.Message
	if err := copier.Copy(&m, r); err != nil {
		return message.Message{}, err
	}
	return m, nil
}

type TestimonialRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Role    string `json:"role" binding:"max=200"`
	Content string `json:"content" binding:"required,max=2000"`
}

func (r *TestimonialRequest) ToDomain() (testimonial.Testimonial, error) {
	var t testimonial.Testimonial
	if err := copier.Copy(&t, r); err != nil {
		return testimonial.Testimonial{}, err
	}
	return t, nil
}
