package dto

import "strings"

type CategoryRequest struct {
	CategoryName string `json:"category_name" validate:"required,min=2,max=100"`
}

func (r *CategoryRequest) Normalize() {
	r.CategoryName = strings.TrimSpace(r.CategoryName)
}
