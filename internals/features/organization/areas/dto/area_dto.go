package dto

import "strings"

type AreaRequest struct {
	AreaName string `json:"area_name" validate:"required,min=2,max=100"`
}

func (r *AreaRequest) Normalize() {
	r.AreaName = strings.TrimSpace(r.AreaName)
}
