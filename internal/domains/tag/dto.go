package tag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TagReq is the request body for POST /api/tags-create and PUT /api/tags/:id.
type TagReq struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (r TagReq) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Icon,
			validation.Required.Error("icon is required"),
			validation.Length(1, 100),
		),
	)
}
