package module

type UpdateVisibilityDTO struct {
	IsPublic bool `json:"is_public"`
}
