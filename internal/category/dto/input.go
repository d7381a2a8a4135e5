package dto

type CreateCategoryInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UpdateCategoryInput struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
