package model

type Category struct {
	BaseModel
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

// CategoryWithCount is the list-view projection: a category plus how many
// items currently reference it.
type CategoryWithCount struct {
	Category
	ItemsCount int `db:"items_count" json:"items_count"`
}

// CategoryOption is the id+name pair used to populate dropdowns.
type CategoryOption struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
