package dto

import "inventaris/internal/model"

// ListPage is everything the item listing needs in one round trip: the page
// of items plus the two category dropdown sources. CategoryNames feeds the
// filter dropdown (only categories that actually have items);
// CategoryOptions feeds the create/edit form (every category). They are
// deliberately separate queries and must stay separate.
type ListPage struct {
	Items           []model.Item           `json:"items"`
	Total           int                    `json:"total"`
	CategoryNames   []string               `json:"category_names"`
	CategoryOptions []model.CategoryOption `json:"category_options"`
}
