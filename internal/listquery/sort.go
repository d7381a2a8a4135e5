package listquery

// SortField is a whitelisted sort column. Only values minted here ever reach
// the SQL layer; raw request strings stop at Sanitize.
type SortField string

const (
	SortCreatedAt SortField = "created_at"
	SortName      SortField = "name"
	SortPrice     SortField = "price"
	SortStock     SortField = "stock"
	SortCategory  SortField = "category"
)

type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ItemSortFields is the whitelist for the item listing. SortCategory orders
// by the joined category name.
var ItemSortFields = []SortField{SortCreatedAt, SortName, SortPrice, SortStock, SortCategory}

// CategorySortFields is the narrower whitelist for the category listing.
var CategorySortFields = []SortField{SortCreatedAt, SortName}
