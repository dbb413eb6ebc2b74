package catalog

// CategoryInput captures the category create/edit form.
type CategoryInput struct {
	Name         string `json:"name" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	Color        string `json:"color"`
}

// PositionInput captures the catalog product create/edit form. Price is the
// default unit price copied into order lines, overridable per line.
type PositionInput struct {
	Brand         string  `json:"brand"`
	Name          string  `json:"name" validate:"required"`
	CategoryID    int64   `json:"category_id" validate:"required,gt=0"`
	Price         string  `json:"price"`
	Unit          string  `json:"unit"`
	StockQuantity float64 `json:"stock_quantity"`
	ExternalID    *string `json:"external_id"`
}

// ImportPositionInput is one row of a bulk price-list import. Categories are
// referenced by name and created on the fly; rows carrying an external id
// update the matching position instead of creating a duplicate.
type ImportPositionInput struct {
	Brand         string  `json:"brand"`
	Name          string  `json:"name" validate:"required"`
	CategoryName  string  `json:"category_name" validate:"required"`
	Price         string  `json:"price"`
	Unit          string  `json:"unit"`
	StockQuantity float64 `json:"stock_quantity"`
	ExternalID    *string `json:"external_id"`
}

// ImportPositionsSummary reports what a bulk import did.
type ImportPositionsSummary struct {
	Created           int `json:"created"`
	Updated           int `json:"updated"`
	CategoriesCreated int `json:"categories_created"`
}

// PositionFilters describe the inputs supported by the positions list.
type PositionFilters struct {
	CategoryID *int64
	Query      string
}

// WorkCategoryInput captures the labor category form.
type WorkCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

// WorkPositionInput captures the labor position form.
type WorkPositionInput struct {
	CategoryID int64  `json:"category_id" validate:"required,gt=0"`
	Name       string `json:"name" validate:"required"`
	Price      string `json:"price"`
	Unit       string `json:"unit"`
}

// CargoStatusInput captures the cargo status form.
type CargoStatusInput struct {
	Name         string `json:"name" validate:"required"`
	DisplayOrder int    `json:"display_order"`
	Color        string `json:"color"`
	TextColor    string `json:"text_color"`
}
