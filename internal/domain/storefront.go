package domain

// PriceRange is the inclusive base-price span of a product scope.
type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// FilterData holds the facet dimensions offered to shoppers browsing a main
// category. Facets are computed from the full main-category scope, not from
// the currently filtered result set, so sibling options stay visible.
type FilterData struct {
	SubCategories []*SubCategory `json:"subcategories"`
	Categories    []*Category    `json:"categories"`
	Brands        []*Brand       `json:"brands"`
	Colors        []string       `json:"colors"`
	PriceRange    *PriceRange    `json:"price_range,omitempty"`
}

// HomePage is the payload of the storefront landing request: the active hero
// slides and the navigation tree.
type HomePage struct {
	Heroes         []*Hero         `json:"heroes"`
	MainCategories []*MainCategory `json:"main_categories"`
}

// StorefrontPage is the full payload of a storefront browse request.
type StorefrontPage struct {
	Products     []*ProductDetail `json:"products"`
	Total        int              `json:"total"`
	Page         int              `json:"page"`
	PerPage      int              `json:"per_page"`
	MainCategory *MainCategory    `json:"main_category,omitempty"`
	BannerSlides []*BannerImage   `json:"banner_slides"`
	FilterData   *FilterData      `json:"filter_data,omitempty"`
}
