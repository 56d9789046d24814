package model

// ScrapType is one price point inside a scrap category (e.g. "Newspaper").
type ScrapType struct {
	TypeID     int     `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	IsSelected bool    `json:"isSelected"`
	Price      string  `json:"price" validate:"required"`
	OnlyPrice  float64 `json:"OnlyPrice" validate:"required"`
	Slug       string  `json:"slug" validate:"required"`
}

// ScrapCategory is one entry of the scrap catalogue shown to customers.
type ScrapCategory struct {
	ID         uint64      `json:"-" db:"id"`
	CategoryID int         `json:"id" db:"category_id" validate:"required"`
	Name       string      `json:"name" db:"name" validate:"required"`
	IsSelected bool        `json:"isSelected" db:"is_selected"`
	Types      []ScrapType `json:"types" validate:"dive"`
}
