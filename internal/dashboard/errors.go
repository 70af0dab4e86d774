package dashboard

import "errors"

// Layout validation errors
var (
	ErrNoCategories      = errors.New("layout must define at least one category")
	ErrEmptyCategoryID   = errors.New("category id cannot be empty")
	ErrDuplicateCategory = errors.New("duplicate category id")
	ErrEmptyWidgetID     = errors.New("widget id cannot be empty")
	ErrDuplicateWidgetID = errors.New("duplicate widget id within category")
	ErrEmptyWidgetName   = errors.New("widget name cannot be empty")
)

// ErrUnknownIDStrategy is returned for an id_strategy other than sequence or uuid
var ErrUnknownIDStrategy = errors.New("unknown id strategy")
