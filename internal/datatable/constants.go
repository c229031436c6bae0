package datatable

// Class names making up the table's structure contract
const (
	ClassRoot              = "data-table"
	ClassHeaderRow         = "data-table__header-row"
	ClassHeaderCell        = "data-table__header-cell"
	ClassHeaderRowCheckbox = "data-table__header-row-checkbox"
	ClassContent           = "data-table__content"
	ClassRow               = "data-table__row"
	ClassRowSelected       = "data-table__row--selected"
	ClassCell              = "data-table__cell"
	ClassCheckboxCell      = "data-table__cell--checkbox"
	ClassRowCheckbox       = "data-table__row-checkbox"
)

// Attribute names
const (
	AttrRowID        = "data-row-id"
	AttrAriaSelected = "aria-selected"
)
