package errors

const (
	ValidationErrorCode         = 200_001
	ItemNotFoundErrorCode       = 200_002
	CurrentPageInvalidErrorCode = 200_003
	PageSizeInvalidErrorCode    = 200_004

	StorageUnavailableErrorCode = 300_001
)

// ValidationError indicates the item payload misses a field or carries a bad value
var ValidationError = new(ValidationErrorCode, "ValidationError", "invalid item: %s")

// ItemNotFoundError indicates user gives an item ID that was never created
var ItemNotFoundError = new(ItemNotFoundErrorCode, "ItemNotFound", "item with ID %v does not exist")

// CurrentPageInvalidError indicates user gives invalid current page when searching items
var CurrentPageInvalidError = new(CurrentPageInvalidErrorCode, "CurrentPageInvalid", "page can be only positive integer")

// PageSizeInvalidError indicates user gives invalid page size when searching items
var PageSizeInvalidError = new(PageSizeInvalidErrorCode, "PageSizeInvalid", "limit can be only positive integer")

// StorageUnavailableError indicates the backing item file is missing or corrupt
var StorageUnavailableError = new(StorageUnavailableErrorCode, "StorageUnavailable", "item storage unavailable: %s")
