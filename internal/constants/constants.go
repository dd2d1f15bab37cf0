package constants

import "time"

// Remote collection
const (
	DefaultStoreURL     = "http://localhost:3001/insurances"
	DefaultStoreTimeout = 10 * time.Second
)

// Policy numbering: HF + two-digit birth year + three-digit sequence.
const (
	PolicyNumberPrefix = "HF"
	PolicySeqWidth     = 3
)

// DateLayout is the wire and form format of every date field.
const DateLayout = "2006-01-02"

// DisplayDateLayout is used when listing records.
const DisplayDateLayout = "Jan 2, 2006"

// View timings
const (
	RedirectAfterSave = 1500 * time.Millisecond
	DeleteNoticeTTL   = 3 * time.Second
)

// User-facing messages
const (
	MsgFixValidation  = "Please fix the validation errors below."
	MsgAdded          = "Insurance added successfully!"
	MsgUpdated        = "Insurance updated successfully!"
	MsgDeleted        = "Insurance deleted successfully!"
	MsgErrAdding      = "Error adding insurance: "
	MsgErrUpdating    = "Error updating insurance: "
	MsgErrDeleting    = "Error deleting insurance: "
	MsgErrLoading     = "Error loading insurance: "
	MsgErrLoadingList = "Error loading insurances: "
)
