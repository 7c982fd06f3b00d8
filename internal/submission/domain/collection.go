package domain

// Collection describes one submission table for the generic insert path.
// RequiredFields and Columns are JSON field names, in the order they are checked
// and stored.
type Collection struct {
	Table          string
	Context        string // log label and response id prefix, e.g. "testDrive" -> "testDriveId"
	SuccessMessage string
	RequiredFields []string
	Columns        []string
}

// IDKey is the response key carrying the new row id.
func (c Collection) IDKey() string {
	return c.Context + "Id"
}

var TestDrives = Collection{
	Table:          "test_drives",
	Context:        "testDrive",
	SuccessMessage: "Test drive scheduled successfully",
	RequiredFields: []string{"carModel", "name", "email", "phone", "preferredDate", "preferredTime"},
	Columns:        []string{"carModel", "name", "email", "phone", "preferredDate", "preferredTime"},
}

var Messages = Collection{
	Table:          "messages",
	Context:        "message",
	SuccessMessage: "Message sent successfully",
	RequiredFields: []string{"name", "email", "phone", "interest", "message"},
	Columns:        []string{"name", "email", "phone", "interest", "message"},
}

var FinancingRequests = Collection{
	Table:          "financing_requests",
	Context:        "financingRequest",
	SuccessMessage: "Financing request submitted successfully. A specialist will contact you soon.",
	RequiredFields: []string{"name", "email", "phone", "amount", "term"},
	Columns:        []string{"name", "email", "phone", "amount", "term", "message"},
}

// Receipt acknowledges a stored submission.
type Receipt struct {
	Message string
	IDKey   string
	ID      uint
}
