package domain

// CustomerRefKind discriminates the shapes a customer reference can take.
// Older records predate customer ids and carry a denormalized display name;
// newer records point at a service case or a customer id directly.
type CustomerRefKind int

// Reference shapes, in the priority order resolution walks them.
const (
	// RefAbsent means the record carries no customer linkage at all.
	RefAbsent CustomerRefKind = iota
	// RefByCase links through a parent service case.
	RefByCase
	// RefByCustomer links a customer id directly.
	RefByCustomer
	// RefByName carries a legacy free-text customer name.
	RefByName
)

// CustomerRef is a tagged customer reference embedded in service log
// entries. Its fields flatten into the enclosing record's JSON so the wire
// shape matches historical data: at most one of ServiceCaseID, CustomerID,
// and LegacyName is expected, but records written across the id migration
// may populate more than one, and resolution honors the kind order.
type CustomerRef struct {
	ServiceCaseID string `json:"serviceCaseId,omitempty"`
	CustomerID    string `json:"customerId,omitempty"`
	LegacyName    string `json:"customer,omitempty"`
}

// Kind returns the highest-priority shape the reference carries.
func (r CustomerRef) Kind() CustomerRefKind {
	switch {
	case r.ServiceCaseID != "":
		return RefByCase
	case r.CustomerID != "":
		return RefByCustomer
	case r.LegacyName != "":
		return RefByName
	default:
		return RefAbsent
	}
}

// RefCase builds a reference through a service case.
func RefCase(caseID string) CustomerRef { return CustomerRef{ServiceCaseID: caseID} }

// RefCustomer builds a direct customer id reference.
func RefCustomer(customerID string) CustomerRef { return CustomerRef{CustomerID: customerID} }

// RefLegacy builds a legacy display-name reference.
func RefLegacy(name string) CustomerRef { return CustomerRef{LegacyName: name} }
