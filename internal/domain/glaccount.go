package domain

// Well-known account class ids. The classification hierarchy itself is
// data; only the debit/credit roots are fixed.
const (
	AccountClassDebit  = "DEBIT"
	AccountClassCredit = "CREDIT"
)

// GlAccount is a general-ledger account. It references exactly one
// GlAccountClass.
type GlAccount struct {
	ID             string
	AccountClassID string
	Name           string
}

// GlAccountClass is a node in the account classification forest. A nil
// ParentClassID marks a root. The parent chain is expected to be acyclic;
// traversals guard against cycles anyway and report them as integrity
// faults.
type GlAccountClass struct {
	ID            string
	ParentClassID *string
	Name          string
}
