package session

import "sync"

// DefaultCredits is the starting balance for a new session.
const DefaultCredits = 10

// CreditLedger tracks a non-negative credit balance. All mutation goes
// through Deduct and Add, which preserve the invariant that the balance
// never goes below zero.
type CreditLedger struct {
	mu      sync.Mutex
	balance int
}

// NewCreditLedger creates a ledger with the given starting balance.
// A negative initial balance is clamped to zero.
func NewCreditLedger(initial int) *CreditLedger {
	if initial < 0 {
		initial = 0
	}
	return &CreditLedger{balance: initial}
}

// Balance returns the current balance.
func (l *CreditLedger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// HasSufficientCredits returns true if at least one credit remains.
func (l *CreditLedger) HasSufficientCredits() bool {
	return l.Balance() > 0
}

// Deduct lowers the balance by n, clamping at zero. It never errors;
// checking affordability before spending is the caller's responsibility.
// Non-positive n is a no-op.
func (l *CreditLedger) Deduct(n int) {
	if n <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance -= n
	if l.balance < 0 {
		l.balance = 0
	}
}

// Add raises the balance by n unconditionally. Non-positive n is a no-op.
func (l *CreditLedger) Add(n int) {
	if n <= 0 {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance += n
}

// CreditPack describes a purchasable bundle of credits.
type CreditPack struct {
	ID          string
	Name        string
	Credits     int
	Price       float64 // USD
	Popular     bool
	Description string
}

// CreditPacks returns the purchasable credit bundles.
func CreditPacks() []CreditPack {
	return []CreditPack{
		{ID: "starter", Name: "Starter Pack", Credits: 50, Price: 5, Description: "Perfect for trying out the service"},
		{ID: "popular", Name: "Popular Pack", Credits: 150, Price: 12, Popular: true, Description: "Most popular choice for regular users"},
		{ID: "pro", Name: "Pro Pack", Credits: 500, Price: 35, Description: "Best value for power users"},
		{ID: "unlimited", Name: "Unlimited", Credits: 1000, Price: 60, Description: "Maximum value for heavy users"},
	}
}

// Purchase credits the ledger with the pack's credits. Payment processing
// is out of scope; callers are expected to have settled payment elsewhere.
func (l *CreditLedger) Purchase(pack CreditPack) {
	l.Add(pack.Credits)
}
