package models

// Actor identifies who performs an operation. It is always passed explicitly
// into usecases, never read from ambient state.
type Actor struct {
	ID   string `json:"id"`
	Role string `json:"role"`
}
