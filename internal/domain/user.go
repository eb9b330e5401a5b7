package domain

type UserID int64

type UserProfile struct {
	ID            UserID  `json:"id"`
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	MonthlyIncome float64 `json:"monthly_income"`
	MonthlyBudget float64 `json:"monthly_budget"`
	Savings       float64 `json:"savings"`
	EmergencyFund float64 `json:"emergency_fund"`
}

type Registration struct {
	FullName      string  `json:"full_name"`
	Email         string  `json:"email"`
	Password      string  `json:"password"`
	MonthlyIncome float64 `json:"monthly_income"`
	MonthlyBudget float64 `json:"monthly_budget"`
	Savings       float64 `json:"savings"`
	EmergencyFund float64 `json:"emergency_fund"`
}

// AuthGrant is the auth endpoint's success payload. The backend signs the
// caller in on both login and registration, so both return the same shape.
type AuthGrant struct {
	AccessToken string      `json:"access_token"`
	User        UserProfile `json:"user"`
}
