package features

import "sync"

// Group labels in display order
const (
	GroupIdentity     = "Identity"
	GroupDemographics = "Demographics"
	GroupPlatform     = "Platform Activity"
	GroupPerformance  = "Performance"
	GroupFinancial    = "Financial"
	GroupEngagement   = "Engagement"
)

// PartnerID is the identifier column carried through for correlation
const PartnerID = "partner_id"

var defaultRegistry = sync.OnceValue(func() *Registry { return New(Catalog()...) })

// Default returns the process wide catalog registry
func Default() *Registry { return defaultRegistry() }

func num(name, group string, lo, hi float64, prec int, def float64, desc string) Definition {
	return Definition{
		Name:        name,
		Type:        Numeric,
		Group:       group,
		Description: desc,
		Bounds:      &Bounds{Min: lo, Max: hi, Precision: prec},
		Default:     def,
	}
}

func cat(name, group, desc string, options ...string) Definition {
	return Definition{
		Name:        name,
		Type:        Categorical,
		Group:       group,
		Description: desc,
		Options:     options,
		Default:     options[0],
	}
}

// Catalog returns the gig economy partner feature definitions in registry order
func Catalog() []Definition {
	return []Definition{
		{Name: PartnerID, Type: Identifier, Group: GroupIdentity, Description: "Partner identifier, used for correlation only"},

		num("age", GroupDemographics, 18, 65, 0, 35, "Partner age in years"),
		cat("gender", GroupDemographics, "Self reported gender", "Male", "Female", "Other"),
		cat("location", GroupDemographics, "Operating area type", "Urban", "Suburban", "Rural"),
		cat("education_level", GroupDemographics, "Highest completed education", "High School", "Diploma", "Bachelor", "Master", "PhD"),
		cat("marital_status", GroupDemographics, "Marital status", "Single", "Married", "Divorced", "Widowed"),
		num("dependents", GroupDemographics, 0, 5, 0, 1, "Number of financial dependents"),

		cat("partner_type", GroupPlatform, "Kind of platform partner", "Driver", "Merchant", "Courier"),
		num("months_with_platform", GroupPlatform, 1, 60, 0, 18, "Tenure on the platform in months"),
		num("days_active", GroupPlatform, 1, 1000, 0, 300, "Days with at least one completed job"),
		num("vehicle_age", GroupPlatform, 0, 15, 0, 5, "Vehicle age in years"),
		num("vehicle_maintenance_score", GroupPlatform, 0, 1, 2, 0.7, "Vehicle maintenance score from inspections"),
		num("total_trips", GroupPlatform, 0, 5000, 0, 1200, "Lifetime completed trips"),
		num("total_orders", GroupPlatform, 0, 1000, 0, 250, "Lifetime completed orders"),

		num("avg_rating", GroupPerformance, 1, 5, 1, 4.5, "Average customer rating"),
		num("avg_speed", GroupPerformance, 20, 70, 1, 40, "Average speed in km/h"),
		num("hard_braking_incidents", GroupPerformance, 0, 20, 0, 3, "Hard braking incidents in the last 90 days"),
		num("late_arrivals", GroupPerformance, 0, 10, 0, 2, "Late arrivals in the last 30 days"),
		num("cancellation_rate", GroupPerformance, 0, 1, 2, 0.05, "Share of accepted jobs cancelled"),

		num("base_monthly_income", GroupFinancial, 300, 2000, 0, 900, "Declared base monthly income"),
		num("monthly_earnings", GroupFinancial, 400, 3000, 0, 1200, "Average monthly platform earnings"),
		num("income_volatility", GroupFinancial, 0, 1, 2, 0.3, "Month over month earnings volatility"),
		num("earnings_std", GroupFinancial, 50, 500, 1, 180, "Standard deviation of monthly earnings"),
		num("earnings_cv", GroupFinancial, 0, 1, 2, 0.25, "Coefficient of variation of earnings"),
		num("avg_order_value", GroupFinancial, 0, 50, 2, 18, "Average order value"),
		num("on_time_payments", GroupFinancial, 0, 50, 0, 20, "Count of on time repayments"),
		num("payment_delay_days", GroupFinancial, 0, 30, 0, 3, "Average repayment delay in days"),
		num("savings_rate", GroupFinancial, 0, 0.5, 2, 0.1, "Share of earnings saved"),
		{Name: "has_credit", Type: Boolean, Group: GroupFinancial, Description: "Partner holds an active credit line", Default: false},
		num("credit_utilization", GroupFinancial, 0, 1, 2, 0.4, "Share of available credit in use"),
		num("credit_score", GroupFinancial, 300, 850, 0, 650, "Bureau credit score"),
		num("income_to_volatility_ratio", GroupFinancial, 1, 10, 2, 4, "Income relative to volatility"),
		num("financial_stability_score", GroupFinancial, 0, 1, 2, 0.6, "Composite financial stability score"),

		num("avg_session_duration", GroupEngagement, 10, 120, 1, 45, "Average app session in minutes"),
		num("avg_response_time", GroupEngagement, 1, 10, 1, 3, "Average job response time in minutes"),
		num("peak_hours_utilization", GroupEngagement, 0, 1, 2, 0.5, "Share of peak hours worked"),
		num("support_tickets", GroupEngagement, 0, 10, 0, 1, "Support tickets in the last 90 days"),
		num("resolution_time", GroupEngagement, 1, 48, 1, 12, "Average ticket resolution time in hours"),
		num("referral_count", GroupEngagement, 0, 10, 0, 1, "Partners referred"),
		num("app_opens_per_day", GroupEngagement, 1, 20, 1, 6, "Average app opens per day"),
		num("notification_response_rate", GroupEngagement, 0, 1, 2, 0.6, "Share of notifications acted on"),
		num("platform_efficiency", GroupEngagement, 0, 1, 2, 0.7, "Jobs completed per online hour, normalized"),
	}
}
