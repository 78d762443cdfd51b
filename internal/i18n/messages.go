package i18n

// getDefaultMessages returns the default message translations.
// Only English ships today; other languages fall back to it.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Navigation
			"nav.home":       "Home",
			"nav.services":   "Services",
			"nav.pricing":    "Pricing",
			"nav.calculator": "Calculator",
			"nav.contact":    "Contact",
			// Service filters
			"filters.all":        "All",
			"filters.import":     "Import",
			"filters.export":     "Export",
			"filters.logistics":  "Logistics",
			"filters.compliance": "Compliance",
			// Calculator
			"calculator.title":         "Import Cost Calculator",
			"calculator.unit_price":    "Product price (per unit)",
			"calculator.quantity":      "Quantity",
			"calculator.cif_value":     "CIF value",
			"calculator.duty_percent":  "Duty (%)",
			"calculator.vat_percent":   "VAT (%)",
			"calculator.calculate":     "Calculate",
			"calculator.reset":         "Reset",
			"calculator.base_cost":     "Base cost",
			"calculator.cif_cost":      "CIF",
			"calculator.duty_cost":     "Duty",
			"calculator.vat_cost":      "VAT",
			"calculator.total_cost":    "Total cost",
			"calculator.per_unit_cost": "Cost per unit",
			"calculator.placeholder":   "0.00",
			"calculator.invalid_field": "Please check this value",
			// Error messages
			"error.invalid_request":        "Invalid request",
			"error.invalid_request_body":   "Invalid request body",
			"error.internal_error":         "An unexpected error occurred",
			"error.unauthorized":           "Unauthorized",
			"error.invalid_credentials":    "Invalid email or password",
			"error.api_key_required":       "API key is required",
			"error.invalid_api_key":        "Invalid API key",
			"error.not_found":              "Not found",
			"error.rate_limit_exceeded":    "Too many requests, please try again later",
			"error.validation.calculation": "One or more fields are invalid",
			"error.invalid_token":          "Invalid or expired token",
			"error.token_required":         "Authentication token is required",
			"error.timeout":                "Request timeout",
			"error.service_unavailable":    "Service unavailable",
			// Success messages
			"success.calculated": "Calculation completed successfully",
		},
	}
}
