package cornstats

import "strings"

// Canonical column names of the observation table.
const (
	ColCounty        = "county"
	ColState         = "state"
	ColCommodity     = "commodity"
	ColYield         = "corn_yield_bu_acre_2022"
	ColUsageRange    = "precision_ag_usage_range"
	ColUsageMidpoint = "precision_ag_usage_midpoint_2022_percent"
	ColTraffic       = "controlled_traffic_farming_2021"
	ColSoilMoisture  = "soil_moisture_monitoring_y2_y5_2021"
	ColPesticide     = "precision_pesticide_application_2021"
	ColNutrientLoss  = "precision_ag_nutrient_loss_reduction_2021"
	ColCSPIncentive  = "net_csp_incentive_2021"
	ColHighCSP       = "high_csp_incentive"
	ColHighPrecision = "high_precision_usage"
)

// FloatColumns are coerced to float64 by the cleaner; unparseable cells
// become missing.
var FloatColumns = []string{
	ColYield,
	ColUsageMidpoint,
	ColTraffic,
	ColSoilMoisture,
	ColPesticide,
	ColNutrientLoss,
	ColCSPIncentive,
}

// FlagColumns are coerced to strict 0/1 indicators; anything else becomes
// missing.
var FlagColumns = []string{
	ColHighCSP,
	ColHighPrecision,
}

// ControlColumns are the covariates entering the multivariable models.
var ControlColumns = []string{
	ColTraffic,
	ColSoilMoisture,
	ColPesticide,
	ColNutrientLoss,
	ColCSPIncentive,
}

// CanonicalName maps a raw header field to its canonical form: trimmed,
// lowercased, runs of non-alphanumeric characters collapsed to a single
// underscore, leading and trailing underscores stripped.
func CanonicalName(raw string) string {
	var sb strings.Builder
	lastUnder := false
	for _, r := range strings.ToLower(strings.TrimSpace(raw)) {
		alnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if alnum {
			sb.WriteRune(r)
			lastUnder = false
			continue
		}

		if !lastUnder {
			sb.WriteByte('_')
			lastUnder = true
		}
	}

	return strings.Trim(sb.String(), "_")
}
