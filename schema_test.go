package cornstats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalName(t *testing.T) {
	cases := map[string]string{
		"County":                                     "county",
		"  State ":                                   "state",
		"Corn Yield Bu Acre 2022":                    "corn_yield_bu_acre_2022",
		"Precision Ag Usage Midpoint 2022 (Percent)": "precision_ag_usage_midpoint_2022_percent",
		"Soil Moisture Monitoring Y2 Y5 2021":        "soil_moisture_monitoring_y2_y5_2021",
		"Net--CSP  Incentive_2021":                   "net_csp_incentive_2021",
		"High Precision Usage!":                      "high_precision_usage",
		"   ":                                        "",
	}

	for raw, want := range cases {
		assert.Equal(t, want, CanonicalName(raw), raw)
	}
}
