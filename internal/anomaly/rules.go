package anomaly

import (
	"fmt"
	"strings"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/tidwall/gjson"
)

// Reason names a violated metadata rule.
type Reason string

const (
	ReasonMetadataInvalid                Reason = "MetadataInvalid"
	ReasonHydrogenProducedNotPositive    Reason = "HydrogenProducedNotPositive"
	ReasonRenewableSourceUnknown         Reason = "RenewableSourceUnknown"
	ReasonPurityBelowMinimum             Reason = "PurityBelowMinimum"
	ReasonElectricityConsumedNotPositive Reason = "ElectricityConsumedNotPositive"
	ReasonHydrogenTransferredNotPositive Reason = "HydrogenTransferredNotPositive"
	ReasonTransferWindowInvalid          Reason = "TransferWindowInvalid"
	ReasonTransferMethodUnknown          Reason = "TransferMethodUnknown"
	ReasonFlowRateNotPositive            Reason = "FlowRateNotPositive"
	ReasonPressureNotPositive            Reason = "PressureNotPositive"
	ReasonHydrogenConsumedNotPositive    Reason = "HydrogenConsumedNotPositive"
	ReasonEnergySourceUnknown            Reason = "EnergySourceUnknown"
)

// MinimumPurity is the lowest acceptable hydrogen purity in percent.
const MinimumPurity = 95

type rule struct {
	reason Reason
	fields []string
	// violated receives the values of fields in order; all of them exist.
	violated func(values []gjson.Result) bool
}

var rulesByKind = map[model.RequestKind][]rule{
	model.KindIssue: {
		{reason: ReasonHydrogenProducedNotPositive, fields: []string{"hydrogenProduced"}, violated: notPositive},
		{reason: ReasonRenewableSourceUnknown, fields: []string{"renewableSource"}, violated: notOneOf("solar", "wind", "hydro")},
		{reason: ReasonPurityBelowMinimum, fields: []string{"purity"}, violated: below(MinimumPurity)},
		{reason: ReasonElectricityConsumedNotPositive, fields: []string{"electricityConsumed"}, violated: notPositive},
	},
	model.KindBuy: {
		{reason: ReasonHydrogenTransferredNotPositive, fields: []string{"hydrogenTransferred"}, violated: notPositive},
		{reason: ReasonTransferWindowInvalid, fields: []string{"transferStart", "transferEnd"}, violated: invalidWindow},
		{reason: ReasonTransferMethodUnknown, fields: []string{"transferMethod"}, violated: notOneOf("Pipeline", "Tanker")},
		{reason: ReasonFlowRateNotPositive, fields: []string{"flowRate"}, violated: notPositive},
		{reason: ReasonPressureNotPositive, fields: []string{"pressure"}, violated: notPositive},
	},
	model.KindRetire: {
		{reason: ReasonHydrogenConsumedNotPositive, fields: []string{"hydrogenConsumed"}, violated: notPositive},
		{reason: ReasonEnergySourceUnknown, fields: []string{"energySource"}, violated: notOneOf("Solar", "Wind", "Hydro")},
	},
}

func notPositive(values []gjson.Result) bool {
	v := values[0]
	return v.Type != gjson.Number || v.Float() <= 0
}

func below(limit float64) func([]gjson.Result) bool {
	return func(values []gjson.Result) bool {
		v := values[0]
		return v.Type != gjson.Number || v.Float() < limit
	}
}

func notOneOf(allowed ...string) func([]gjson.Result) bool {
	return func(values []gjson.Result) bool {
		v := values[0]
		if v.Type != gjson.String {
			return true
		}
		for _, candidate := range allowed {
			if strings.EqualFold(strings.TrimSpace(v.Str), candidate) {
				return false
			}
		}
		return true
	}
}

func invalidWindow(values []gjson.Result) bool {
	start, err := minutesOfDay(values[0])
	if err != nil {
		return true
	}
	end, err := minutesOfDay(values[1])
	if err != nil {
		return true
	}
	return start >= end
}

// minutesOfDay parses an HH:MM time of day.
func minutesOfDay(v gjson.Result) (int, error) {
	if v.Type != gjson.String {
		return 0, fmt.Errorf("time of day must be a string")
	}
	var hours, minutes int
	if _, err := fmt.Sscanf(strings.TrimSpace(v.Str), "%d:%d", &hours, &minutes); err != nil {
		return 0, fmt.Errorf("parse time of day %q: %w", v.Str, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", v.Str)
	}
	return hours*60 + minutes, nil
}
