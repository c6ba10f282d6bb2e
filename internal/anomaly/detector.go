// Package anomaly flags physically implausible request metadata. Flags are
// advisory and never block a transition.
package anomaly

import (
	"strings"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Result is the outcome of inspecting one metadata document.
type Result struct {
	Anomaly bool
	Reasons []Reason
}

// Strings returns the reasons as plain strings for persistence.
func (r Result) Strings() []string {
	if len(r.Reasons) == 0 {
		return nil
	}
	out := make([]string, len(r.Reasons))
	for i, reason := range r.Reasons {
		out[i] = string(reason)
	}
	return out
}

// Evaluate applies the rule set of kind to metadata. Blank metadata is not
// anomalous; metadata that is not a JSON object yields ReasonMetadataInvalid.
// Rules run in a fixed order and only for fields that are present.
func Evaluate(kind model.RequestKind, metadata string) Result {
	if strings.TrimSpace(metadata) == "" {
		return Result{}
	}
	if !gjson.Valid(metadata) {
		return Result{Anomaly: true, Reasons: []Reason{ReasonMetadataInvalid}}
	}
	doc := gjson.Parse(metadata)
	if !doc.IsObject() {
		return Result{Anomaly: true, Reasons: []Reason{ReasonMetadataInvalid}}
	}

	var res Result
	for _, r := range rulesByKind[kind] {
		values := make([]gjson.Result, len(r.fields))
		present := true
		for i, field := range r.fields {
			values[i] = doc.Get(field)
			if !values[i].Exists() {
				present = false
				break
			}
		}
		if present && r.violated(values) {
			res.Reasons = append(res.Reasons, r.reason)
		}
	}
	res.Anomaly = len(res.Reasons) > 0
	return res
}

// Detector evaluates metadata and logs one record per violated rule.
type Detector struct {
	logger *zap.Logger
}

// NewDetector constructs a Detector.
func NewDetector(logger *zap.Logger) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{logger: logger.With(zap.String("component", "anomaly_detector"))}
}

// Detect evaluates metadata for a request of the given kind.
func (d *Detector) Detect(kind model.RequestKind, metadata string) Result {
	res := Evaluate(kind, metadata)
	for _, reason := range res.Reasons {
		d.logger.Warn("metadata rule violated",
			zap.String("kind", string(kind)),
			zap.String("rule", string(reason)),
		)
	}
	return res
}
