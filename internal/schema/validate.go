package schema

// Diagnostic codes produced by Validate.
const (
	CodeEmptyKey       = "empty-key"
	CodeDuplicateKey   = "duplicate-key"
	CodeUnknownKind    = "unknown-kind"
	CodeUnknownSubkind = "unknown-subkind"
	CodeEnumNoLabels   = "enum-no-labels"
	CodeEnumBadMatch   = "enum-bad-match"
	CodeBadDate        = "bad-date"
	CodeBadInterval    = "bad-interval"
)

// Validate checks a parsed schema for structural problems and returns the
// collected diagnostics. A valid schema is guaranteed to materialize via
// Descriptors without error.
func Validate(f *File) Diagnostics {
	var diags Diagnostics

	seen := map[string]struct{}{}

	for _, fld := range f.Fields {
		if fld.Key == "" {
			diags.AddError(CodeEmptyKey, "field has no key", "")
			continue
		}

		if _, dup := seen[fld.Key]; dup {
			diags.AddError(CodeDuplicateKey, "key defined more than once", fld.Key)
		}
		seen[fld.Key] = struct{}{}

		validateField(fld, &diags)
	}

	return diags
}

func validateField(fld Field, diags *Diagnostics) {
	switch fld.Kind {
	case KindInteger, KindDecimal:

	case KindText:
		if _, err := parseSubkind(fld.Text); err != nil {
			diags.AddError(CodeUnknownSubkind, err.Error(), fld.Key)
		}

	case KindEnum:
		if fld.Enum == nil || len(fld.Enum.Labels) == 0 {
			diags.AddError(CodeEnumNoLabels, "enum field needs at least one label", fld.Key)
			return
		}

		if fld.Enum.Match != "" && fld.Enum.Match != MatchExact && fld.Enum.Match != MatchFirstToken {
			diags.AddError(CodeEnumBadMatch, "match must be exact or first-token", fld.Key)
		}

	case KindDate:
		cfg, err := fld.dateConfig()
		if err != nil {
			diags.AddError(CodeBadDate, err.Error(), fld.Key)
			return
		}

		if !cfg.Min.IsZero() && !cfg.Max.IsZero() && cfg.Min.After(cfg.Max) {
			diags.AddError(CodeBadDate, "min is after max", fld.Key)
		}

		if fld.Date != nil && (fld.Date.Interval < 0 || fld.Date.Interval > 59) {
			diags.AddError(CodeBadInterval, "interval must be within 0..59", fld.Key)
		}

	default:
		diags.AddError(CodeUnknownKind, "kind must be integer, decimal, text, enum or date", fld.Key)
	}
}
