package payroll

// Labels reported as the mode actually used.
const (
	ModeUsedLegal      = "legal"
	ModeUsedSimplified = "simplificado"
)

// Resolution is the tax result picked by Resolve.
type Resolution struct {
	Chosen   TaxResult `json:"chosen"`
	ModeUsed string    `json:"mode_used"`
}

// Resolve picks the tax result for the given mode. In auto mode the legal
// method wins unless the simplified one is strictly cheaper.
func Resolve(mode Mode, legal, simplified TaxResult) Resolution {
	switch mode {
	case ModeLegal:
		return Resolution{Chosen: legal, ModeUsed: ModeUsedLegal}
	case ModeSimplified:
		return Resolution{Chosen: simplified, ModeUsed: ModeUsedSimplified}
	}
	if legal.TaxDue.LessThanOrEqual(simplified.TaxDue) {
		return Resolution{Chosen: legal, ModeUsed: ModeUsedLegal}
	}
	return Resolution{Chosen: simplified, ModeUsed: ModeUsedSimplified}
}
