package doctor

// CostEstimate is the patient-facing price breakdown for a visit.
type CostEstimate struct {
	Fee      int64
	Covered  int64
	YouPay   int64
	Insured  bool
	Provider string
}

// ResolveCost applies flat percentage coverage when the member's insurance
// provider appears in the doctor's accepted list. Matching is an exact
// string comparison; an empty provider never matches.
func ResolveCost(fee int64, acceptedInsurers []string, memberProvider string, coveragePercent int) CostEstimate {
	est := CostEstimate{Fee: fee, YouPay: fee, Provider: memberProvider}

	if memberProvider == "" || coveragePercent <= 0 {
		return est
	}
	for _, ins := range acceptedInsurers {
		if ins == memberProvider {
			est.Insured = true
			est.Covered = fee * int64(coveragePercent) / 100
			est.YouPay = fee - est.Covered
			return est
		}
	}
	return est
}
