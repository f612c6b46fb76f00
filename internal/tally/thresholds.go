package tally

// DefaultAdminCount is used when the admin directory cannot be reached.
const DefaultAdminCount = 3

type Thresholds struct {
	AdminCount int
	Approval   int
	Denial     int
}

// ComputeThresholds returns ceil(2n/3) approvals and ceil(n/3) denials, each
// at least 1.
func ComputeThresholds(adminCount int) Thresholds {
	return Thresholds{
		AdminCount: adminCount,
		Approval:   atLeastOne(ceilDiv(adminCount*2, 3)),
		Denial:     atLeastOne(ceilDiv(adminCount, 3)),
	}
}

func (t Thresholds) For(action Action) int {
	if action == ActionDeny {
		return t.Denial
	}
	return t.Approval
}

func ceilDiv(numerator, denominator int) int {
	if numerator <= 0 {
		return 0
	}
	return (numerator + denominator - 1) / denominator
}

func atLeastOne(value int) int {
	if value < 1 {
		return 1
	}
	return value
}
