package metrics

// Attribute keys shared by the OTel instruments.
const (
	AttrChannel   = "channel"
	AttrCondition = "condition"
)
