package domain

// OffClientEntry is one kept line of the off-client block. Start and End
// hold the raw timestamp text as typed; Hours may be negative when the
// end precedes the start.
type OffClientEntry struct {
	Description string
	Start       string
	End         string
	Hours       float64
}
