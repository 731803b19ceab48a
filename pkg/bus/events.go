package bus

type EventId uint8

const (
	TickEvent EventId = iota
	BarEvent
)
