package common

// Timeframe identifies one of the supported bar granularities. The set is
// closed, boundary arithmetic exists only for the values below.
type Timeframe uint8

const (
	TimeframeM1 Timeframe = iota + 1
	TimeframeM2
	TimeframeM3
	TimeframeM4
	TimeframeM5
	TimeframeM6
	TimeframeM10
	TimeframeM12
	TimeframeM15
	TimeframeM20
	TimeframeM30
	TimeframeH1
	TimeframeH2
	TimeframeH3
	TimeframeH4
	TimeframeH6
	TimeframeH8
	TimeframeH12
	TimeframeD1
	TimeframeW1
	TimeframeMN1
)

var timeframeCodes = map[Timeframe]string{
	TimeframeM1:  "M1",
	TimeframeM2:  "M2",
	TimeframeM3:  "M3",
	TimeframeM4:  "M4",
	TimeframeM5:  "M5",
	TimeframeM6:  "M6",
	TimeframeM10: "M10",
	TimeframeM12: "M12",
	TimeframeM15: "M15",
	TimeframeM20: "M20",
	TimeframeM30: "M30",
	TimeframeH1:  "H1",
	TimeframeH2:  "H2",
	TimeframeH3:  "H3",
	TimeframeH4:  "H4",
	TimeframeH6:  "H6",
	TimeframeH8:  "H8",
	TimeframeH12: "H12",
	TimeframeD1:  "D1",
	TimeframeW1:  "W1",
	TimeframeMN1: "MN1",
}

var timeframesByCode = make(map[string]Timeframe, len(timeframeCodes))

func init() {
	for tf, code := range timeframeCodes {
		timeframesByCode[code] = tf
	}
}

// ParseTimeframe maps a short code such as "M15" or "MN1" to its
// timeframe. Unknown codes report false.
func ParseTimeframe(code string) (Timeframe, bool) {
	tf, ok := timeframesByCode[code]
	return tf, ok
}

func (tf Timeframe) String() string {
	if code, ok := timeframeCodes[tf]; ok {
		return code
	}
	return "unknown"
}
