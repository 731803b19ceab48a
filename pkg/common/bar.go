package common

import (
	"time"

	"github.com/peter-kozarec/resample/pkg/utility"
	"github.com/peter-kozarec/resample/pkg/utility/fixed"
)

// Bar covers the half-open interval [OpenTime, CloseTime). Empty marks a
// synthetic bar for a period without ticks.
type Bar struct {
	Source      string              `json:"src,omitempty"`
	Symbol      string              `json:"symbol,omitempty"`
	ExecutionId utility.ExecutionID `json:"eid,omitempty"`
	TraceID     utility.TraceID     `json:"tid,omitempty"`
	Timeframe   Timeframe           `json:"timeframe"`
	OpenTime    time.Time           `json:"open_time"`
	CloseTime   time.Time           `json:"close_time"`
	Open        fixed.Point         `json:"open"`
	High        fixed.Point         `json:"high"`
	Low         fixed.Point         `json:"low"`
	Close       fixed.Point         `json:"close"`
	Empty       bool                `json:"empty,omitempty"`
}
