package middleware

import (
	"context"

	"github.com/peter-kozarec/resample/pkg/common"
)

//goland:noinspection ALL
var (
	NoopTickHdl = func(context.Context, common.Tick) {}
	NoopBarHdl  = func(context.Context, common.Bar) {}
)
