package inuge

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/cute-angelia/nuge/syntax/irandom"
	"github.com/cute-angelia/nuge/utils/http/apiV3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/pkg/errors"
)

const msgMinGreaterThanMax = "min > max"

// RandomRequest /api/random 的参数，三个字段都可省略
type RandomRequest struct {
	Min   apiV3.Int64Param `json:"min" schema:"min"`
	Max   apiV3.Int64Param `json:"max" schema:"max"`
	Count apiV3.Int64Param `json:"count" schema:"count"`
}

// notAbove 校验 value <= max
// 不用 validation.Max：它会跳过零值，min=0 时校验失效
func notAbove(max int64) validation.RuleFunc {
	return func(value interface{}) error {
		if value.(int64) > max {
			return errors.New(msgMinGreaterThanMax)
		}
		return nil
	}
}

// Resolve 补默认值、截断 count 并校验区间
// min 默认 MinInt64，max 默认 MaxInt64，count 默认 1 并限制在 [1, maxCount]
func (req RandomRequest) Resolve(maxCount int) (min, max int64, count int, err error) {
	if err = paramError("min", req.Min, false); err != nil {
		return
	}
	if err = paramError("max", req.Max, false); err != nil {
		return
	}
	// count 超出 int64 也按截断处理
	if err = paramError("count", req.Count, true); err != nil {
		return
	}

	min = req.Min.Or(math.MinInt64)
	max = req.Max.Or(math.MaxInt64)
	count = int(irandom.Clamp(req.Count.Or(1), 1, int64(maxCount)))

	err = validation.Validate(min, validation.By(notAbove(max)))
	return
}

func paramError(name string, p apiV3.Int64Param, saturate bool) error {
	if p.Err == nil {
		return nil
	}
	if saturate && errors.Is(p.Err, strconv.ErrRange) {
		return nil
	}
	return fmt.Errorf("%s: %w", name, p.Err)
}

func (c *Component) handleRandom(w http.ResponseWriter, r *http.Request) {
	a := apiV3.NewApi(w, r,
		apiV3.WithLog(c.opts.apiLog),
		apiV3.WithLogger(c.opts.logger),
		apiV3.WithForceJSON(true),
	)

	var req RandomRequest
	if err := a.Decode(&req); err != nil {
		a.Error(apiV3.BadRequest(err))
		return
	}

	min, max, count, err := req.Resolve(c.opts.maxCount)
	if err != nil {
		a.Error(apiV3.BadRequest(err))
		return
	}

	a.Success(irandom.Int64s(min, max, count))
}
