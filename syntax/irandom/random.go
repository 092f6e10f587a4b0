package irandom

import (
	"cmp"
	"math"
	"math/rand/v2"
)

// Int64Range 生成 [min, max] 闭区间内的随机整数
// min > max 时自动交换；支持完整的 int64 区间，不会溢出
func Int64Range(min, max int64) int64 {
	if min == max {
		return min
	}
	if max < min {
		min, max = max, min
	}

	// 补码下 uint64 相减即为区间宽度
	span := uint64(max) - uint64(min)
	if span == math.MaxUint64 {
		return int64(rand.Uint64())
	}

	// rand.Uint64N 使用全局 ChaCha8，进程启动时自动播种，并发安全
	return int64(uint64(min) + rand.Uint64N(span+1))
}

// Int64s 按生成顺序返回 count 个 [min, max] 内的随机整数
func Int64s(min, max int64, count int) []int64 {
	if count < 1 {
		return []int64{}
	}
	nums := make([]int64, count)
	for i := range nums {
		nums[i] = Int64Range(min, max)
	}
	return nums
}

// Clamp 将 v 限制在 [lo, hi] 内
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
