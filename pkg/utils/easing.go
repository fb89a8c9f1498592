package utils

import (
	"math"
	"strings"
)

// Easing Functions (缓动函数)
//
// 所有函数接受进度 t ∈ [0, 1]，返回缓动后的值。超出范围的输入先被裁剪。
//
// 参考：https://easings.net/

// EasingFunc maps linear progress to eased progress.
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return Clamp01(t)
}

// EaseOut 标准缓出，等价于 CSS cubic-bezier(0, 0, 0.58, 1)
// 入场动画（模糊淡入）使用此曲线
func EaseOut(t float64) float64 {
	return cubicBezierY(Clamp01(t), 0, 0, 0.58, 1)
}

// EaseOutCubic 三次方缓出
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = Clamp01(t)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EasingByName returns the easing for a configuration name
// ("linear", "easeOut", "easeOutCubic", "easeInOutCubic"). Case-insensitive.
func EasingByName(name string) (EasingFunc, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "easeout":
		return EaseOut, true
	case "linear":
		return EaseLinear, true
	case "easeoutcubic":
		return EaseOutCubic, true
	case "easeinoutcubic":
		return EaseInOutCubic, true
	}
	return nil, false
}

// cubicBezierY 求解 x(s) = t 后返回 y(s)，控制点 (0,0) (x1,y1) (x2,y2) (1,1)
func cubicBezierY(t, x1, y1, x2, y2 float64) float64 {
	bez := func(s, p1, p2 float64) float64 {
		u := 1 - s
		return 3*u*u*s*p1 + 3*u*s*s*p2 + s*s*s
	}

	// x(s) 单调递增，二分即可
	lo, hi := 0.0, 1.0
	s := t
	for i := 0; i < 32; i++ {
		x := bez(s, x1, x2)
		if math.Abs(x-t) < 1e-7 {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return bez(s, y1, y2)
}

// Lerp 线性插值，t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 将 v 限制在 [0, 1]
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Progress 返回 elapsed 在 [start, start+duration] 内的归一化进度
// duration <= 0 时，到达 start 即完成
func Progress(elapsed, start, duration float64) float64 {
	if duration <= 0 {
		if elapsed >= start {
			return 1
		}
		return 0
	}
	return Clamp01((elapsed - start) / duration)
}
