package config

import (
	"fmt"
	"math"
)

// ResolvedThresholds holds the six free-space levels plus the resume
// level, all in whole GB, satisfying kill < stop < pause < harsh < warn
// < notice and resume >= 2*pause.
type ResolvedThresholds struct {
	Notice, Warn, Harsh, Pause, Stop, Kill int
	Resume                                 int
}

const (
	pctNotice = 0.10
	pctWarn   = 0.07
	pctHarsh  = 0.04
	pctPause  = 0.02
	pctStop   = 0.01
	pctKill   = 0.005

	minNotice = 10
	minWarn   = 5
	minHarsh  = 3
	minPause  = 2
	minStop   = 1
	minKill   = 1

	capPause = 30
	capStop  = 15
	capKill  = 5

	resumeDefaultCap = 50
)

// autoLevel applies percentage-of-disk, minimum, then (optional) cap.
// cap == 0 means uncapped.
func autoLevel(diskGB int, pct float64, min, cap int) int {
	v := int(math.Floor(float64(diskGB) * pct))
	if v < min {
		v = min
	}
	if cap > 0 && v > cap {
		v = cap
	}
	return v
}

// Resolve turns a Config plus a measured disk size (GB) into
// ResolvedThresholds, applying the default-percentage/minima/caps rules
// for any threshold left "auto", and using the literal value otherwise.
//
// For auto-derived thresholds that still end up non-strictly-decreasing
// (possible only on very small disks, where the minima dominate and can
// collide), the result is corrected by nudging stricter levels up by the
// smallest amount needed to restore strict ordering — since these values
// were derived, not user-specified, there is nothing to "fail startup"
// on. The correction applies only when every threshold, resume included,
// is auto; as soon as the operator specified any of them manually, no
// correction is applied to any level: a resulting invariant violation is
// reported as an error so the operator fixes their config instead of
// silently getting different numbers than what they wrote.
func Resolve(cfg Config, diskGB int) (ResolvedThresholds, error) {
	var rt ResolvedThresholds
	var anyManual bool

	resolve := func(th Threshold, pct float64, min, cap int) int {
		if th.Auto {
			return autoLevel(diskGB, pct, min, cap)
		}
		anyManual = true
		return th.GB
	}

	rt.Notice = resolve(cfg.Notice, pctNotice, minNotice, 0)
	rt.Warn = resolve(cfg.Warn, pctWarn, minWarn, 0)
	rt.Harsh = resolve(cfg.Harsh, pctHarsh, minHarsh, 0)
	rt.Pause = resolve(cfg.Pause, pctPause, minPause, capPause)
	rt.Stop = resolve(cfg.Stop, pctStop, minStop, capStop)
	rt.Kill = resolve(cfg.Kill, pctKill, minKill, capKill)

	manualResume := !cfg.ResumeThreshold.Auto
	if manualResume {
		rt.Resume = cfg.ResumeThreshold.GB
		anyManual = true
	} else {
		rt.Resume = rt.Harsh
		if rt.Resume > resumeDefaultCap {
			rt.Resume = resumeDefaultCap
		}
		if rt.Resume < 2*rt.Pause {
			rt.Resume = 2 * rt.Pause
		}
	}

	if !anyManual {
		enforceStrictOrder(&rt)
	}

	if err := validate(rt); err != nil {
		return ResolvedThresholds{}, err
	}
	return rt, nil
}

// enforceStrictOrder nudges auto-derived levels upward, from kill
// outward, so kill < stop < pause < harsh < warn < notice holds even
// when minima collided on a small disk.
func enforceStrictOrder(rt *ResolvedThresholds) {
	if rt.Stop <= rt.Kill {
		rt.Stop = rt.Kill + 1
	}
	if rt.Pause <= rt.Stop {
		rt.Pause = rt.Stop + 1
	}
	if rt.Harsh <= rt.Pause {
		rt.Harsh = rt.Pause + 1
	}
	if rt.Warn <= rt.Harsh {
		rt.Warn = rt.Harsh + 1
	}
	if rt.Notice <= rt.Warn {
		rt.Notice = rt.Warn + 1
	}
	if rt.Resume < 2*rt.Pause {
		rt.Resume = 2 * rt.Pause
	}
}

func validate(rt ResolvedThresholds) error {
	switch {
	case !(rt.Kill < rt.Stop && rt.Stop < rt.Pause && rt.Pause < rt.Harsh && rt.Harsh < rt.Warn && rt.Warn < rt.Notice):
		return fmt.Errorf("%w: kill=%d stop=%d pause=%d harsh=%d warn=%d notice=%d",
			ErrInvariantViolated, rt.Kill, rt.Stop, rt.Pause, rt.Harsh, rt.Warn, rt.Notice)
	case rt.Pause > capPause:
		return fmt.Errorf("%w: pause=%d exceeds cap %d", ErrInvariantViolated, rt.Pause, capPause)
	case rt.Stop > capStop:
		return fmt.Errorf("%w: stop=%d exceeds cap %d", ErrInvariantViolated, rt.Stop, capStop)
	case rt.Kill > capKill:
		return fmt.Errorf("%w: kill=%d exceeds cap %d", ErrInvariantViolated, rt.Kill, capKill)
	case rt.Resume < 2*rt.Pause:
		return fmt.Errorf("%w: resume=%d < 2*pause=%d", ErrInvariantViolated, rt.Resume, 2*rt.Pause)
	}
	return nil
}
