//go:build !linux

package scheduler

func schedSetattr(pid int, attr *SchedAttr, flags uint) error {
	return ErrUnsupportedPlatform
}

func schedGetattr(pid int) (*SchedAttr, error) {
	return nil, ErrUnsupportedPlatform
}
