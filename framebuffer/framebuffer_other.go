//go:build !linux

package framebuffer

func Map(_ uint64, _ int) (Buffer, error) {
	return nil, ErrNotSupported
}

func ActiveVCSA() (string, error) {
	return "", ErrNotSupported
}
