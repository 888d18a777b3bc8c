//go:build linux

package doctor

import "loadforever/x11"

func workArea() (w, h int, source string, err error) {
	r, err := x11.WorkAreaStandalone()
	if err != nil {
		return 0, 0, "", err
	}
	return r.W, r.H, "EWMH work area", nil
}
