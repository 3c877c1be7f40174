//go:build !linux

package driver

// PinToCPU is a no-op on platforms without a SchedSetaffinity-style API.
func PinToCPU(cpu int) error {
	return nil
}
