//go:build !unix && !windows

package mmfile

import "os"

// Map reads the entire file when mmap is not available. The advise hint has
// no effect here.
func Map(path string, advise bool) ([]byte, func() error, error) {
	_ = advise
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, func() error { return nil }, err
	}
	return data, func() error { return nil }, nil
}
