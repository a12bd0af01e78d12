package installer

import "os"

// copyFile copies src to dst with the given mode, overwriting dst.
func copyFile(src, dst string, mode os.FileMode) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, mode)
}

// fileExists reports whether path exists (regular file or directory).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
