//go:build !largepools

package radix32

const (
	// 8 KiB, two pages
	defaultPoolPages = 2
)
