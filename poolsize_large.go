//go:build largepools

package radix32

const (
	// 2 MiB, for trees holding millions of keys
	defaultPoolPages = 512
)
