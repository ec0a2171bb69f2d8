package buildinfo

import "fmt"

// Set with -ldflags "-X github.com/wenzisay/localdate/internal/buildinfo.Version=..."
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("localdate %s (commit=%s, date=%s)", Version, Commit, Date)
}
