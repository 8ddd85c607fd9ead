package version

import "fmt"

// Version, GitCommit, and BuildDate are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/gp4par/gp4par/pkg/version.Version=v1.0.0 \
//	  -X github.com/gp4par/gp4par/pkg/version.GitCommit=abc1234 \
//	  -X github.com/gp4par/gp4par/pkg/version.BuildDate=2026-07-29"
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info returns a one-line human-readable version string.
func Info() string {
	return fmt.Sprintf("gp4par %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
