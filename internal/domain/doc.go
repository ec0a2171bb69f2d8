// Package domain contains the application model for the localdate tool.
//
// It holds configuration and result types plus the error classification shared by
// the infra, usecase and CLI layers. It does not depend on YAML parsing, cobra, or
// the filesystem. Infra/adapters map into/from these types.
package domain
