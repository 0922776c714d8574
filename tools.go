//go:build tools

package tools

// Tool dependencies pinned through go.mod. Regenerate the attr mocks with:
//
//	go run github.com/vektra/mockery/v2
import (
	_ "github.com/vektra/mockery/v2"
)
