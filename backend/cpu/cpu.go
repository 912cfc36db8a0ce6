// Package cpu is the public facade over the pure-Go CPU backend.
package cpu

import (
	"github.com/onoma-ml/onoma/internal/backend/cpu"
)

// CPUBackend executes tensor operations on the CPU with no external
// dependencies.
type CPUBackend = cpu.CPUBackend

// New creates a CPU backend.
var New = cpu.New
