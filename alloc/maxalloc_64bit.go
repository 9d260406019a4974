//go:build amd64 || arm64 || arm64be || ppc64 || ppc64le || mips64 || mips64le || s390x || sparc64 || riscv64 || loong64

package alloc

// maxAllocBytes is the largest single heap allocation the runtime answers
// with an ordinary allocation instead of a fatal throw.
const maxAllocBytes = 1 << 47
