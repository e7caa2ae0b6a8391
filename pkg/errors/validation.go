package errors

import (
	"math"
	"slices"
	"strings"
	"unicode"
)

// MaxCanvasDimension bounds canvas width and height.
const MaxCanvasDimension = 100_000

// MaxIterations bounds the force simulation step count.
const MaxIterations = 10_000

// MaxNodes bounds the node count of a single document.
const MaxNodes = 5_000

// MaxForceWork bounds nodes² × iterations for one force simulation, which
// is roughly a second of work.
const MaxForceWork = 200_000_000

// ValidateDimension validates one canvas or spacing value.
//
// Validation rules:
//   - Must be a finite number
//   - Must be strictly positive
//   - Must not exceed MaxCanvasDimension
func ValidateDimension(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidInput, "%s must be a finite number", name)
	}
	if v <= 0 {
		return New(ErrCodeInvalidInput, "%s must be positive, got %g", name, v)
	}
	if v > MaxCanvasDimension {
		return New(ErrCodeInvalidInput, "%s too large (max %d), got %g", name, MaxCanvasDimension, v)
	}
	return nil
}

// ValidateSize validates canvas dimensions.
func ValidateSize(width, height float64) error {
	if err := ValidateDimension("width", width); err != nil {
		return err
	}
	return ValidateDimension("height", height)
}

// ValidateNodeSize validates a node diameter. The node must fit in the
// smallest canvas that layouts fall back to.
func ValidateNodeSize(nodeSize float64) error {
	if err := ValidateDimension("node size", nodeSize); err != nil {
		return err
	}
	if nodeSize*4 > MaxCanvasDimension {
		return New(ErrCodeInvalidInput, "node size too large, got %g", nodeSize)
	}
	return nil
}

// ValidateIterations validates a force simulation step count.
func ValidateIterations(n int) error {
	if n < 0 || n > MaxIterations {
		return New(ErrCodeInvalidInput, "iterations must be between 0 and %d, got %d", MaxIterations, n)
	}
	return nil
}

// ValidateNodeCount validates the number of nodes in a document.
func ValidateNodeCount(n int) error {
	if n > MaxNodes {
		return New(ErrCodeInvalidInput, "too many nodes (max %d), got %d", MaxNodes, n)
	}
	return nil
}

// ValidateForceWork validates the cost of a force simulation over n nodes.
func ValidateForceWork(n, iterations int) error {
	if work := int64(n) * int64(n) * int64(iterations); work > MaxForceWork {
		return New(ErrCodeInvalidInput,
			"graph of %d nodes is too large for %d iterations (nodes² × iterations max %d); lower iterations",
			n, iterations, MaxForceWork)
	}
	return nil
}

// ValidateFormat checks that format is one of allowed (case-insensitive)
// and returns its lowercase form.
func ValidateFormat(format string, allowed []string) (string, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	if f == "" {
		return "", New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, f) {
		return "", New(ErrCodeInvalidFormat, "unsupported format %q (valid: %s)", format, strings.Join(allowed, ", "))
	}
	return f, nil
}

// ValidatePath validates a relative file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// ValidateName validates an annotation or node name.
// Names must be non-empty, at most 64 characters and free of control
// characters.
func ValidateName(kind, name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "%s name cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "%s name too long (max 64 characters)", kind)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "%s name contains invalid control characters", kind)
		}
	}
	return nil
}
