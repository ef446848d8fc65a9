package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current
// platform's separator and cleans the result.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	return filepath.Clean(filepath.FromSlash(strings.ReplaceAll(p, "\\", "/")))
}

// VaultRelative returns the path to target relative to the vault
// directory. The result always uses forward slashes so it can be
// embedded in markdown links regardless of platform.
func VaultRelative(vaultDir, target string) (string, error) {
	rel, err := filepath.Rel(NormalizePath(vaultDir), NormalizePath(target))
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// VaultRelativeComponents splits the relative path from VaultRelative
// into the leading subdirectory (if any) and the remaining path.
func VaultRelativeComponents(vaultDir, target string) (string, string, error) {
	rel, err := VaultRelative(vaultDir, target)
	if err != nil {
		return "", "", err
	}

	rel = strings.TrimPrefix(rel, "./")
	if rel == "." || rel == "" {
		return "", "", nil
	}

	subdir, rest, found := strings.Cut(rel, "/")
	if !found {
		return "", rel, nil
	}

	return subdir, rest, nil
}
