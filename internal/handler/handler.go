package handler

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type FileHandler struct {
	vaultDir string
}

func NewFileHandler(vaultDir string) *FileHandler {
	return &FileHandler{vaultDir: vaultDir}
}

func (h *FileHandler) VaultDir() string {
	return h.vaultDir
}

// CreateNote creates an empty note file under the given subdirectory,
// failing if one already exists at that path.
func (h *FileHandler) CreateNote(subDir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("note name cannot be empty")
	}
	if filepath.Ext(name) != ".md" {
		name += ".md"
	}

	dir := filepath.Join(h.vaultDir, subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("note %q already exists", name)
	}

	if err := os.WriteFile(path, nil, 0o644); err != nil {
		return "", err
	}
	return path, nil
}

// CreateFolder creates a subdirectory inside the vault.
func (h *FileHandler) CreateFolder(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("folder name cannot be empty")
	}

	path := filepath.Join(h.vaultDir, name)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", err
	}
	return path, nil
}

// Rename moves a note within its directory, keeping the .md extension.
func (h *FileHandler) Rename(path, newName string) (string, error) {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return "", fmt.Errorf("note name cannot be empty")
	}
	if filepath.Ext(newName) != ".md" {
		newName += ".md"
	}

	newPath := filepath.Join(filepath.Dir(path), newName)
	if newPath == path {
		return path, nil
	}
	if _, err := os.Stat(newPath); err == nil {
		return "", fmt.Errorf("note %q already exists", newName)
	}

	if err := os.Rename(path, newPath); err != nil {
		return "", err
	}
	return newPath, nil
}

// Archive moves a note file to the archive subdirectory.
func (h *FileHandler) Archive(path string) error {
	subDir, err := filepath.Rel(h.vaultDir, filepath.Dir(path))
	if err != nil {
		return err
	}

	archiveSubDir := filepath.Join(h.vaultDir, "archive", subDir)
	if err := os.MkdirAll(archiveSubDir, os.ModePerm); err != nil {
		return err
	}

	newPath := filepath.Join(archiveSubDir, filepath.Base(path))
	return os.Rename(path, newPath)
}

// Unarchive moves a note file from the archive subdirectory to its original location.
func (h *FileHandler) Unarchive(path string) error {
	subDir, err := filepath.Rel(filepath.Join(h.vaultDir, "archive"), filepath.Dir(path))
	if err != nil {
		return err
	}

	originalDir := filepath.Join(h.vaultDir, subDir)
	newPath := filepath.Join(originalDir, filepath.Base(path))
	return os.Rename(path, newPath)
}

// Trash moves a note file to the trash subdirectory.
func (h *FileHandler) Trash(path string) error {
	subDir, err := filepath.Rel(h.vaultDir, filepath.Dir(path))
	if err != nil {
		return err
	}

	trashDir := filepath.Join(h.vaultDir, "trash", subDir)
	if err := os.MkdirAll(trashDir, os.ModePerm); err != nil {
		return err
	}

	newPath := filepath.Join(trashDir, filepath.Base(path))
	return os.Rename(path, newPath)
}

// Untrash moves a note file from the trash subdirectory to its original location.
func (h *FileHandler) Untrash(path string) error {
	subDir, err := filepath.Rel(filepath.Join(h.vaultDir, "trash"), filepath.Dir(path))
	if err != nil {
		return err
	}

	originalDir := filepath.Join(h.vaultDir, subDir)
	newPath := filepath.Join(originalDir, filepath.Base(path))
	return os.Rename(path, newPath)
}

func (h *FileHandler) WalkFiles(
	excludeDirs []string,
	excludeFiles []string,
) ([]string, error) {
	return h.walkExt(".md", excludeDirs, excludeFiles)
}

// ListImages returns every image file in the vault, for embedding into notes.
func (h *FileHandler) ListImages(excludeDirs []string) ([]string, error) {
	var images []string
	for ext := range imageExts {
		files, err := h.walkExt(ext, excludeDirs, nil)
		if err != nil {
			return nil, err
		}
		images = append(images, files...)
	}
	return images, nil
}

func (h *FileHandler) walkExt(
	ext string,
	excludeDirs []string,
	excludeFiles []string,
) ([]string, error) {
	var files []string

	var excludePaths []string
	for _, d := range excludeDirs {
		excludePaths = append(excludePaths, filepath.Clean(filepath.Join(h.vaultDir, d)))
	}

	err := filepath.Walk(
		h.vaultDir,
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			cleanedPath := filepath.Clean(path)

			for _, excludePath := range excludePaths {
				if info.IsDir() {
					if cleanedPath == excludePath {
						return filepath.SkipDir
					}
					continue
				}

				if filepath.Dir(cleanedPath) == excludePath {
					return nil
				}
			}

			file := filepath.Base(path)
			for _, f := range excludeFiles {
				if file == f {
					return nil
				}
			}

			if strings.HasPrefix(file, ".") {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if !info.IsDir() && strings.EqualFold(filepath.Ext(file), ext) {
				files = append(files, path)
			}

			return nil
		},
	)

	return files, err
}

func (h *FileHandler) GetSubdirectories(directory, excludeDir string) []string {
	files, err := os.ReadDir(directory)
	if err != nil {
		// TODO: Should probably properly propagate this error back up the application
		log.Fatalf("Failed to read directory: %v", err)
	}

	var subDirs []string
	for _, f := range files {
		if f.IsDir() && f.Name() != excludeDir {

			subDir := strings.TrimPrefix(filepath.Join(directory, f.Name()), directory)
			subDir = strings.TrimPrefix(
				subDir,
				string(os.PathSeparator),
			)
			subDirs = append(subDirs, subDir)
		}
	}
	return subDirs
}
