package diagfmt

import (
	"path/filepath"
	"strings"

	"jslex/internal/source"
)

// displayPath форматирует путь файла согласно режиму.
// Relative без baseDir и Auto ведут себя одинаково: относительный путь,
// если файл лежит внутри baseDir, иначе как есть.
func displayPath(f *source.File, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if f.Flags&source.FileVirtual != 0 {
			return f.Path // stdin, тесты: абсолютного пути нет
		}
		if abs, err := filepath.Abs(f.Path); err == nil {
			return filepath.ToSlash(abs)
		}
		return f.Path
	case PathModeBasename:
		return filepath.Base(f.Path)
	case PathModeRelative, PathModeAuto:
		if baseDir == "" {
			return f.Path
		}
		rel, err := filepath.Rel(baseDir, f.Path)
		if err != nil || strings.HasPrefix(rel, "..") {
			return f.Path
		}
		return filepath.ToSlash(rel)
	default:
		return f.Path
	}
}
