package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strconv"

	"golang.org/x/sync/errgroup"

	"jslex/internal/diag"
	"jslex/internal/source"
	"jslex/internal/token"
	"jslex/internal/trace"
)

// SourceExts are the file extensions picked up by directory runs.
var SourceExts = []string{".js", ".mjs", ".cjs"}

// TokenizeDirResult содержит результат токенизации одного файла
type TokenizeDirResult struct {
	Path   string        // путь к файлу (как в FileSet)
	FileID source.FileID // ID файла в FileSet; 0 при ошибке загрузки
	Tokens []token.Token // Токены файла
	Bag    *diag.Bag     // Диагностики
	Err    error         // лексическая ошибка или ошибка загрузки
	Cached bool
}

func isSourceFile(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range SourceExts {
		if ext == e {
			return true
		}
	}
	return false
}

// ListSourceFiles возвращает отсортированный список всех *.js/*.mjs/*.cjs
// файлов в директории. Скрытые каталоги и node_modules пропускаются.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (name == "node_modules" || (len(name) > 1 && name[0] == '.')) {
				return filepath.SkipDir
			}
			return nil
		}
		if isSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// TokenizeDir токенизирует все исходники в директории параллельно.
// Порядок результатов совпадает с ListSourceFiles и не зависит от Jobs.
// Ошибка возвращается только при сбое обхода или отмене ctx; проблемы
// отдельных файлов лежат в их TokenizeDirResult.
func TokenizeDir(ctx context.Context, dir string, opts Options) (*source.FileSet, []TokenizeDirResult, error) {
	ctx, span := trace.StartSpan(ctx, trace.ScopeDir, "tokenize-dir:"+dir)
	defer span.End("")

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}
	span.WithExtra("files", strconv.Itoa(len(files)))

	fileSet := source.NewFileSetWithBase(dir)
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	// Предзагружаем все файлы последовательно: FileSet не потокобезопасен
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make([]error, len(files))
	for i, path := range files {
		fileIDs[i], loadErrors[i] = fileSet.Load(path)
		emit(opts.Progress, Event{File: displayName(fileSet, fileIDs[i], loadErrors[i], path), Stage: StageLoad, Status: StatusQueued})
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Результаты (индексы уникальны для каждой горутины, мьютекс не нужен)
	results := make([]TokenizeDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			if loadErr := loadErrors[i]; loadErr != nil {
				bag := diag.NewBag(opts.maxDiagnostics())
				bag.Add(diag.Diagnostic{
					Severity: diag.SevError,
					Code:     diag.IOLoadFileError,
					Message:  "failed to load file: " + loadErr.Error(),
				})
				results[i] = TokenizeDirResult{Path: path, Bag: bag, Err: loadErr}
				emit(opts.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}

			file := fileSet.Get(fileIDs[i])
			res := lexFile(gctx, file, opts)
			results[i] = TokenizeDirResult{
				Path:   file.Path,
				FileID: file.ID,
				Tokens: res.tokens,
				Bag:    res.bag,
				Err:    res.err,
				Cached: res.cached,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

func displayName(fs *source.FileSet, id source.FileID, loadErr error, path string) string {
	if loadErr != nil {
		return path
	}
	return fs.Get(id).Path
}
