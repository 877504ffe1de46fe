// Package scaffold creates starter theme projects.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/alexisbeaulieu97/cascade/internal/config"
	"github.com/alexisbeaulieu97/cascade/internal/logger"
)

// ErrThemeExists is returned when the target directory already holds a theme.
var ErrThemeExists = errors.New("theme already exists")

const gitignore = "/dist/\n"

// Options describe the project to create.
type Options struct {
	Dir     string
	Name    string
	Format  config.Format
	InitGit bool
	Logger  *logger.Logger
	// now is overridable in tests.
	now func() time.Time
}

// Result lists what Create wrote.
type Result struct {
	ThemePath string
	Files     []string
	// Commit is the initial commit hash when InitGit was requested.
	Commit string
}

// Create writes a starter theme and .gitignore into opts.Dir and, when
// requested, initialises a git repository with an initial commit.
func Create(ctx context.Context, opts Options) (Result, error) {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if opts.Format == "" {
		opts.Format = config.FormatYAML
	}
	if opts.Name == "" {
		opts.Name = filepath.Base(mustAbs(opts.Dir))
	}
	if opts.now == nil {
		opts.now = time.Now
	}
	log := opts.Logger

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create project directory: %w", err)
	}

	themeFile := "theme" + opts.Format.Extension()
	for _, candidate := range []string{"theme.yaml", "theme.yml", "theme.toml"} {
		if _, err := os.Stat(filepath.Join(opts.Dir, candidate)); err == nil {
			return Result{}, fmt.Errorf("%w: %s", ErrThemeExists, filepath.Join(opts.Dir, candidate))
		}
	}

	theme := config.Default(opts.Name)
	data, err := config.EncodeTheme(theme, opts.Format)
	if err != nil {
		return Result{}, err
	}

	result := Result{ThemePath: filepath.Join(opts.Dir, themeFile)}
	files := map[string][]byte{
		themeFile:    data,
		".gitignore": []byte(gitignore),
	}
	for _, name := range []string{themeFile, ".gitignore"} {
		path := filepath.Join(opts.Dir, name)
		if name == ".gitignore" {
			if _, err := os.Stat(path); err == nil {
				log.Debug("keeping existing file", "path", path)
				continue
			}
		}
		if err := os.WriteFile(path, files[name], 0o644); err != nil {
			return Result{}, fmt.Errorf("write %s: %w", name, err)
		}
		result.Files = append(result.Files, name)
		log.Debug("wrote file", "path", path)
	}

	if !opts.InitGit {
		return result, nil
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	commit, err := commitFiles(opts, result.Files)
	if err != nil {
		return result, err
	}
	result.Commit = commit
	log.Info("initialised git repository", "dir", opts.Dir, "commit", commit)
	return result, nil
}

func commitFiles(opts Options, files []string) (string, error) {
	repo, err := git.PlainInit(opts.Dir, false)
	if errors.Is(err, git.ErrRepositoryAlreadyExists) {
		repo, err = git.PlainOpen(opts.Dir)
	}
	if err != nil {
		return "", fmt.Errorf("initialise git repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("open worktree: %w", err)
	}
	for _, file := range files {
		if _, err := wt.Add(file); err != nil {
			return "", fmt.Errorf("stage %s: %w", file, err)
		}
	}

	hash, err := wt.Commit("Add cascade starter theme", &git.CommitOptions{
		Author: &object.Signature{Name: "cascade", Email: "cascade@localhost", When: opts.now()},
	})
	if err != nil {
		return "", fmt.Errorf("commit starter theme: %w", err)
	}
	return hash.String(), nil
}

func mustAbs(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return dir
	}
	return abs
}
